package libemit

import (
	"go.uber.org/zap"
)

// zapLogger adapts a zap.SugaredLogger to the logger interface.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

func newZapLogger(l *zap.Logger) logger {
	if l == nil {
		l = zap.NewNop()
	}
	return &zapLogger{sugar: l.Sugar()}
}

func (l *zapLogger) WithField(key string, value any) logger {
	return &zapLogger{sugar: l.sugar.With(key, value)}
}

func (l *zapLogger) Debugf(format string, args ...any) {
	l.sugar.Debugf(format, args...)
}

func (l *zapLogger) Infof(format string, args ...any) {
	l.sugar.Infof(format, args...)
}

func (l *zapLogger) Warnf(format string, args ...any) {
	l.sugar.Warnf(format, args...)
}

func (l *zapLogger) Errorf(format string, args ...any) {
	l.sugar.Errorf(format, args...)
}
