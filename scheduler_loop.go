package libemit

import (
	"sync"

	"go.uber.org/zap"
)

// Loop is a single-goroutine task loop. Tasks run one at a time in the order they were
// scheduled.
type Loop struct {
	logger logger

	mu     sync.Mutex
	cond   *sync.Cond
	queue  []func()
	closed bool

	done      chan struct{}
	closeOnce sync.Once
}

// NewLoop starts a Loop. Call Close to stop it.
func NewLoop(l *zap.Logger) *Loop {
	loop := &Loop{
		logger: newZapLogger(l).WithField("type", "scheduler_loop"),
		done:   make(chan struct{}),
	}
	loop.cond = sync.NewCond(&loop.mu)

	go loop.run()

	return loop
}

func (l *Loop) run() {
	defer close(l.done)

	for {
		l.mu.Lock()
		for len(l.queue) == 0 && !l.closed {
			l.cond.Wait()
		}
		if len(l.queue) == 0 {
			l.mu.Unlock()
			return
		}
		task := l.queue[0]
		l.queue[0] = nil
		l.queue = l.queue[1:]
		l.mu.Unlock()

		task()
	}
}

// Schedule enqueues task. It never blocks. Tasks scheduled after Close are dropped.
func (l *Loop) Schedule(task func()) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		l.logger.Warnf("loop is closed, dropping task")
		return
	}

	l.queue = append(l.queue, task)
	l.cond.Signal()
}

// Flush blocks until every task scheduled before the call has run. Once the loop is closed it
// waits for the loop to stop instead. Calling Flush from a task deadlocks.
func (l *Loop) Flush() {
	barrier := make(chan struct{})

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		<-l.done
		return
	}
	l.queue = append(l.queue, func() { close(barrier) })
	l.cond.Signal()
	l.mu.Unlock()

	<-barrier
}

// Close runs the tasks already queued and stops the loop. It is safe to call more than once.
func (l *Loop) Close() {
	l.closeOnce.Do(func() {
		l.mu.Lock()
		l.closed = true
		l.cond.Broadcast()
		l.mu.Unlock()

		l.logger.Debugf("closing loop")
	})

	<-l.done
}

// Done is closed once the loop has stopped.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}
