package libemit

import "sync"

// manualScheduler holds scheduled tasks until RunPending is called.
type manualScheduler struct {
	mu    sync.Mutex
	tasks []func()
}

func (s *manualScheduler) Schedule(task func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = append(s.tasks, task)
}

func (s *manualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.tasks)
}

// RunPending runs the tasks scheduled so far, including those they schedule themselves,
// and returns how many ran.
func (s *manualScheduler) RunPending() int {
	ran := 0
	for {
		s.mu.Lock()
		tasks := s.tasks
		s.tasks = nil
		s.mu.Unlock()

		if len(tasks) == 0 {
			return ran
		}
		for _, task := range tasks {
			task()
			ran++
		}
	}
}
