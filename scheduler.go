package libemit

type (
	// Scheduler runs tasks on a later turn than the one submitting them. Schedule must not
	// run the task before returning.
	Scheduler interface {
		Schedule(task func())
	}

	SchedulerFunc func(task func())
)

func (f SchedulerFunc) Schedule(task func()) {
	f(task)
}

// GoScheduler runs every task on its own goroutine. Tasks carry no ordering guarantee
// between each other.
var GoScheduler Scheduler = SchedulerFunc(func(task func()) {
	go task()
})
