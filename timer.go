package gtthread

import "time"

// preemptTimer drives the scheduler's tick on a period, standing in for
// the original's setitimer(ITIMER_VIRTUAL, ...) + SIGVTALRM pair. See
// timer_unix.go for the real POSIX realization and timer_other.go for the
// portable fallback.
type preemptTimer interface {
	// Start arms the timer for the first time. A zero period is a no-op.
	Start() error

	// Reset re-arms the timer for d, called after every dispatch exactly
	// as the original resets T.it_value before each swapcontext.
	Reset(d time.Duration)

	// Stop disarms the timer permanently.
	Stop()
}
