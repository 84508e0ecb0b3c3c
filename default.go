package gtthread

import (
	"sync"
	"time"
)

var (
	defaultMu   sync.Mutex
	defaultSched *Scheduler
)

// Init constructs the package-level default scheduler if one does not
// already exist, and returns the handle of thread 0 - the calling
// goroutine. It must be called once, before any other package-level
// function, from the goroutine that will act as the main thread. Calling
// it again is a no-op that returns the same handle.
//
// Most callers that only need a single scheduler per process should use
// Init and the package-level functions below; construct a *Scheduler
// directly with New to run more than one scheduler in the same process.
func Init(period time.Duration) Thread {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultSched != nil {
		return Thread{id: 0} // thread 0's handle, as New returned it
	}

	var main Thread
	defaultSched, main = New(period)
	return main
}

func defaultScheduler() *Scheduler {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultSched
}

// Create starts a new logical thread on the default scheduler. See
// Scheduler.Create.
func Create(fn ThreadFunc, arg any) Thread {
	return defaultScheduler().Create(fn, arg)
}

// Join blocks self until t finishes, on the default scheduler. See
// Scheduler.Join.
func Join(self Thread, t Thread, status *any) error {
	return defaultScheduler().Join(self, t, status)
}

// Exit terminates self on the default scheduler and never returns. See
// Scheduler.Exit.
func Exit(self Thread, retval any) {
	defaultScheduler().Exit(self, retval)
}

// Yield relinquishes self's turn on the default scheduler. See
// Scheduler.Yield.
func Yield(self Thread) {
	defaultScheduler().Yield(self)
}

// Self returns the handle of whichever thread currently holds the run
// queue's front on the default scheduler. See Scheduler.Self.
func Self() Thread {
	return defaultScheduler().Self()
}

// Cancel requests t's termination on the default scheduler. See
// Scheduler.Cancel.
func Cancel(t Thread) error {
	return defaultScheduler().Cancel(t)
}
