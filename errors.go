package gtthread

import "errors"

var (
	// ErrInvalidHandle is returned when a Thread does not identify any
	// live or joinable thread known to the scheduler, and when a thread
	// tries to join itself - a self-join is never a valid target, not a
	// two-party deadlock.
	ErrInvalidHandle = errors.New("gtthread: invalid thread handle")

	// ErrMutualJoin is returned when honoring a join would deadlock: the
	// target is itself (transitively, through the join queue) waiting to
	// join the calling thread.
	ErrMutualJoin = errors.New("gtthread: mutual join would deadlock")

	// ErrInvalidMutex is returned by Mutex operations on a mutex that was
	// never initialized, or was already destroyed.
	ErrInvalidMutex = errors.New("gtthread: mutex not initialized")

	// ErrNotHolder is returned by Mutex.Unlock when the calling thread
	// does not currently hold the lock.
	ErrNotHolder = errors.New("gtthread: unlock by non-holder")
)
