package gtthread

import "runtime"

// Cancel requests that t be terminated, with Cancelled as the retval any
// joiner observes, instead of whatever it would otherwise have returned.
//
// If t is currently the thread at the front of the run queue - the
// common case being a thread cancelling itself via Cancel(self) - the
// cancellation is applied immediately: Cancel does not return to its
// caller, which is torn down on the spot via runtime.Goexit, so no
// statement after the call ever runs. Otherwise the request is queued and
// applied lazily, the next time t would otherwise be dispatched to run
// (the cancellation sweep in sweepCancelledLocked), exactly as the
// original's cancelatorium defers cancellation of a thread that isn't
// currently running.
func (s *Scheduler) Cancel(t Thread) error {
	s.mu.Lock()

	target, ok := s.all[t.id]
	if !ok {
		s.mu.Unlock()
		return ErrInvalidHandle
	}
	if target.finished {
		s.mu.Unlock()
		return nil
	}

	if front, _ := s.runQ.Front(); front == target {
		s.finishCurrentLocked(target, Cancelled)
		runtime.Goexit()
		return nil
	}

	s.cancelQ.Push(t.id)
	s.mu.Unlock()
	return nil
}
