package gtthread

// Join blocks self until t finishes (by returning or being cancelled),
// then, if status is non-nil, stores the retval it finished with there.
// A finished thread is reaped (its record is freed) once a single Join on
// it completes; joining it again after that returns ErrInvalidHandle,
// mirroring the "live -> finished -> reaped" lifecycle.
//
// Join is itself a blocking library call, realized as a busy-yield loop:
// self repeatedly yields its turn until the join subsystem marks its
// wait complete, exactly as the original's gtthread_join spins on
// is_joined under the scheduler's signal mask.
//
// At most one thread may be joined on a given target at a time. A second
// concurrent Join on the same live target overwrites the first waiter's
// registration (see notifyJoinersLocked), so the first waiter is never
// woken - the same undefined behavior pthread_join has for concurrent
// joiners of one thread.
func (s *Scheduler) Join(self Thread, t Thread, status *any) error {
	s.mu.Lock()

	selfRec, ok := s.all[self.id]
	if !ok {
		s.mu.Unlock()
		return ErrInvalidHandle
	}
	if self.id == t.id {
		// A thread joining itself is an invalid handle, not a deadlock: spec.md
		// §7 classifies it separately from mutual join (target already waiting
		// on caller), so callers distinguishing the two with errors.Is see the
		// right category.
		s.mu.Unlock()
		return ErrInvalidHandle
	}
	target, ok := s.all[t.id]
	if !ok {
		s.mu.Unlock()
		return ErrInvalidHandle
	}
	if s.wouldDeadlockLocked(selfRec, target) {
		s.mu.Unlock()
		return ErrMutualJoin
	}

	if target.finished {
		if status != nil {
			*status = target.retval
		}
		s.reapLocked(target)
		s.mu.Unlock()
		return nil
	}

	selfRec.join = joinWaiting
	selfRec.waitTarget = target.id
	target.joinee = selfRec
	s.joinQ.Push(selfRec)
	s.mu.Unlock()

	// If self is cancelled while parked in the loop below, yieldLocked's
	// call to runtime.Goexit never returns here - so the cleanup that would
	// otherwise run on the success path below must be deferred, or self's
	// stale entry would be left dangling in the join queue forever,
	// violating the invariant that it only ever references run-queue
	// threads (spec.md §3).
	defer func() {
		s.mu.Lock()
		s.joinQ.Remove(func(r *record) bool { return r == selfRec })
		s.mu.Unlock()
	}()

	for {
		s.mu.Lock()
		if selfRec.join == joinCompleted {
			selfRec.join = joinNone
			selfRec.waitTarget = noTarget
			if status != nil {
				*status = target.retval
			}
			s.reapLocked(target)
			s.mu.Unlock()
			return nil
		}
		s.yieldLocked(selfRec) // unlocks
	}
}

// notifyJoinersLocked applies the "joininator" wakeup: if a joiner is
// waiting on dead specifically, it is marked completed. The target
// record's joinee pointer identifies the sole waiter directly (set only
// while holding mu, by Join above), which replaces the original's O(n)
// join-queue scan with an O(1) lookup; the join queue itself still exists
// so a waiter can always find and remove its own entry.
func (s *Scheduler) notifyJoinersLocked(dead *record) {
	if dead.joinee == nil {
		return
	}
	dead.joinee.join = joinCompleted
	dead.joinee = nil
}

// wouldDeadlockLocked reports whether self joining target would deadlock:
// target is, transitively through the join queue, already waiting on
// self. mu must be held by the caller.
func (s *Scheduler) wouldDeadlockLocked(self, target *record) bool {
	cur := target
	for steps := 0; cur != nil && cur.join == joinWaiting && steps <= len(s.all); steps++ {
		if cur.waitTarget == self.id {
			return true
		}
		cur = s.all[cur.waitTarget]
	}
	return false
}

// reapLocked removes a finished, joined thread's record from the dead
// queue and the scheduler's handle registry, freeing it. mu must be held
// by the caller.
func (s *Scheduler) reapLocked(rec *record) {
	s.deadQ.Remove(func(r *record) bool { return r == rec })
	delete(s.all, rec.id)
}
