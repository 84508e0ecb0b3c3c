package gtthread

import "sync"

// teardown guarantees process termination happens exactly once, adapted
// from the reference-counted shutdown-once contract in cgroup.go: that
// package waits for a whole set of contexts to finish before running one
// shutdown function; here the run queue itself is already the thing being
// counted down to zero; teardown only needs to guard the single shutdown
// action against being reached twice, from a tick and a voluntary Yield
// racing to notice the queue just emptied.
type teardown struct {
	once sync.Once
}

// terminate runs the "drain the dead queue, destroy every queue, end the
// process" sequence from the original's last-thread gtthread_exit. Queue
// contents need no explicit freeing in Go - the garbage collector
// reclaims them once unreferenced - so this reduces to dropping the
// queues, resolving Terminated, and invoking the exit hook.
func (s *Scheduler) terminate(code int) {
	s.teardown.once.Do(func() {
		s.mu.Lock()
		s.runQ = nil
		s.deadQ = nil
		s.joinQ = nil
		s.cancelQ = nil
		s.timer.Stop()
		s.mu.Unlock()

		// exit runs before resolveTerminate so that a caller blocked on
		// Terminated().Wait is guaranteed the hook has already fired by
		// the time it wakes.
		s.exit(code)
		s.resolveTerminate(code, nil)
	})
}
