package gtthread

import (
	"sync"

	"github.com/kszr/gtthread/internal/fifo"
)

const noHolder = ^uint64(0)

// Mutex is a strictly FIFO mutual-exclusion lock: whichever thread has
// been waiting longest acquires the lock next, with no possibility of a
// later arrival stealing it out of order. It is grounded directly on
// gtthread_mutex.c's waiting_steque/locker_id pair.
//
// The zero Mutex is not usable; call Init (or Scheduler.NewMutex) first.
type Mutex struct {
	sched *Scheduler

	mu      sync.Mutex
	waiters *fifo.Queue[uint64]
	holder  uint64
	valid   bool
}

// Init binds m to the package-level default scheduler (see Init). Use
// Scheduler.NewMutex to create a mutex bound to a specific *Scheduler.
func (m *Mutex) Init() {
	m.bind(defaultScheduler())
}

// NewMutex returns a Mutex bound to s.
func (s *Scheduler) NewMutex() *Mutex {
	m := &Mutex{}
	m.bind(s)
	return m
}

func (m *Mutex) bind(s *Scheduler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sched = s
	m.waiters = fifo.New[uint64]()
	m.holder = noHolder
	m.valid = true
}

// Lock enqueues self and waits, cooperatively yielding between checks,
// until self reaches the front of the wait queue and the lock is free.
// Unlike the original's literal busy spin, each iteration calls Yield so
// the scheduler can make progress on other threads while this one waits.
//
// Yield never returns to a thread that was cancelled while parked here -
// it tears the goroutine down via runtime.Goexit instead - so Lock defers
// its own removal from the wait queue to run even on that path, otherwise
// a cancelled waiter would be stuck at the front of waiters forever,
// wedging the mutex for everyone behind it.
func (m *Mutex) Lock(self Thread) error {
	m.mu.Lock()
	if !m.valid {
		m.mu.Unlock()
		return ErrInvalidMutex
	}
	m.waiters.Push(self.id)
	m.mu.Unlock()

	acquired := false
	defer func() {
		if acquired {
			return
		}
		m.mu.Lock()
		m.waiters.Remove(func(id uint64) bool { return id == self.id })
		m.mu.Unlock()
	}()

	for {
		m.mu.Lock()
		front, ok := m.waiters.Front()
		if ok && front == self.id && m.holder == noHolder {
			m.holder = self.id
			acquired = true
			m.mu.Unlock()
			return nil
		}
		m.mu.Unlock()
		m.sched.Yield(self)
	}
}

// Unlock releases the lock. It fails with ErrNotHolder unless self is
// both the recorded holder and the front of the wait queue, and on
// success pops self off the wait queue, letting the next waiter's Lock
// loop observe the lock as free on its next check.
func (m *Mutex) Unlock(self Thread) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.valid {
		return ErrInvalidMutex
	}
	front, ok := m.waiters.Front()
	if !ok || m.holder != self.id || front != self.id {
		return ErrNotHolder
	}
	m.waiters.Pop()
	m.holder = noHolder
	return nil
}

// Destroy releases m's resources. Using m afterward returns
// ErrInvalidMutex.
func (m *Mutex) Destroy() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.valid = false
	m.waiters = nil
}
