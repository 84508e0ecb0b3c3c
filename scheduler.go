package gtthread

import (
	"log"
	"os"
	"sync"
	"time"

	"github.com/kszr/gtthread/internal/fifo"
	"github.com/kszr/gtthread/internal/future"
)

// Scheduler is a single-process, single-active-thread round-robin
// dispatcher for logical threads. The zero Scheduler is not usable;
// construct one with New.
type Scheduler struct {
	mu   sync.Mutex
	cond *sync.Cond // broadcast whenever the run queue's front may have changed

	nextID uint64
	all    map[uint64]*record // every record not yet reaped, live or finished

	runQ    *fifo.Queue[*record]
	deadQ   *fifo.Queue[*record]
	joinQ   *fifo.Queue[*record]
	cancelQ *fifo.Queue[uint64]

	period time.Duration
	timer  preemptTimer

	teardown teardown

	terminated       future.Future[int]
	resolveTerminate func(code int, err error)

	// exit is called exactly once, when the run queue empties, with the
	// process exit code. It defaults to os.Exit; tests override it so the
	// test binary survives a scenario that runs to completion.
	exit func(code int)
}

// New constructs a Scheduler and returns it along with the handle of
// thread 0, the "main" logical thread represented by the calling
// goroutine.
//
// period is the preemption quantum: the scheduler attempts to rotate the
// run queue roughly every period even if the running thread never calls
// Yield. Zero disables timer-driven preemption; threads are then switched
// only at Yield, Join, Exit, Cancel and Mutex calls. See SPEC_FULL.md §0
// for why "attempt" rather than "force": Go provides no supported way to
// interrupt an arbitrary running goroutine's instruction stream.
func New(period time.Duration) (*Scheduler, Thread) {
	s := &Scheduler{
		all:     map[uint64]*record{},
		runQ:    fifo.New[*record](),
		deadQ:   fifo.New[*record](),
		joinQ:   fifo.New[*record](),
		cancelQ: fifo.New[uint64](),
		period:  period,
		exit:    os.Exit,
	}
	s.cond = sync.NewCond(&s.mu)
	s.terminated, s.resolveTerminate = future.New[int]()

	main := newRecord(s.nextID)
	s.nextID++
	s.all[main.id] = main
	s.runQ.Push(main)

	s.timer = newPreemptTimer(period, s.tick)
	if period > 0 {
		if err := s.timer.Start(); err != nil {
			log.Fatalf("gtthread: starting preemption timer: %v", err)
		}
	}

	return s, main.handle()
}

// Terminated resolves once the scheduler's run queue has fully drained and
// teardown has run, with the process exit code it was given. Tests use
// this instead of sleeping to observe "the last thread exited".
func (s *Scheduler) Terminated() future.Future[int] {
	return s.terminated
}

// SetExit overrides the process-termination hook, which otherwise defaults
// to os.Exit. Intended for tests.
func (s *Scheduler) SetExit(exit func(code int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exit = exit
}

// Self returns the handle of whichever thread currently holds the run
// queue's front, i.e. is scheduled to run. This is an introspection
// helper, distinct from the self handle a ThreadFunc already carries: it
// is useful for logging or tests ("who is currently scheduled"), not for
// a thread identifying itself.
func (s *Scheduler) Self() Thread {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.runQ.Front()
	if !ok {
		return Thread{}
	}
	return cur.handle()
}

// Create starts a new logical thread running fn(self, arg) and returns its
// handle. The new thread is appended to the back of the run queue; it
// does not run until it reaches the front.
func (s *Scheduler) Create(fn ThreadFunc, arg any) Thread {
	s.mu.Lock()
	rec := newRecord(s.nextID)
	s.nextID++
	s.all[rec.id] = rec
	s.runQ.Push(rec)
	s.mu.Unlock()

	go s.trampoline(rec, fn, arg)

	return rec.handle()
}

// trampoline is the goroutine body backing every created thread: wait for
// the first turn, run the user function, then exit with its result. There
// is no path back into an undefined continuation, matching Design Notes
// §9's requirement on the original's apply(). A thread cancelled before it
// ever reaches the front - lazily, while still queued behind others - is
// caught here too: it never runs fn at all.
func (s *Scheduler) trampoline(rec *record, fn ThreadFunc, arg any) {
	s.mu.Lock()
	alive := s.awaitTurnLocked(rec)
	s.mu.Unlock()
	if !alive {
		return
	}

	retval := fn(rec.handle(), arg)
	s.Exit(rec.handle(), retval)
}
