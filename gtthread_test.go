package gtthread_test

import (
	"testing"

	"github.com/kszr/gtthread"
)

func TestJoinReturnsValue(t *testing.T) {
	sched, main := gtthread.New(0)
	sched.SetExit(func(int) {})

	th := sched.Create(func(self gtthread.Thread, arg any) any {
		return 42
	}, nil)

	var status any
	if err := sched.Join(main, th, &status); err != nil {
		t.Fatalf("Join: %v", err)
	}
	if status != 42 {
		t.Errorf("status = %v, want 42", status)
	}
}

func TestJoinAgainAfterReapIsInvalidHandle(t *testing.T) {
	sched, main := gtthread.New(0)
	sched.SetExit(func(int) {})

	th := sched.Create(func(self gtthread.Thread, arg any) any {
		return nil
	}, nil)

	if err := sched.Join(main, th, nil); err != nil {
		t.Fatalf("first Join: %v", err)
	}
	if err := sched.Join(main, th, nil); err != gtthread.ErrInvalidHandle {
		t.Errorf("second Join err = %v, want ErrInvalidHandle", err)
	}
}

// TestSelfJoinRejected checks that joining self is reported as an invalid
// handle, distinct from the two-thread ErrMutualJoin case below.
func TestSelfJoinRejected(t *testing.T) {
	sched, main := gtthread.New(0)

	if err := sched.Join(main, main, nil); err != gtthread.ErrInvalidHandle {
		t.Errorf("Join(self, self): err = %v, want ErrInvalidHandle", err)
	}
}

// TestMutualJoinDetected creates two threads that each try to join the
// other. Exactly one must be rejected with ErrMutualJoin - the one that
// loses the race completes its join normally once the other exits.
func TestMutualJoinDetected(t *testing.T) {
	sched, main := gtthread.New(0)
	sched.SetExit(func(int) {})

	var t1, t2 gtthread.Thread
	results := make(chan error, 2)

	t1 = sched.Create(func(self gtthread.Thread, arg any) any {
		results <- sched.Join(self, t2, nil)
		return nil
	}, nil)
	t2 = sched.Create(func(self gtthread.Thread, arg any) any {
		results <- sched.Join(self, t1, nil)
		return nil
	}, nil)

	var errs []error
	for len(errs) < 2 {
		select {
		case err := <-results:
			errs = append(errs, err)
		default:
			sched.Yield(main)
		}
	}

	mutual := 0
	for _, err := range errs {
		switch err {
		case gtthread.ErrMutualJoin:
			mutual++
		case nil:
		default:
			t.Errorf("unexpected join error: %v", err)
		}
	}
	if mutual != 1 {
		t.Errorf("got %d ErrMutualJoin results, want exactly 1 (errs=%v)", mutual, errs)
	}
}

// TestRoundRobinOrder checks that threads run in the FIFO order they were
// created in, absent any cancellation or preemption.
func TestRoundRobinOrder(t *testing.T) {
	sched, main := gtthread.New(0)
	sched.SetExit(func(int) {})

	const n = 3
	var order []int
	done := make(chan struct{}, n)

	for i := 0; i < n; i++ {
		i := i
		sched.Create(func(self gtthread.Thread, arg any) any {
			order = append(order, i)
			done <- struct{}{}
			return nil
		}, nil)
	}

	finished := 0
	for finished < n {
		select {
		case <-done:
			finished++
		default:
			sched.Yield(main)
		}
	}

	if len(order) != n {
		t.Fatalf("order = %v, want %d entries", order, n)
	}
	for i := 0; i < n; i++ {
		if order[i] != i {
			t.Errorf("order = %v, want [0 1 2]", order)
			break
		}
	}
}

func TestSchedulerTerminatesWhenAllThreadsExit(t *testing.T) {
	sched, main := gtthread.New(0)

	var exitCalled bool
	var exitCode int
	sched.SetExit(func(code int) {
		exitCalled = true
		exitCode = code
	})

	th := sched.Create(func(self gtthread.Thread, arg any) any {
		return nil
	}, nil)

	go func() {
		if err := sched.Join(main, th, nil); err != nil {
			t.Errorf("Join: %v", err)
		}
		sched.Exit(main, nil)
	}()

	code, err := sched.Terminated().Wait(t.Context())
	if err != nil {
		t.Fatalf("Terminated().Wait: %v", err)
	}
	if code != 0 {
		t.Errorf("Terminated code = %d, want 0", code)
	}
	if !exitCalled {
		t.Errorf("exit hook was never called")
	}
	if exitCode != 0 {
		t.Errorf("exit hook code = %d, want 0", exitCode)
	}
}
