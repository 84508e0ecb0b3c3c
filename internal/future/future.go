// Package future provides a minimal one-shot result cell.
//
// Scheduler.Terminated uses it to let tests observe process-teardown
// completion deterministically - blocking on it rather than sleeping and
// polling for the process to have "actually" exited.
package future

import (
	"context"
	"sync"
)

// Future represents a result that becomes available at most once. Only the
// blocking Wait is exposed: nothing in this module ever needs to poll a
// termination future non-blockingly, so no Sync/TryWait method is kept
// around to go unused.
type Future[T any] interface {
	// Wait blocks until the future resolves or ctx is done, whichever is first.
	Wait(ctx context.Context) (T, error)
}

type futureImpl[T any] struct {
	doneCh <-chan struct{}
	result T
	err    error
	once   sync.Once
}

func (f *futureImpl[T]) Wait(ctx context.Context) (res T, err error) {
	if err = context.Cause(ctx); err != nil {
		return
	}
	select {
	case <-ctx.Done():
		err = context.Cause(ctx)
		return
	case <-f.doneCh:
	}
	return f.result, f.err
}

// New creates a new resolvable future and the function that resolves it.
// Only the first call to resolve has any effect.
func New[T any]() (Future[T], func(result T, err error)) {
	doneCh := make(chan struct{})
	f := &futureImpl[T]{doneCh: doneCh}
	resolve := func(result T, err error) {
		f.once.Do(func() {
			f.result = result
			f.err = err
			close(doneCh)
		})
	}
	return f, resolve
}
