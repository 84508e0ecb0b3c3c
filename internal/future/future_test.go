package future

import (
	"context"
	"errors"
	"testing"
)

func TestFuture(t *testing.T) {
	ctx := t.Context()

	nestedCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	f, resolve := New[int]()

	go func() {
		cancel()
	}()
	if _, err := f.Wait(nestedCtx); err != context.Canceled {
		t.Errorf("expected Canceled to pass through")
	}

	resolve(123, nil)
	if _, err := f.Wait(nestedCtx); err != context.Canceled {
		t.Errorf("expected Canceled to be observed first")
	}

	val, err := f.Wait(ctx)
	if err != nil {
		t.Errorf("expected nil err, was: %v", err)
	}
	if val != 123 {
		t.Errorf("value was not expected: %d", val)
	}

	resolve(456, errors.New("ignored"))
	val, err = f.Wait(ctx)
	if err != nil || val != 123 {
		t.Errorf("second resolve should have no effect, got %d, %v", val, err)
	}
}
