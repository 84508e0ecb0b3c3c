package gtthread

import "fmt"

// Thread identifies a logical thread. The zero Thread has id 0, the same
// id as thread 0 (the main thread whose handle New and Init return), so
// it is equal to that thread's handle.
type Thread struct {
	id uint64
}

// String implements fmt.Stringer for debugging and log output.
func (t Thread) String() string {
	return fmt.Sprintf("gtthread(%d)", t.id)
}

// Equal reports whether a and b identify the same thread.
func Equal(a, b Thread) bool {
	return a.id == b.id
}

// ThreadFunc is the entry point run by a created thread. It receives its
// own handle as self, standing in for the implicit "current thread"
// identity the original's thread-local gtthread_self() provides: Go has
// no supported per-goroutine-local storage, so self is threaded through
// explicitly instead, and is the handle to pass to Yield, Exit and Cancel
// from inside the function body. Its return value becomes the retval
// observed by a joiner, unless the thread was cancelled first, in which
// case the joiner observes Cancelled instead.
type ThreadFunc func(self Thread, arg any) (retval any)

// cancelledValue is a distinct, unexported type so that Cancelled can never
// collide with a value a ThreadFunc legitimately returns.
type cancelledValue struct{}

func (cancelledValue) String() string { return "gtthread.Cancelled" }

// Cancelled is the sentinel retval a joiner observes when the joined
// thread was terminated by Cancel rather than returning normally.
var Cancelled any = cancelledValue{}
