// Package fifo implements a generic intrusive FIFO queue.
//
// It backs every queue the scheduler keeps (run, dead, join, cancel): plain
// enqueue/pop/front in amortised O(1), plus a cycle operation that rotates
// the front element to the back without exposing it to the caller, used to
// scan a queue (for a matching id, say) without disturbing the order of
// elements that don't match.
package fifo

// Queue is a single-consumer FIFO of values of type T.
//
// The zero Queue is ready to use. A Queue is not safe for concurrent use;
// callers are expected to hold their own lock around it, exactly as the
// scheduler does around each of its four queues.
type Queue[T any] struct {
	items []T
	head  int
}
