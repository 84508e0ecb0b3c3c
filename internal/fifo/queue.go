package fifo

// Size returns the number of elements currently queued.
func (q *Queue[T]) Size() int {
	return len(q.items) - q.head
}

// Push enqueues v at the back of the queue.
func (q *Queue[T]) Push(v T) {
	q.items = append(q.items, v)
}

// Front returns the element at the front of the queue without removing it.
// ok is false if the queue is empty.
func (q *Queue[T]) Front() (v T, ok bool) {
	if q.head >= len(q.items) {
		return
	}
	return q.items[q.head], true
}

// Pop removes and returns the element at the front of the queue. ok is
// false if the queue is empty.
func (q *Queue[T]) Pop() (v T, ok bool) {
	if q.head >= len(q.items) {
		return
	}
	v = q.items[q.head]
	var zero T
	q.items[q.head] = zero // drop the reference so the GC can reclaim it
	q.head++
	q.compact()
	return v, true
}

// Cycle moves the front element to the back of the queue, if any, without
// ever exposing it to the caller. It is the primitive behind Remove, and
// so behind every scan that must preserve relative order of the elements
// it skips over, such as the dispatcher's cancellation sweep.
func (q *Queue[T]) Cycle() {
	v, ok := q.Pop()
	if ok {
		q.Push(v)
	}
}

// Remove scans the queue for the first element matching pred and removes
// it, preserving the relative order of everything else. ok is false if no
// element matched.
func (q *Queue[T]) Remove(pred func(T) bool) (v T, ok bool) {
	n := q.Size()
	for i := 0; i < n; i++ {
		front, _ := q.Front()
		if !ok && pred(front) {
			v, ok = q.Pop()
			continue
		}
		q.Cycle()
	}
	return
}

// compact reclaims the dead space left by Pop once it grows large relative
// to the live region, keeping Push/Pop amortised O(1) without ever
// shrinking the backing array below what's live.
func (q *Queue[T]) compact() {
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
		return
	}
	if q.head > 64 && q.head*2 > len(q.items) {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}
}
