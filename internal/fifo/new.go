package fifo

// New returns an empty Queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}
