package fifo

import "testing"

func TestPushPopOrder(t *testing.T) {
	q := New[int]()
	q.Push(1)
	q.Push(2)
	q.Push(3)

	for _, want := range []int{1, 2, 3} {
		got, ok := q.Pop()
		if !ok || got != want {
			t.Fatalf("Pop() = %d, %v; want %d, true", got, ok, want)
		}
	}

	if _, ok := q.Pop(); ok {
		t.Fatalf("Pop() on empty queue returned ok=true")
	}
}

func TestFrontDoesNotRemove(t *testing.T) {
	q := New[string]()
	q.Push("a")
	q.Push("b")

	if v, ok := q.Front(); !ok || v != "a" {
		t.Fatalf("Front() = %q, %v; want a, true", v, ok)
	}
	if v, ok := q.Front(); !ok || v != "a" {
		t.Fatalf("second Front() = %q, %v; want a, true", v, ok)
	}
	if q.Size() != 2 {
		t.Fatalf("Size() = %d; want 2", q.Size())
	}
}

func TestCyclePreservesOrder(t *testing.T) {
	q := New[int]()
	q.Push(1)
	q.Push(2)
	q.Push(3)

	q.Cycle() // 1 moves to the back: 2, 3, 1

	var got []int
	for q.Size() > 0 {
		v, _ := q.Pop()
		got = append(got, v)
	}

	want := []int{2, 3, 1}
	for i, w := range want {
		if got[i] != w {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestRemoveMatchesWithoutDisturbingOrder(t *testing.T) {
	q := New[int]()
	for _, v := range []int{1, 2, 3, 4} {
		q.Push(v)
	}

	v, ok := q.Remove(func(v int) bool { return v == 3 })
	if !ok || v != 3 {
		t.Fatalf("Remove() = %d, %v; want 3, true", v, ok)
	}

	var got []int
	for q.Size() > 0 {
		v, _ := q.Pop()
		got = append(got, v)
	}
	want := []int{1, 2, 4}
	for i, w := range want {
		if got[i] != w {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestCompactionAfterManyPops(t *testing.T) {
	q := New[int]()
	const n = 200
	for i := 0; i < n; i++ {
		q.Push(i)
	}
	for i := 0; i < n; i++ {
		v, ok := q.Pop()
		if !ok || v != i {
			t.Fatalf("Pop() = %d, %v; want %d, true", v, ok, i)
		}
	}
	if q.Size() != 0 {
		t.Fatalf("Size() = %d; want 0", q.Size())
	}
	q.Push(42)
	if v, ok := q.Front(); !ok || v != 42 {
		t.Fatalf("Front() after refill = %d, %v; want 42, true", v, ok)
	}
}
