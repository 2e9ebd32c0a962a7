// Package queue provides a small FIFO queue.
package queue

// Q is a FIFO queue. Dequeue is O(1); the backing array is reused once the
// queue drains.
type Q[T any] struct {
	items []T
	head  int
}

func New[T any]() *Q[T] {
	return &Q[T]{}
}

func (q *Q[T]) Enqueue(item T) {
	q.items = append(q.items, item)
}

// Dequeue removes and returns the oldest item.
func (q *Q[T]) Dequeue() (T, bool) {
	var zero T
	if q.head >= len(q.items) {
		return zero, false
	}
	item := q.items[q.head]
	q.items[q.head] = zero
	q.head++
	if q.head == len(q.items) {
		q.Clear()
	}
	return item, true
}

// Peek returns the oldest item without removing it.
func (q *Q[T]) Peek() (T, bool) {
	if q.head >= len(q.items) {
		var zero T
		return zero, false
	}
	return q.items[q.head], true
}

func (q *Q[T]) Len() int {
	return len(q.items) - q.head
}

// At returns the item at index, counted from the front.
func (q *Q[T]) At(index int) (T, bool) {
	if index < 0 || index >= q.Len() {
		var zero T
		return zero, false
	}
	return q.items[q.head+index], true
}

// ForEach visits the items front to back until fn returns false.
func (q *Q[T]) ForEach(fn func(item T, index int) bool) {
	for i := q.head; i < len(q.items); i++ {
		if !fn(q.items[i], i-q.head) {
			return
		}
	}
}

func (q *Q[T]) Clear() {
	q.items = q.items[:0]
	q.head = 0
}
