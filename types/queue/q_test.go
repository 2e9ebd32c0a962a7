package queue

import (
	"slices"
	"testing"
)

func TestQueueOperations(t *testing.T) {
	q := New[string]()

	if _, ok := q.Dequeue(); ok {
		t.Error("expected Dequeue on empty queue to return false")
	}

	q.Enqueue("-a")
	q.Enqueue("-o")
	q.Enqueue("-x")

	if q.Len() != 3 {
		t.Fatalf("expected length 3 but got %d", q.Len())
	}

	item, ok := q.Peek()
	if !ok || item != "-a" {
		t.Errorf("expected Peek to return -a but got %q", item)
	}

	item, ok = q.Dequeue()
	if !ok || item != "-a" {
		t.Errorf("expected to dequeue -a but got %q", item)
	}

	if item, ok = q.At(1); !ok || item != "-x" {
		t.Errorf("expected At(1) to return -x but got %q", item)
	}
	if _, ok = q.At(2); ok {
		t.Error("expected At(2) to be out of range")
	}

	q.Dequeue()
	q.Dequeue()
	if q.Len() != 0 {
		t.Errorf("expected empty queue but got length %d", q.Len())
	}

	q.Enqueue("-b")
	if item, _ = q.Peek(); item != "-b" {
		t.Errorf("expected reuse after drain, got %q", item)
	}
}

func TestForEach(t *testing.T) {
	q := New[int]()
	for i := 1; i <= 5; i++ {
		q.Enqueue(i)
	}
	q.Dequeue()

	var seen []int
	q.ForEach(func(item int, index int) bool {
		seen = append(seen, item)
		return index < 2
	})

	if !slices.Equal(seen, []int{2, 3, 4}) {
		t.Errorf("unexpected iteration %v", seen)
	}

	q.Clear()
	if q.Len() != 0 {
		t.Errorf("expected cleared queue")
	}
}
