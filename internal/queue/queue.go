// Package queue provides the ordered buffer between request handlers and the
// executor drain loops.
package queue

import "sync"

// Queue is an unbounded FIFO. Many producers may Enqueue concurrently; exactly
// one consumer drains it. Neither operation blocks beyond the buffer mutex.
// There is no size cap and no cancellation of queued items.
type Queue[T any] struct {
	mu    sync.Mutex
	items []T

	wake chan struct{}
}

func New[T any]() *Queue[T] {
	return &Queue[T]{wake: make(chan struct{}, 1)}
}

// Enqueue appends an item to the tail and nudges the consumer.
func (q *Queue[T]) Enqueue(item T) {
	q.mu.Lock()
	q.items = append(q.items, item)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// Dequeue removes and returns the head, or reports an empty queue.
func (q *Queue[T]) Dequeue() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	item := q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]
	return item, true
}

// Wake signals after an Enqueue. The consumer parks on it instead of spinning;
// the signal is coalesced, so a drained receiver must re-check the queue.
func (q *Queue[T]) Wake() <-chan struct{} {
	return q.wake
}

func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
