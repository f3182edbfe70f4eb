package queue

import (
	"errors"
	"sync"
)

// ErrClosed is returned by Push once MarkComplete has been called
var ErrClosed = errors.New("queue: push after mark complete")

// Queue is an unbounded FIFO shared by one or more producers and any number
// of consumers. Pop blocks until an item arrives or the queue is both
// complete and drained.
type Queue[T any] struct {
	mu       sync.Mutex
	cond     *sync.Cond
	items    []T
	head     int
	complete bool
}

// New creates an empty queue
func New[T any]() *Queue[T] {
	q := &Queue[T]{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Push appends v and wakes one waiting consumer. It never waits for a
// consumer.
func (q *Queue[T]) Push(v T) error {
	q.mu.Lock()
	if q.complete {
		q.mu.Unlock()
		return ErrClosed
	}
	q.items = append(q.items, v)
	q.mu.Unlock()

	q.cond.Signal()
	return nil
}

// Pop removes and returns the oldest item. The boolean is false only when
// the queue has been marked complete and no items remain.
func (q *Queue[T]) Pop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.head == len(q.items) && !q.complete {
		q.cond.Wait()
	}

	var zero T
	if q.head == len(q.items) {
		return zero, false
	}

	v := q.items[q.head]
	q.items[q.head] = zero
	q.head++

	// Reclaim the consumed prefix once it dominates the backing array
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	} else if q.head > 1024 && q.head*2 > len(q.items) {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}

	return v, true
}

// MarkComplete signals that no more items will be pushed and wakes every
// blocked consumer. Calling it more than once has no further effect.
func (q *Queue[T]) MarkComplete() {
	q.mu.Lock()
	q.complete = true
	q.mu.Unlock()

	q.cond.Broadcast()
}

// Len returns the number of items waiting to be popped
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) - q.head
}

// Completed reports whether MarkComplete has been called
func (q *Queue[T]) Completed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.complete
}
