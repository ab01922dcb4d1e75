/*
Package queue implements a FIFO queue on top of a growable array list.

Dequeue closes the gap at the front of the backing store and is therefore
O(n). For queues holding large numbers of elements a ring buffer is the
better fit; this queue is meant for the modest sizes where the simplicity
of a single contiguous store wins.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package queue

import (
	"errors"

	"github.com/npillmayer/mutable/arraylist"
	"github.com/npillmayer/mutable/maybe"
)

// ErrEmptyQueue is returned by Dequeue when called on a queue without elements.
var ErrEmptyQueue = errors.New("queue: dequeue from empty queue")

// Queue is a FIFO queue of elements of type T. Queues have to be created
// with New; the zero value of Queue is not usable.
type Queue[T any] struct {
	items *arraylist.List[T] // front of queue is the list's first element
}

// New creates an empty queue. Options are handed through to the backing
// array list.
func New[T any](opts ...arraylist.Option) *Queue[T] {
	return &Queue[T]{items: arraylist.New[T](opts...)}
}

// Enqueue puts an element at the back of the queue. Amortized O(1).
func (q *Queue[T]) Enqueue(value T) {
	q.items.Push(value)
}

// Dequeue removes and returns the front element. O(n).
func (q *Queue[T]) Dequeue() (T, error) {
	value, err := q.items.PopFront()
	if err != nil {
		var none T
		return none, ErrEmptyQueue
	}
	return value, nil
}

// Peek returns the front element without removing it, if any.
func (q *Queue[T]) Peek() maybe.Maybe[T] {
	return q.items.First()
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return q.items.Len()
}

// IsEmpty returns true iff the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.items.IsEmpty()
}
