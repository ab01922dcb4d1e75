package arraylist

import (
	"errors"
	"fmt"

	"github.com/npillmayer/mutable/maybe"
)

// DefaultCapacity is the capacity of the backing store for lists created
// without an InitialCapacity option.
const DefaultCapacity = 10

// ErrEmptyList is returned by Pop when called on a list without elements.
var ErrEmptyList = errors.New("arraylist: pop from empty list")

// OutOfBoundsError is returned by operations receiving an index outside the
// valid range for the operation. It carries the offending index and the list
// size at the time of the call.
type OutOfBoundsError struct {
	Index int
	Size  int
}

func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf("arraylist: index %d out of bounds for size %d", e.Index, e.Size)
}

// List is a growable array list holding elements of type T. Lists have to be
// created with New; the zero value of List is not usable.
//
// Use it like this:
//
//     l := arraylist.New[string]()
//     l.Push("Galaxy")
//     s, err := l.Get(0)   // returns "Galaxy"
//
type List[T any] struct {
	data []T // backing store; len(data) is the current capacity
	size int // elements present at data[0…size)
}

// New creates an empty list with options, if you need any.
func New[T any](opts ...Option) *List[T] {
	capacity := DefaultCapacity
	for _, option := range opts {
		capacity = option.config(capacity)
	}
	return &List[T]{data: make([]T, capacity)}
}

// Option is a type to help initializing lists at creation time.
type Option struct {
	config func(int) int
}

// InitialCapacity is an option to set the capacity of the backing store at
// creation time. Non-positive values fall back to DefaultCapacity.
//
// Use it like this:
//
//     l := arraylist.New[int](InitialCapacity(64))
//
func InitialCapacity(n int) Option {
	conf := func(capacity int) int {
		if n <= 0 {
			return DefaultCapacity
		}
		return n
	}
	return Option{config: conf}
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.size
}

// Cap returns the capacity of the backing store. It is never less than Len.
func (l *List[T]) Cap() int {
	return len(l.data)
}

// IsEmpty returns true iff the list holds no elements.
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// First returns the element at index 0, if any.
func (l *List[T]) First() maybe.Maybe[T] {
	if l.size == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.data[0])
}

// Last returns the element at the highest index, if any.
func (l *List[T]) Last() maybe.Maybe[T] {
	if l.size == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.data[l.size-1])
}

// Get returns the element at index i without modifying the list.
func (l *List[T]) Get(i int) (T, error) {
	if !l.isElementIndex(i) {
		var none T
		return none, OutOfBoundsError{Index: i, Size: l.size}
	}
	return l.data[i], nil
}

// Set replaces the element at index i, returning the previous element.
func (l *List[T]) Set(i int, value T) (T, error) {
	if !l.isElementIndex(i) {
		var none T
		return none, OutOfBoundsError{Index: i, Size: l.size}
	}
	prev := l.data[i]
	l.data[i] = value
	return prev, nil
}

// Push appends an element at the end of the list. Amortized O(1).
func (l *List[T]) Push(value T) {
	if l.size == len(l.data) {
		l.resize(len(l.data) * 2)
	}
	l.data[l.size] = value
	l.size++
}

// PushFront inserts an element at index 0, shifting all present elements one
// slot to the right. O(n).
func (l *List[T]) PushFront(value T) {
	err := l.Insert(0, value)
	assertThat(err == nil, "index 0 is always a valid insertion position")
}

// Insert places an element at position i, shifting the elements at i and
// above one slot to the right. i may equal Len(), making Insert an append.
// Validation happens before any mutation; a failed Insert leaves the list
// untouched.
func (l *List[T]) Insert(i int, value T) error {
	if !l.isPositionIndex(i) {
		return OutOfBoundsError{Index: i, Size: l.size}
	}
	if l.size == len(l.data) {
		l.resize(len(l.data) * 2)
	}
	for j := l.size - 1; j >= i; j-- { // highest index first, or we'd overwrite
		l.data[j+1] = l.data[j]
	}
	l.data[i] = value
	l.size++
	return nil
}

// Pop removes and returns the element at the highest index.
func (l *List[T]) Pop() (T, error) {
	var none T
	if l.size == 0 {
		return none, ErrEmptyList
	}
	l.shrinkIfSparse()
	value := l.data[l.size-1]
	l.data[l.size-1] = none // release the slot, the list no longer owns the element
	l.size--
	return value, nil
}

// PopFront removes and returns the element at index 0. O(n).
func (l *List[T]) PopFront() (T, error) {
	return l.Remove(0)
}

// Remove takes the element at index i out of the list, shifting the elements
// above i one slot to the left to close the gap. Validation happens before
// any mutation; a failed Remove leaves the list untouched.
func (l *List[T]) Remove(i int) (T, error) {
	var none T
	if !l.isElementIndex(i) {
		return none, OutOfBoundsError{Index: i, Size: l.size}
	}
	l.shrinkIfSparse()
	value := l.data[i]
	copy(l.data[i:l.size-1], l.data[i+1:l.size])
	l.data[l.size-1] = none // release the vacated slot
	l.size--
	return value, nil
}
