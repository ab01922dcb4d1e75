/*
Package stack implements a LIFO stack on top of a growable array list.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stack

import (
	"errors"

	"github.com/npillmayer/mutable/arraylist"
	"github.com/npillmayer/mutable/maybe"
)

// ErrEmptyStack is returned by Pop when called on a stack without elements.
var ErrEmptyStack = errors.New("stack: pop from empty stack")

// Stack is a LIFO stack of elements of type T. Stacks have to be created
// with New; the zero value of Stack is not usable.
type Stack[T any] struct {
	items *arraylist.List[T] // top of stack is the list's last element
}

// New creates an empty stack. Options are handed through to the backing
// array list.
func New[T any](opts ...arraylist.Option) *Stack[T] {
	return &Stack[T]{items: arraylist.New[T](opts...)}
}

// Push puts an element on top of the stack. Amortized O(1).
func (s *Stack[T]) Push(value T) {
	s.items.Push(value)
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, error) {
	value, err := s.items.Pop()
	if err != nil {
		var none T
		return none, ErrEmptyStack
	}
	return value, nil
}

// Top returns the top element without removing it, if any.
func (s *Stack[T]) Top() maybe.Maybe[T] {
	return s.items.Last()
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int {
	return s.items.Len()
}

// IsEmpty returns true iff the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return s.items.IsEmpty()
}
