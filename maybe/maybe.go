/*
Package maybe provides an optional-value type in the tradition of Elm's
`Maybe` and Haskell's `Data.Maybe`. Containers in this module return a
Maybe from peek-style accessors, where "there is no element" is an
expected outcome rather than an error.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

import "fmt"

// Maybe carries an optional value of type T. The zero value of Maybe[T]
// is Nothing.
type Maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a present value.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, tag: true}
}

// Nothing is the absent value for type T.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Get unwraps in the comma-ok idiom. For Nothing the zero value of T is
// returned together with ok=false.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

// IsNothing returns true iff no value is present.
func (m Maybe[T]) IsNothing() bool {
	return !m.tag
}

// WithDefault unwraps the value, falling back to def for Nothing.
func (m Maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// Map applies f to a present value; Nothing passes through unchanged.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

func (m Maybe[T]) String() string {
	if m.tag {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}

// AndThen chains a computation which itself may come up empty.
// It has to be a package-level function, as Go methods cannot introduce
// additional type parameters.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return f(v)
	}
	return Nothing[S]()
}
