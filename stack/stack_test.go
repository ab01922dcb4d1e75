package stack

import (
	"errors"
	"testing"
)

func TestStackPushPop(t *testing.T) {
	s := New[int]()
	s.Push(1)
	s.Push(2)
	s.Push(3)
	if s.Len() != 3 {
		t.Fatalf("expected stack length to be 3, is %d", s.Len())
	}
	for _, want := range []int{3, 2, 1} { // LIFO order
		got, err := s.Pop()
		if err != nil {
			t.Fatalf("expected Pop to succeed, got error: %v", err)
		}
		if got != want {
			t.Errorf("expected Pop to return %d, returned %d", want, got)
		}
	}
	if !s.IsEmpty() {
		t.Error("expected stack to be empty after popping everything, isn't")
	}
}

func TestStackPopEmpty(t *testing.T) {
	s := New[string]()
	if _, err := s.Pop(); !errors.Is(err, ErrEmptyStack) {
		t.Errorf("expected Pop on empty stack to return ErrEmptyStack, returned %v", err)
	}
}

func TestStackTop(t *testing.T) {
	s := New[int]()
	if !s.Top().IsNothing() {
		t.Error("expected Top of empty stack to be Nothing, isn't")
	}
	s.Push(7)
	if v := s.Top().WithDefault(-1); v != 7 {
		t.Errorf("expected Top to be Just(7), is %v", s.Top())
	}
	if s.Len() != 1 {
		t.Errorf("expected Top to leave the stack untouched, length is %d", s.Len())
	}
}
