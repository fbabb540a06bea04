// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package containers

import (
	"iter"
)

// Stack is a last-in-first-out stack.  A zero Stack is an empty
// stack ready to use.
type Stack[T comparable] struct {
	list SinglyLinkedList[T]
}

func (s *Stack[T]) Len() int      { return s.list.Len() }
func (s *Stack[T]) IsEmpty() bool { return s.list.IsEmpty() }
func (s *Stack[T]) Clear()        { s.list.Clear() }

// Push adds a value to the top of the stack.
func (s *Stack[T]) Push(val T) {
	s.list.Prepend(val)
}

// Pop removes and returns the value at the top of the stack, or
// returns false if the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	return s.list.DeleteHead()
}

// Peek returns the value at the top of the stack without removing
// it, or returns false if the stack is empty.
func (s *Stack[T]) Peek() (T, bool) {
	return s.list.Front()
}

// All returns an iterator over the values in the stack, from top to
// bottom.
func (s *Stack[T]) All() iter.Seq[T] {
	return s.list.All()
}
