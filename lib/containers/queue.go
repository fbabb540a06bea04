// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package containers

import (
	"iter"
)

// Queue is a first-in-first-out queue.  A zero Queue is an empty
// queue ready to use.
type Queue[T comparable] struct {
	list SinglyLinkedList[T]
}

func (q *Queue[T]) Len() int      { return q.list.Len() }
func (q *Queue[T]) IsEmpty() bool { return q.list.IsEmpty() }
func (q *Queue[T]) Clear()        { q.list.Clear() }

// Enqueue adds a value to the back of the queue.
func (q *Queue[T]) Enqueue(val T) {
	q.list.Append(val)
}

// Dequeue removes and returns the value at the front of the queue,
// or returns false if the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	return q.list.DeleteHead()
}

// Peek returns the value at the front of the queue without removing
// it, or returns false if the queue is empty.
func (q *Queue[T]) Peek() (T, bool) {
	return q.list.Front()
}

// All returns an iterator over the values in the queue, from front
// to back.
func (q *Queue[T]) All() iter.Seq[T] {
	return q.list.All()
}
