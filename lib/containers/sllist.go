// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package containers

import (
	"fmt"
	"iter"
)

// SinglyLinkedListEntry[T] is an entry in a SinglyLinkedList[T].
//
// An entry obtained from .Find or .FindFunc is only valid until the
// next call that mutates the list.
type SinglyLinkedListEntry[T comparable] struct {
	next  *SinglyLinkedListEntry[T]
	Value T
}

// Next returns the entry after this one, or nil if this is the last
// entry in the list.
func (entry *SinglyLinkedListEntry[T]) Next() *SinglyLinkedListEntry[T] { return entry.next }

// SinglyLinkedList is a singly-linked list with O(1) access to both
// ends for insertion, and O(1) removal from the front.
//
// The list is headed by a sentinel entry that is embedded in the
// list itself, so that "insert at the front" and "insert after an
// entry" are the same operation.  The sentinel is never exposed.
//
// A zero SinglyLinkedList is an empty list ready to use.  A
// SinglyLinkedList must not be copied after first use.
//
// SinglyLinkedList is not safe for concurrent use; callers that share
// a list between goroutines must serialize access themselves.
type SinglyLinkedList[T comparable] struct {
	sentinel SinglyLinkedListEntry[T]
	// tail is &sentinel when the list is empty.
	tail   *SinglyLinkedListEntry[T]
	length int
}

func NewSinglyLinkedList[T comparable]() *SinglyLinkedList[T] {
	l := new(SinglyLinkedList[T])
	l.lazyInit()
	return l
}

func (l *SinglyLinkedList[T]) lazyInit() {
	if l.tail == nil {
		l.tail = &l.sentinel
	}
}

// Len returns the number of values in the list.
func (l *SinglyLinkedList[T]) Len() int {
	return l.length
}

// IsEmpty returns whether the list empty or not.
func (l *SinglyLinkedList[T]) IsEmpty() bool {
	return l.length == 0
}

// entryBefore returns the entry that precedes position `index`; the
// sentinel for index 0.  The caller is responsible for bounds
// checking; 0 ≤ index ≤ l.length.
func (l *SinglyLinkedList[T]) entryBefore(index int) *SinglyLinkedListEntry[T] {
	prev := &l.sentinel
	for ; index > 0; index-- {
		prev = prev.next
	}
	return prev
}

// GetAt returns the value at position `index`, counting from 0 at
// the front of the list.  It returns an error wrapping ErrOutOfRange
// unless 0 ≤ index < l.Len().
func (l *SinglyLinkedList[T]) GetAt(index int) (T, error) {
	if index < 0 || index >= l.length {
		var zero T
		return zero, &IndexError{Op: "GetAt", Index: index, Len: l.length}
	}
	return l.entryBefore(index).next.Value, nil
}

// SetAt overwrites the value at position `index`.  It returns an
// error wrapping ErrOutOfRange unless 0 ≤ index < l.Len().
func (l *SinglyLinkedList[T]) SetAt(index int, value T) error {
	if index < 0 || index >= l.length {
		return &IndexError{Op: "SetAt", Index: index, Len: l.length}
	}
	l.entryBefore(index).next.Value = value
	return nil
}

// Front returns the first value in the list, or false if the list is
// empty.
func (l *SinglyLinkedList[T]) Front() (T, bool) {
	if l.length == 0 {
		var zero T
		return zero, false
	}
	return l.sentinel.next.Value, true
}

// Back returns the last value in the list, or false if the list is
// empty.
func (l *SinglyLinkedList[T]) Back() (T, bool) {
	if l.length == 0 {
		var zero T
		return zero, false
	}
	return l.tail.Value, true
}

// Find returns the first entry whose value is == to `value`, or nil
// if there is no such entry.
func (l *SinglyLinkedList[T]) Find(value T) *SinglyLinkedListEntry[T] {
	return l.FindFunc(func(v T) bool { return v == value })
}

// FindFunc returns the first entry whose value satisfies `pred`, or
// nil if there is no such entry.
func (l *SinglyLinkedList[T]) FindFunc(pred func(T) bool) *SinglyLinkedListEntry[T] {
	for entry := l.sentinel.next; entry != nil; entry = entry.next {
		if pred(entry.Value) {
			return entry
		}
	}
	return nil
}

// IndexOf returns the position of the first value that is == to
// `value`, or -1 if there is no such value.
func (l *SinglyLinkedList[T]) IndexOf(value T) int {
	i := 0
	for entry := l.sentinel.next; entry != nil; entry = entry.next {
		if entry.Value == value {
			return i
		}
		i++
	}
	return -1
}

// insertAfter splices a new entry in after `prev`, which must be the
// sentinel or an entry in the list.
func (l *SinglyLinkedList[T]) insertAfter(prev *SinglyLinkedListEntry[T], value T) {
	entry := &SinglyLinkedListEntry[T]{
		next:  prev.next,
		Value: value,
	}
	prev.next = entry
	if entry.next == nil {
		l.tail = entry
	}
	l.length++
}

// Append adds a value to the back of the list.
func (l *SinglyLinkedList[T]) Append(value T) {
	l.lazyInit()
	l.insertAfter(l.tail, value)
}

// Prepend adds a value to the front of the list.
func (l *SinglyLinkedList[T]) Prepend(value T) {
	l.lazyInit()
	l.insertAfter(&l.sentinel, value)
}

// InsertAt inserts a value such that it ends up at position `index`;
// InsertAt(0, v) is Prepend(v) and InsertAt(l.Len(), v) is
// Append(v).  It returns an error wrapping ErrOutOfRange (and does
// not modify the list) unless 0 ≤ index ≤ l.Len().
func (l *SinglyLinkedList[T]) InsertAt(index int, value T) error {
	if index < 0 || index > l.length {
		return &IndexError{Op: "InsertAt", Index: index, Len: l.length}
	}
	switch index {
	case 0:
		l.Prepend(value)
	case l.length:
		l.Append(value)
	default:
		l.insertAfter(l.entryBefore(index), value)
	}
	return nil
}

// InsertAfter inserts a value immediately after the first value that
// satisfies `pred`.  It returns false (and does not modify the list)
// if no value satisfies `pred`.
func (l *SinglyLinkedList[T]) InsertAfter(pred func(T) bool, value T) bool {
	entry := l.FindFunc(pred)
	if entry == nil {
		return false
	}
	l.insertAfter(entry, value)
	return true
}

// InsertBefore inserts a value immediately before the first value
// that satisfies `pred`.  It returns false (and does not modify the
// list) if no value satisfies `pred`.
func (l *SinglyLinkedList[T]) InsertBefore(pred func(T) bool, value T) bool {
	for prev := &l.sentinel; prev.next != nil; prev = prev.next {
		if pred(prev.next.Value) {
			l.insertAfter(prev, value)
			return true
		}
	}
	return false
}

// DeleteHead removes the first value in the list and returns it, or
// returns false if the list is empty.
func (l *SinglyLinkedList[T]) DeleteHead() (T, bool) {
	if l.length == 0 {
		var zero T
		return zero, false
	}
	return l.deleteAfter(&l.sentinel), true
}

// DeleteTail removes the last value in the list and returns it, or
// returns false if the list is empty.
//
// Unlike DeleteHead, DeleteTail is O(n), as it must walk the list to
// find the new tail.
func (l *SinglyLinkedList[T]) DeleteTail() (T, bool) {
	if l.length == 0 {
		var zero T
		return zero, false
	}
	return l.deleteAfter(l.entryBefore(l.length - 1)), true
}

// DeleteAt removes the value at position `index` and returns it.  It
// returns an error wrapping ErrOutOfRange (and does not modify the
// list) unless 0 ≤ index < l.Len(); in particular, every index is
// out of range for an empty list.
func (l *SinglyLinkedList[T]) DeleteAt(index int) (T, error) {
	if index < 0 || index >= l.length {
		var zero T
		return zero, &IndexError{Op: "DeleteAt", Index: index, Len: l.length}
	}
	switch index {
	case 0:
		val, _ := l.DeleteHead()
		return val, nil
	case l.length - 1:
		val, _ := l.DeleteTail()
		return val, nil
	default:
		return l.deleteAfter(l.entryBefore(index)), nil
	}
}

// Delete removes the first value that is == to `value` and returns
// it, or returns false if there is no such value.
func (l *SinglyLinkedList[T]) Delete(value T) (T, bool) {
	return l.DeleteFunc(func(v T) bool { return v == value })
}

// DeleteFunc removes the first value that satisfies `pred` and
// returns it, or returns false if there is no such value.
func (l *SinglyLinkedList[T]) DeleteFunc(pred func(T) bool) (T, bool) {
	for prev := &l.sentinel; prev.next != nil; prev = prev.next {
		if pred(prev.next.Value) {
			return l.deleteAfter(prev), true
		}
	}
	var zero T
	return zero, false
}

// deleteAfter unlinks the entry after `prev` and returns its value.
// There must be an entry after `prev`.
func (l *SinglyLinkedList[T]) deleteAfter(prev *SinglyLinkedListEntry[T]) T {
	entry := prev.next
	prev.next = entry.next
	if l.tail == entry {
		l.tail = prev
	}
	l.length--

	val := entry.Value
	*entry = SinglyLinkedListEntry[T]{} // no memory leaks
	return val
}

// Clear removes all values from the list.
func (l *SinglyLinkedList[T]) Clear() {
	for entry := l.sentinel.next; entry != nil; {
		next := entry.next
		*entry = SinglyLinkedListEntry[T]{} // no memory leaks
		entry = next
	}
	l.sentinel.next = nil
	l.tail = &l.sentinel
	l.length = 0
}

// Merge appends a copy of each value in `other` to the back of `l`,
// in order.  `other` is not modified.  It is valid for `other` to be
// `l`; the list is then doubled.
func (l *SinglyLinkedList[T]) Merge(other *SinglyLinkedList[T]) {
	if other == nil {
		return
	}
	// Bound by the original length, since `other` grows if it is
	// `l`.
	entry := other.sentinel.next
	for n := other.length; n > 0; n-- {
		l.Append(entry.Value)
		entry = entry.next
	}
}

// Reverse reverses the order of the list in-place, without
// allocating.
func (l *SinglyLinkedList[T]) Reverse() {
	if l.length < 2 {
		return
	}
	var prev *SinglyLinkedListEntry[T]
	curr := l.sentinel.next
	l.tail = curr
	for curr != nil {
		next := curr.next
		curr.next = prev
		prev = curr
		curr = next
	}
	l.sentinel.next = prev
}

// ToSlice returns a new slice of the values in the list, from front
// to back.
func (l *SinglyLinkedList[T]) ToSlice() []T {
	ret := make([]T, 0, l.length)
	for entry := l.sentinel.next; entry != nil; entry = entry.next {
		ret = append(ret, entry.Value)
	}
	return ret
}

// All returns an iterator over the values in the list, from front to
// back.  Each use of the iterator starts over from the current front
// of the list.
//
// The results are unspecified if the list is structurally modified
// (values added or removed) while iterating.
func (l *SinglyLinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for entry := l.sentinel.next; entry != nil; entry = entry.next {
			if !yield(entry.Value) {
				return
			}
		}
	}
}

// String implements fmt.Stringer.
func (l *SinglyLinkedList[T]) String() string {
	return fmt.Sprint(l.ToSlice())
}
