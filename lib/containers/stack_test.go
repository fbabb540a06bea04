// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package containers_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"git.lukeshu.com/go/sllist/lib/containers"
)

func TestStack(t *testing.T) {
	t.Parallel()
	var stack containers.Stack[int]
	assert.True(t, stack.IsEmpty())
	_, ok := stack.Pop()
	assert.False(t, ok)
	_, ok = stack.Peek()
	assert.False(t, ok)

	for i := 1; i <= 3; i++ {
		stack.Push(i)
	}
	assert.Equal(t, 3, stack.Len())
	top, ok := stack.Peek()
	assert.True(t, ok)
	assert.Equal(t, 3, top)

	var all []int
	for v := range stack.All() {
		all = append(all, v)
	}
	assert.Equal(t, []int{3, 2, 1}, all)

	for i := 3; i >= 1; i-- {
		v, ok := stack.Pop()
		assert.True(t, ok)
		assert.Equal(t, i, v)
	}
	assert.True(t, stack.IsEmpty())

	stack.Push(4)
	stack.Clear()
	assert.Equal(t, 0, stack.Len())
}

func TestQueue(t *testing.T) {
	t.Parallel()
	var queue containers.Queue[string]
	assert.True(t, queue.IsEmpty())
	_, ok := queue.Dequeue()
	assert.False(t, ok)

	for _, s := range []string{"a", "b", "c"} {
		queue.Enqueue(s)
	}
	front, ok := queue.Peek()
	assert.True(t, ok)
	assert.Equal(t, "a", front)

	var all []string
	for v := range queue.All() {
		all = append(all, v)
	}
	assert.Equal(t, []string{"a", "b", "c"}, all)

	v, _ := queue.Dequeue()
	assert.Equal(t, "a", v)
	queue.Enqueue("d")
	var got []string
	for !queue.IsEmpty() {
		v, _ := queue.Dequeue()
		got = append(got, v)
	}
	assert.Equal(t, []string{"b", "c", "d"}, got)

	// emptied by dequeueing, the queue is still appendable
	queue.Enqueue("e")
	assert.Equal(t, 1, queue.Len())
	queue.Clear()
	assert.True(t, queue.IsEmpty())
}

func TestOptionalEncodeJSON(t *testing.T) {
	t.Parallel()
	var out strings.Builder
	assert.NoError(t, containers.Optional[int]{}.EncodeJSON(&out))
	assert.Equal(t, "null", out.String())

	out.Reset()
	assert.NoError(t, containers.OptionalFrom(5, true).EncodeJSON(&out))
	assert.Equal(t, "5", out.String())

	assert.Equal(t, containers.Optional[int]{}, containers.OptionalFrom(5, false))
}
