// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package slices_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"git.lukeshu.com/go/sllist/lib/slices"
)

func TestIndex(t *testing.T) {
	t.Parallel()
	haystack := []int{3, 1, 4, 1, 5}
	assert.Equal(t, 1, slices.Index(haystack, 1))
	assert.Equal(t, 4, slices.Index(haystack, 5))
	assert.Equal(t, -1, slices.Index(haystack, 9))
	assert.Equal(t, -1, slices.Index[int](nil, 9))
	assert.True(t, slices.Contains(4, haystack))
	assert.False(t, slices.Contains(2, haystack))
}

func TestReverse(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		In, Out []int
	}{
		{nil, nil},
		{[]int{1}, []int{1}},
		{[]int{1, 2}, []int{2, 1}},
		{[]int{1, 2, 3}, []int{3, 2, 1}},
	} {
		slices.Reverse(tc.In)
		assert.Equal(t, tc.Out, tc.In)
	}
}

func TestMax(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 1, slices.Max(1))
	assert.Equal(t, 9, slices.Max(3, 9, 2))
	assert.Equal(t, 9, slices.Max(9, 3, 2))
	assert.Equal(t, "b", slices.Max("a", "b"))
}
