// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package slices implements generic (type-parameterized) utilities
// for working with simple Go slices.
package slices

import (
	"golang.org/x/exp/constraints"
)

func Contains[T comparable](needle T, haystack []T) bool {
	return Index(haystack, needle) >= 0
}

// Index returns the position of the first `needle` in `haystack`, or
// -1 if it is not present.
func Index[T comparable](haystack []T, needle T) int {
	for i, straw := range haystack {
		if needle == straw {
			return i
		}
	}
	return -1
}

func Reverse[T any](slice []T) {
	for i := 0; i < len(slice)/2; i++ {
		j := (len(slice) - 1) - i
		slice[i], slice[j] = slice[j], slice[i]
	}
}

func Max[T constraints.Ordered](a T, rest ...T) T {
	ret := a
	for _, b := range rest {
		if b > ret {
			ret = b
		}
	}
	return ret
}
