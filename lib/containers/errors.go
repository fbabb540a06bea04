// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package containers

import (
	"errors"
	"fmt"
)

// For every *IndexError, `errors.Is(err, ErrOutOfRange)` returns
// true.
var ErrOutOfRange = errors.New("index out of range")

// IndexError is returned by list operations that are given an index
// outside of the valid range for that operation.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d: %v (len=%d)", e.Op, e.Index, ErrOutOfRange, e.Len)
}

func (*IndexError) Is(target error) bool {
	return target == ErrOutOfRange
}
