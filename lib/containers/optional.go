// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package containers

import (
	"io"

	"git.lukeshu.com/go/lowmemjson"
)

// Optional is a value that may be absent.
type Optional[T any] struct {
	OK  bool
	Val T
}

// OptionalFrom is a convenience for wrapping a `(val, ok)` return.
func OptionalFrom[T any](val T, ok bool) Optional[T] {
	if !ok {
		return Optional[T]{}
	}
	return Optional[T]{OK: true, Val: val}
}

var _ lowmemjson.Encodable = Optional[bool]{}

// EncodeJSON implements lowmemjson.Encodable; an absent value is
// encoded as `null`.
func (o Optional[T]) EncodeJSON(w io.Writer) error {
	if !o.OK {
		_, err := io.WriteString(w, "null")
		return err
	}
	return lowmemjson.Encode(w, o.Val)
}
