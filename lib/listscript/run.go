// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package listscript

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"git.lukeshu.com/go/lowmemjson"
	"github.com/datawire/dlib/dlog"

	"git.lukeshu.com/go/sllist/lib/containers"
)

// Result is the outcome of running a single Op.
//
// Operations that produce nothing, or that find nothing, have an
// absent Value.  Operations that were given an out-of-range index
// have Err set, and did not modify the list.
type Result struct {
	Line  int                      `json:"line"`
	Op    string                   `json:"op"`
	Value containers.Optional[any] `json:"value"`
	Err   string                   `json:"error,omitempty"`
}

func some(val any) containers.Optional[any] {
	return containers.Optional[any]{OK: true, Val: val}
}

func maybe(val any, ok bool) containers.Optional[any] {
	return containers.OptionalFrom(val, ok)
}

// Apply runs a single Op against the list.  Errors that are not due
// to an out-of-range index are returned rather than recorded in the
// Result.
func Apply(list *containers.SinglyLinkedList[int], op Op) (Result, error) {
	ret := Result{
		Line: op.Line,
		Op:   op.String(),
	}
	if op.Verb < 0 || int(op.Verb) >= len(verbs) {
		return ret, fmt.Errorf("line %d: unknown operation %v", op.Line, op.Verb)
	}
	if nargs := verbs[op.Verb].nargs; nargs >= 0 && len(op.Args) != nargs {
		return ret, fmt.Errorf("line %d: %v: expected %d arguments, got %d", op.Line, op.Verb, nargs, len(op.Args))
	}
	var err error
	switch op.Verb {
	case VerbAppend:
		list.Append(op.Args[0])
	case VerbPrepend:
		list.Prepend(op.Args[0])
	case VerbInsertAt:
		err = list.InsertAt(op.Args[0], op.Args[1])
	case VerbSetAt:
		err = list.SetAt(op.Args[0], op.Args[1])
	case VerbGetAt:
		var val int
		val, err = list.GetAt(op.Args[0])
		ret.Value = maybe(val, err == nil)
	case VerbFind:
		idx := list.IndexOf(op.Args[0])
		ret.Value = maybe(idx, idx >= 0)
	case VerbDeleteHead:
		ret.Value = maybe(list.DeleteHead())
	case VerbDeleteTail:
		ret.Value = maybe(list.DeleteTail())
	case VerbDeleteAt:
		var val int
		val, err = list.DeleteAt(op.Args[0])
		ret.Value = maybe(val, err == nil)
	case VerbDelete:
		ret.Value = maybe(list.Delete(op.Args[0]))
	case VerbFront:
		ret.Value = maybe(list.Front())
	case VerbBack:
		ret.Value = maybe(list.Back())
	case VerbClear:
		list.Clear()
	case VerbReverse:
		list.Reverse()
	case VerbMerge:
		other := containers.NewSinglyLinkedList[int]()
		for _, arg := range op.Args {
			other.Append(arg)
		}
		list.Merge(other)
	case VerbSize:
		ret.Value = some(list.Len())
	case VerbIsEmpty:
		ret.Value = some(list.IsEmpty())
	case VerbPrint:
		ret.Value = some(list.ToSlice())
	}
	if err != nil {
		if !errors.Is(err, containers.ErrOutOfRange) {
			return ret, fmt.Errorf("line %d: %w", op.Line, err)
		}
		ret.Err = err.Error()
	}
	return ret, nil
}

// Run applies each Op to the list in order, stopping early if the
// Context is canceled.  Out-of-range errors are recorded in the
// corresponding Result and do not stop the run.
func Run(ctx context.Context, list *containers.SinglyLinkedList[int], ops []Op) ([]Result, error) {
	results := make([]Result, 0, len(ops))
	for _, op := range ops {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		opCtx := dlog.WithField(ctx, "listscript.line", op.Line)
		dlog.Tracef(opCtx, "%v", op)
		result, err := Apply(list, op)
		if err != nil {
			return results, err
		}
		if result.Err != "" {
			dlog.Warnf(opCtx, "%v: %s", op, result.Err)
		}
		results = append(results, result)
	}
	dlog.Debugf(ctx, "ran %d operations; list has %d values", len(results), list.Len())
	return results, nil
}

// WriteResults writes the results as JSON, one object per line.
func WriteResults(w io.Writer, results []Result) (err error) {
	buffer := bufio.NewWriter(w)
	defer func() {
		if _err := buffer.Flush(); err == nil && _err != nil {
			err = _err
		}
	}()
	for _, result := range results {
		if err := lowmemjson.Encode(buffer, result); err != nil {
			return err
		}
		if err := buffer.WriteByte('\n'); err != nil {
			return err
		}
	}
	return nil
}
