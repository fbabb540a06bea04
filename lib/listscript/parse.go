// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package listscript

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}
func (e *ParseError) Unwrap() error { return e.Err }

// ParseLine parses a single line of a script.  It returns false for
// lines that are blank or are only a comment.
func ParseLine(lineNum int, line string) (Op, bool, error) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Op{}, false, nil
	}
	verb, err := ParseVerb(fields[0])
	if err != nil {
		return Op{}, false, &ParseError{Line: lineNum, Err: err}
	}
	if nargs := verbs[verb].nargs; nargs >= 0 && len(fields)-1 != nargs {
		return Op{}, false, &ParseError{
			Line: lineNum,
			Err:  fmt.Errorf("%v: expected %d arguments, got %d", verb, nargs, len(fields)-1),
		}
	}
	op := Op{
		Line: lineNum,
		Verb: verb,
	}
	for _, field := range fields[1:] {
		arg, err := strconv.Atoi(field)
		if err != nil {
			return Op{}, false, &ParseError{
				Line: lineNum,
				Err:  fmt.Errorf("%v: %w", verb, err),
			}
		}
		op.Args = append(op.Args, arg)
	}
	return op, true, nil
}

// Parse reads a script, one operation per line.  Blank lines are
// ignored, and '#' starts a comment that runs to the end of the line.
func Parse(r io.Reader) ([]Op, error) {
	var ops []Op
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		op, ok, err := ParseLine(lineNum, scanner.Text())
		if err != nil {
			return nil, err
		}
		if ok {
			ops = append(ops, op)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ops, nil
}
