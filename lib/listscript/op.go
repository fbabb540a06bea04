// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package listscript implements a small line-oriented language for
// driving a containers.SinglyLinkedList[int], for exploring and
// exercising the list from the command line.
package listscript

import (
	"fmt"
	"strconv"
	"strings"
)

type Verb int

const (
	VerbAppend Verb = iota
	VerbPrepend
	VerbInsertAt
	VerbSetAt
	VerbGetAt
	VerbFind
	VerbDeleteHead
	VerbDeleteTail
	VerbDeleteAt
	VerbDelete
	VerbFront
	VerbBack
	VerbClear
	VerbReverse
	VerbMerge
	VerbSize
	VerbIsEmpty
	VerbPrint
)

// nargs is the number of integer arguments that a verb takes; -1
// means any number.
type verbInfo struct {
	name  string
	nargs int
}

var verbs = []verbInfo{
	VerbAppend:     {"append", 1},
	VerbPrepend:    {"prepend", 1},
	VerbInsertAt:   {"insert-at", 2},
	VerbSetAt:      {"set-at", 2},
	VerbGetAt:      {"get-at", 1},
	VerbFind:       {"find", 1},
	VerbDeleteHead: {"delete-head", 0},
	VerbDeleteTail: {"delete-tail", 0},
	VerbDeleteAt:   {"delete-at", 1},
	VerbDelete:     {"delete", 1},
	VerbFront:      {"front", 0},
	VerbBack:       {"back", 0},
	VerbClear:      {"clear", 0},
	VerbReverse:    {"reverse", 0},
	VerbMerge:      {"merge", -1},
	VerbSize:       {"size", 0},
	VerbIsEmpty:    {"is-empty", 0},
	VerbPrint:      {"print", 0},
}

var verbsByName = func() map[string]Verb {
	ret := make(map[string]Verb, len(verbs))
	for verb, info := range verbs {
		ret[info.name] = Verb(verb)
	}
	return ret
}()

func (v Verb) String() string {
	if v < 0 || int(v) >= len(verbs) {
		return fmt.Sprintf("Verb(%d)", int(v))
	}
	return verbs[v].name
}

// ParseVerb returns the Verb with the given name.
func ParseVerb(name string) (Verb, error) {
	verb, ok := verbsByName[name]
	if !ok {
		return 0, fmt.Errorf("unknown operation %q", name)
	}
	return verb, nil
}

// Op is a single parsed operation.
type Op struct {
	Line int
	Verb Verb
	Args []int
}

// String returns the Op as it would appear in a script.
func (op Op) String() string {
	var ret strings.Builder
	ret.WriteString(op.Verb.String())
	for _, arg := range op.Args {
		ret.WriteByte(' ')
		ret.WriteString(strconv.Itoa(arg))
	}
	return ret.String()
}
