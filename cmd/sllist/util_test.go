// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/datawire/dlib/dlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.lukeshu.com/go/sllist/lib/listscript"
)

func TestReadScript(t *testing.T) {
	t.Parallel()
	ctx := dlog.NewTestContext(t, false)

	filename := filepath.Join(t.TempDir(), "script.txt")
	require.NoError(t, os.WriteFile(filename, []byte("append 1\n\nprint # show it\n"), 0o644))

	ops, err := readScript(ctx, filename)
	require.NoError(t, err)
	assert.Equal(t, []listscript.Op{
		{Line: 1, Verb: listscript.VerbAppend, Args: []int{1}},
		{Line: 3, Verb: listscript.VerbPrint},
	}, ops)

	_, err = readScript(ctx, filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()
	var out strings.Builder
	require.NoError(t, writeJSON(&out, []int{3, 1, 0}))
	assert.Equal(t, "[3,1,0]\n", out.String())
}
