// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"bufio"
	"context"
	"io"
	"os"

	"git.lukeshu.com/go/lowmemjson"
	"github.com/datawire/dlib/dlog"

	"git.lukeshu.com/go/sllist/lib/listscript"
)

func readScript(ctx context.Context, filename string) ([]listscript.Op, error) {
	ctx = dlog.WithField(ctx, "sllist.script", filename)
	var r io.Reader
	if filename == "-" {
		r = os.Stdin
	} else {
		fh, err := os.Open(filename)
		if err != nil {
			return nil, err
		}
		defer func() {
			_ = fh.Close()
		}()
		r = fh
	}
	dlog.Debugf(ctx, "Reading script...")
	ops, err := listscript.Parse(bufio.NewReader(r))
	if err != nil {
		return nil, err
	}
	dlog.Debugf(ctx, "... read %d operations", len(ops))
	return ops, nil
}

func writeJSON(w io.Writer, obj any) (err error) {
	buffer := bufio.NewWriter(w)
	defer func() {
		if _err := buffer.Flush(); err == nil && _err != nil {
			err = _err
		}
	}()
	if err := lowmemjson.Encode(buffer, obj); err != nil {
		return err
	}
	return buffer.WriteByte('\n')
}
