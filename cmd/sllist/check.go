// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/datawire/dlib/dlog"
	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/spf13/cobra"

	"git.lukeshu.com/go/sllist/lib/listscript"
)

func init() {
	subcommands = append(subcommands, subcommand{
		Command: cobra.Command{
			Use:   "check SCRIPT_FILE",
			Short: "Parse a script without running it, writing it back out in canonical form",
			Args:  cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		},
		RunE: func(ctx context.Context, ops []listscript.Op, _ *cobra.Command, _ []string) (err error) {
			out := bufio.NewWriter(os.Stdout)
			defer func() {
				if _err := out.Flush(); err == nil && _err != nil {
					err = _err
				}
			}()
			for _, op := range ops {
				if _, err := fmt.Fprintln(out, op); err != nil {
					return err
				}
			}
			dlog.Infof(ctx, "script is OK: %d operations", len(ops))
			return nil
		},
	})
}
