// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"context"
	"os"

	"github.com/datawire/dlib/dlog"
	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/spf13/cobra"

	"git.lukeshu.com/go/sllist/lib/containers"
	"git.lukeshu.com/go/sllist/lib/listscript"
)

func init() {
	var finalFlag bool
	cmd := subcommand{
		Command: cobra.Command{
			Use:   "run SCRIPT_FILE",
			Short: "Run a script, writing the result of each operation to stdout as JSON",
			Args:  cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		},
		RunE: func(ctx context.Context, ops []listscript.Op, _ *cobra.Command, _ []string) error {
			list := containers.NewSinglyLinkedList[int]()
			results, err := listscript.Run(ctx, list, ops)
			if err != nil {
				return err
			}
			if err := listscript.WriteResults(os.Stdout, results); err != nil {
				return err
			}
			if finalFlag {
				if err := writeJSON(os.Stdout, list.ToSlice()); err != nil {
					return err
				}
			}
			dlog.Infof(ctx, "ran %d operations, final length %d", len(results), list.Len())
			return nil
		},
	}
	cmd.Flags().BoolVar(&finalFlag, "final", false, "also write the final contents of the list")
	subcommands = append(subcommands, cmd)
}
