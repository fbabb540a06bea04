// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/spf13/cobra"

	"git.lukeshu.com/go/sllist/lib/containers"
	"git.lukeshu.com/go/sllist/lib/listscript"
	"git.lukeshu.com/go/sllist/lib/slices"
	"git.lukeshu.com/go/sllist/lib/textui"
)

func init() {
	var spewFlag bool
	cmd := subcommand{
		Command: cobra.Command{
			Use:   "dump SCRIPT_FILE",
			Short: "Run a script, then dump the final state of the list",
			Args:  cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		},
		RunE: func(ctx context.Context, ops []listscript.Op, _ *cobra.Command, _ []string) error {
			list := containers.NewSinglyLinkedList[int]()
			if _, err := listscript.Run(ctx, list, ops); err != nil {
				return err
			}

			if spewFlag {
				spew := spew.NewDefaultConfig()
				spew.DisablePointerAddresses = true
				spew.Fdump(os.Stdout, list)
				return nil
			}

			textui.Fprintf(os.Stdout, "len=%d\n", list.Len())
			numWidth := 0
			for v := range list.All() {
				numWidth = slices.Max(numWidth, len(strconv.Itoa(v)))
			}
			table := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
			for i, v := range list.ToSlice() {
				fmt.Fprintf(table, "    [%d]\t%*s\n", i, numWidth, strconv.Itoa(v))
			}
			return table.Flush()
		},
	}
	cmd.Flags().BoolVar(&spewFlag, "spew", false, "dump the internal structure of the list rather than a table")
	subcommands = append(subcommands, cmd)
}
