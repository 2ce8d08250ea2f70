// Copyright (c) 2025 Gabriel Peart
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func DefineAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <offset> <blocks> <name> [device]",
		Short: "Add a partition covering a block range",
		Long: `The 'add' command creates a partition starting at block <offset> and
spanning <blocks> blocks. Offset and block count accept decimal or
0x-prefixed hex. On a device without a valid GPT, a fresh empty table
is written first. The change is committed and the kernel is asked to
re-read the partition layout.`,
		Args:         cobra.RangeArgs(3, 4),
		SilenceUsage: true,
		RunE:         RunAdd,
	}
}

func RunAdd(cmd *cobra.Command, args []string) error {
	offset, err := strconv.ParseUint(args[0], 0, 64)
	if err != nil {
		return fmt.Errorf("invalid offset %q: %w", args[0], err)
	}
	blocks, err := strconv.ParseUint(args[1], 0, 64)
	if err != nil {
		return fmt.Errorf("invalid block count %q: %w", args[1], err)
	}
	return newOps(cmd).Add(deviceArg(args, 3), offset, blocks, args[2])
}
