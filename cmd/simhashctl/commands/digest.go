// Copyright (c) 2024 Symbol Not Found LLC
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
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// github.com:seomoz/simhash-go/cmd/simhashctl/commands/digest.go

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seomoz/simhash-go"
)

// digestCmd computes and prints one SimHash fingerprint, from a literal
// string argument or a file's contents.
func digestCmd() *cobra.Command {
	var (
		window int
		file   string
	)

	cmd := &cobra.Command{
		Use:   "digest [string]",
		Short: "Compute the SimHash fingerprint of a string or file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input []byte
			switch {
			case file != "":
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("read %s: %w", file, err)
				}
				input = data
			case len(args) > 0:
				input = []byte(args[0])
			default:
				return fmt.Errorf("expected a --file flag or a string argument")
			}

			fp := simhash.Fingerprint(input, window, nil)
			fmt.Fprintf(cmd.OutOrStdout(), "0x%016X\n", fp)
			return nil
		},
	}

	cmd.Flags().IntVar(&window, "window", simhash.DefaultWindow, "cyclic hash window size")
	cmd.Flags().StringVar(&file, "file", "", "path to a file that should be fingerprinted")

	return cmd
}
