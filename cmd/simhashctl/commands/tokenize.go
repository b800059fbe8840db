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
// github.com:seomoz/simhash-go/cmd/simhashctl/commands/tokenize.go

package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/seomoz/simhash-go/token"
)

// tokenizeCmd prints the span the letters-only tokenizer produces for
// each token in a string, for debugging the tokenizer policy standalone.
func tokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize <string>",
		Short: "Print the token spans the letters-only tokenizer would emit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := []byte(args[0])
			out := cmd.OutOrStdout()

			token.Walk(input, token.Letters, func(span token.Span) {
				if span.Len() == 0 {
					fmt.Fprintln(out, color.HiBlackString("  <gap>"))
					return
				}
				fmt.Fprintf(out, "  %s  [%d,%d)\n",
					color.GreenString("%q", string(input[span.Start:span.End])),
					span.Start, span.End)
			})
			return nil
		},
	}
	return cmd
}
