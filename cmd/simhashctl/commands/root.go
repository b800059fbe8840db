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
// github.com:seomoz/simhash-go/cmd/simhashctl/commands/root.go

// Package commands implements simhashctl's cobra command tree: digest,
// tokenize, bench, and sample.
package commands

import "github.com/spf13/cobra"

// Root builds the simhashctl command tree.
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "simhashctl",
		Short: "Compute and index SimHash fingerprints",
	}

	root.AddCommand(digestCmd())
	root.AddCommand(tokenizeCmd())
	root.AddCommand(benchCmd())
	root.AddCommand(sampleCmd())

	return root
}
