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
// github.com:seomoz/simhash-go/cmd/simhashctl/commands/sample.go

package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/seomoz/simhash-go"
	"github.com/seomoz/simhash-go/internal/corpus"
)

// sampleCmd fingerprints a deterministic synthetic corpus and prints the
// pairwise Hamming distances between consecutive documents, a quick way
// to sanity-check a window size or byte-hasher change without needing
// real sample text on hand.
func sampleCmd() *cobra.Command {
	var (
		seed        int64
		count       int
		wordsPerDoc int
		window      int
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Fingerprint a deterministic synthetic corpus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			docs := corpus.Generate(uint64(seed), count, wordsPerDoc)
			out := cmd.OutOrStdout()

			var prev uint64
			for i, doc := range docs {
				fp := simhash.Fingerprint([]byte(doc), window, nil)
				if i == 0 {
					fmt.Fprintf(out, "%2d  0x%016X  %s\n", i, fp, doc)
				} else {
					dist := simhash.NumDifferingBits(prev, fp)
					fmt.Fprintf(out, "%2d  0x%016X  %s  (%s from previous)\n",
						i, fp, doc, color.CyanString("%d bits", dist))
				}
				prev = fp
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 1, "seed for the synthetic corpus generator")
	cmd.Flags().IntVar(&count, "count", 5, "number of synthetic documents to generate")
	cmd.Flags().IntVar(&wordsPerDoc, "words", 12, "words per synthetic document")
	cmd.Flags().IntVar(&window, "window", simhash.DefaultWindow, "cyclic hash window size")

	return cmd
}
