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
// github.com:seomoz/simhash-go/cmd/simhashctl/commands/bench.go

package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/seomoz/simhash-go/config"
	"github.com/seomoz/simhash-go/index"
)

// benchCmd reimplements the reference driver: build a table from the
// configured (k, masks), insert {i<<28 : 1<=i<N}, run the four per-i
// queries, and report the error count.
func benchCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "bench [N]",
		Short: "Run the permuted-index reference benchmark",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			n := config.DefaultN
			if len(args) > 0 {
				if _, err := fmt.Sscanf(args[0], "%d", &n); err != nil {
					return fmt.Errorf("parse N: %w", err)
				}
			}

			return runBench(cmd, cfg, n)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a bench config file")
	return cmd
}

// query describes one of the four per-i probes the reference driver runs.
type query struct {
	label       string
	offsetBits  uint64
	wantMatches bool
}

var driverQueries = []query{
	{"i<<28 | 0x03", 0x03, true},
	{"i<<28 | 0x09", 0x09, true},
	{"i<<28 | 0x41", 0x41, true},
	{"i<<28 | 0x0F", 0x0F, false},
}

// errBenchFailed is returned when the reference benchmark finds a query
// whose match/no-match outcome disagrees with the expected distance.
// main's log.Fatal on a non-nil Execute error gives the same non-zero
// exit status the reference driver specifies.
var errBenchFailed = errors.New("bench: reference driver found mismatched queries")

func runBench(cmd *cobra.Command, cfg *config.BenchConfig, n int) error {
	out := cmd.OutOrStdout()

	tb, err := index.New(cfg.K, cfg.Masks)
	if err != nil {
		return fmt.Errorf("build table: %w", err)
	}

	fmt.Fprintf(out, "inserting %s fingerprints...\n", humanize.Comma(int64(n-1)))
	for i := 1; i < n; i++ {
		tb.Insert(uint64(i) << 28)
	}

	errCount := 0
	queries := 0
	for i := 1; i < n; i++ {
		base := uint64(i) << 28
		for _, q := range driverQueries {
			queries++
			_, found := tb.FindAny(base | q.offsetBits)
			if found != q.wantMatches {
				errCount++
			}
		}
	}

	renderSummary(out, n, queries, errCount)

	if errCount != 0 {
		return errBenchFailed
	}
	return nil
}

func renderSummary(out io.Writer, n, queries, errCount int) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"inserted", "queries", "errors"})

	errorsCell := humanize.Comma(int64(errCount))
	if errCount != 0 {
		errorsCell = color.RedString(errorsCell)
	} else {
		errorsCell = color.GreenString(errorsCell)
	}

	t.AppendRow(table.Row{humanize.Comma(int64(n - 1)), humanize.Comma(int64(queries)), errorsCell})
	t.Render()
}
