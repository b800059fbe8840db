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
// github.com:seomoz/simhash-go/config/config.go

// Package config loads simhashctl's bench settings from an optional YAML
// file and environment variables, falling back to the reference driver's
// defaults when neither is present.
package config

import "errors"

// Default values matching the reference driver (spec §6): tolerance 3
// over the 6-block (11,11,11,11,11,9) mask family, window 4.
const (
	DefaultWindow = 4
	DefaultK      = 3
	DefaultN      = 100000
)

// DefaultMasks is the reference driver's mask family.
var DefaultMasks = []uint64{
	0xFFE0000000000000,
	0x001FFC0000000000,
	0x000003FF80000000,
	0x000000007FF00000,
	0x00000000000FFE00,
	0x00000000000001FF,
}

// BenchConfig configures the bench subcommand: the SimHash window, the
// table's Hamming tolerance, and the block family defining its
// permutation.
type BenchConfig struct {
	Window int      `mapstructure:"window"`
	K      int      `mapstructure:"k"`
	Masks  []uint64 `mapstructure:"masks"`
}

// Validate reports whether cfg describes a usable table: a positive
// window, a non-negative tolerance strictly below the number of blocks,
// and at least one block.
func (c BenchConfig) Validate() error {
	if c.Window <= 0 {
		return errors.New("config: window must be positive")
	}
	if len(c.Masks) == 0 {
		return errors.New("config: masks must not be empty")
	}
	if c.K < 0 || c.K >= len(c.Masks) {
		return errors.New("config: k must be in [0, len(masks))")
	}
	return nil
}
