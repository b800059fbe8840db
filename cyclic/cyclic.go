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
// github.com:seomoz/simhash-go/cyclic/cyclic.go

// Package cyclic maintains a rolling hash over the last W pushed values,
// combining them so that only the most recent W contributions remain live.
package cyclic

import "math/bits"

// DefaultWindow is the window size used when none is configured.
const DefaultWindow = 4

// Hash holds a rolling combination of the last Window pushed values.
// The zero value is not usable; construct with New.
type Hash struct {
	window int
	tokens []uint64
	cursor int
	cur    uint64
}

// New creates a Hash with the given window size. A non-positive window
// falls back to DefaultWindow.
func New(window int) *Hash {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Hash{window: window, tokens: make([]uint64, window)}
}

// Window reports the configured window size.
func (h *Hash) Window() int {
	return h.window
}

// Push folds v into the rolling hash and returns the new combined value.
//
// A value's contribution is rotated one further bit with each subsequent
// push; after exactly Window pushes its total rotation reaches Window bits,
// at which point it is cancelled out by the explicit RotateLeft(old, window)
// term below. The hash therefore depends only on the last Window pushes
// once the window has filled.
func (h *Hash) Push(v uint64) uint64 {
	old := h.tokens[h.cursor]
	h.cur = RotateLeft(h.cur, 1) ^ RotateLeft(old, h.window) ^ v
	h.tokens[h.cursor] = v
	h.cursor = (h.cursor + 1) % h.window
	return h.cur
}

// RotateLeft rotates v left by n bits, reducing n modulo 64 first. Unlike
// the naive (v<<n)|(v>>(64-n)) formula, this is well-defined for n == 0.
func RotateLeft(v uint64, n int) uint64 {
	return bits.RotateLeft64(v, n)
}
