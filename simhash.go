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
// github.com:seomoz/simhash-go/simhash.go

// Package simhash computes 64-bit SimHash fingerprints of byte streams. A
// fingerprint is built by tokenizing the input, rolling a cyclic hash over a
// sliding window of token hashes, and bit-voting across every window output:
// documents sharing long runs of tokens end up with fingerprints that differ
// in few bits, which is what makes Hamming-distance comparisons between
// fingerprints a useful near-duplicate signal.
package simhash

import (
	"math/bits"

	"github.com/seomoz/simhash-go/cyclic"
	"github.com/seomoz/simhash-go/internal/mix"
	"github.com/seomoz/simhash-go/token"
)

// DefaultWindow is the cyclic hash window used when Fingerprint is called
// with a non-positive window.
const DefaultWindow = cyclic.DefaultWindow

// Fingerprint computes the 64-bit SimHash of buf. next selects the
// tokenizer policy; a nil next falls back to token.Letters. window sets the
// number of trailing tokens the rolling hash combines at each step; a
// non-positive window falls back to DefaultWindow.
//
// Each token's byte-hash is folded into the rolling hash, and every bit of
// the rolling hash's output after each token casts a vote: a set bit votes
// +1, a clear bit votes -1. The final fingerprint sets bit j wherever votes
// for bit j are positive. Zero-length spans (inter-token gaps) never reach
// the byte-hasher or cast a vote. An input with fewer non-empty tokens than
// the window (including none at all) produces a fingerprint of zero, not a
// distinguished error.
func Fingerprint(buf []byte, window int, next token.NextFunc) uint64 {
	if next == nil {
		next = token.Letters
	}

	roll := cyclic.New(window)

	var votes [64]int64
	tokens := 0
	pos := 0
	for {
		span, nextPos, ok := next(buf, pos)
		if !ok {
			break
		}
		if span.Len() > 0 {
			tokens++
			h := mix.Hash64(buf[span.Start:span.End], 0)
			r := roll.Push(h)
			for j := 0; j < 64; j++ {
				if (r>>uint(j))&1 == 1 {
					votes[j]++
				} else {
					votes[j]--
				}
			}
		}
		pos = nextPos
	}
	if tokens < roll.Window() {
		return 0
	}

	var fp uint64
	for j := 0; j < 64; j++ {
		if votes[j] > 0 {
			fp |= uint64(1) << uint(j)
		}
	}
	return fp
}

// NumDifferingBits reports the Hamming distance between two fingerprints:
// the number of bit positions at which a and b disagree.
func NumDifferingBits(a, b uint64) int {
	return bits.OnesCount64(a ^ b)
}
