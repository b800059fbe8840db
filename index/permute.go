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
// github.com:seomoz/simhash-go/index/permute.go

package index

import "math/bits"

// descriptor is the immutable permutation built once from a block family:
// it reorders the bits of a 64-bit fingerprint so the first B-k blocks
// (by the caller's chosen order) occupy the most-significant bits of the
// permuted value.
type descriptor struct {
	masks       []uint64 // m[i], the block masks in their original bit positions
	reverseMask []uint64 // m[i] after its shift, i.e. the mask of block i in the permuted word
	offset      []int    // signed shift moving block i to its target position
	searchMask  uint64   // top (B-k) blocks' worth of 1-bits, in the permuted word
}

// newDescriptor validates masks as a block family (§3: contiguous, disjoint,
// full coverage) and builds the permutation descriptor for tolerance k.
func newDescriptor(masks []uint64, k int) (*descriptor, error) {
	b := len(masks)
	if k >= b {
		return nil, ErrToleranceTooLarge
	}

	var seen uint64
	for _, m := range masks {
		if m == 0 {
			return nil, ErrEmptyBlock
		}
		if !isContiguousRun(m) {
			return nil, ErrNonContiguousBlock
		}
		if seen&m != 0 {
			return nil, ErrOverlappingBlocks
		}
		seen |= m
	}
	if seen != ^uint64(0) {
		return nil, ErrIncompleteCoverage
	}

	d := &descriptor{
		masks:       append([]uint64(nil), masks...),
		reverseMask: make([]uint64, b),
		offset:      make([]int, b),
	}

	placedWidth := 0
	topWidth := 0
	for i, m := range masks {
		w := bits.OnesCount64(m)
		r := bits.TrailingZeros64(m)
		placedWidth += w
		targetRightmost := 64 - placedWidth
		off := targetRightmost - r
		d.offset[i] = off
		d.reverseMask[i] = shift(m, off)
		if i < b-k {
			topWidth += w
		}
	}
	// Go's shift semantics make this well-defined even when topWidth is 0
	// (shifting all 64 bits out yields 0).
	d.searchMask = ^uint64(0) << uint(64-topWidth)

	return d, nil
}

// isContiguousRun reports whether m's set bits form a single unbroken run.
func isContiguousRun(m uint64) bool {
	if m == 0 {
		return false
	}
	r := bits.TrailingZeros64(m)
	w := bits.OnesCount64(m)
	run := (^uint64(0) >> uint(64-w)) << uint(r)
	return m == run
}

// shift applies a signed bit-shift: positive offsets shift left, negative
// offsets shift right.
func shift(v uint64, offset int) uint64 {
	if offset >= 0 {
		return v << uint(offset)
	}
	return v >> uint(-offset)
}

// permute reorders h's blocks into the permuted word.
func (d *descriptor) permute(h uint64) uint64 {
	var out uint64
	for i, m := range d.masks {
		out |= shift(h&m, d.offset[i])
	}
	return out
}

// unpermute is permute's inverse.
func (d *descriptor) unpermute(hp uint64) uint64 {
	var out uint64
	for i, rm := range d.reverseMask {
		out |= shift(hp&rm, -d.offset[i])
	}
	return out
}
