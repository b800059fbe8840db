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
// github.com:seomoz/simhash-go/index/search.go

package index

import "math/bits"

// rangeQuery computes the permuted-domain scan bounds for q under d: every
// stored fingerprint whose first B-k permuted blocks equal q's falls in
// [low, high] in the permuted domain, though the bound is loose -- the
// caller still filters candidates by exact popcount.
func (d *descriptor) rangeQuery(q uint64) (qp, low, high uint64) {
	qp = d.permute(q)
	low = qp & d.searchMask
	high = qp | ^d.searchMask
	return qp, low, high
}

// findAny scans s's permuted keys in [low, high] and returns the first one
// within k differing bits of qp, unpermuted.
func (d *descriptor) findAny(s orderedSet, qp, low, high uint64, k int) (uint64, bool) {
	cur, ok := s.FirstAtOrAfter(low)
	for ok && cur <= high {
		if bits.OnesCount64(cur^qp) <= k {
			return d.unpermute(cur), true
		}
		cur, ok = s.NextGreater(cur)
	}
	return 0, false
}

// findAll scans s's permuted keys in [low, high] and calls fn, unpermuted,
// for every one within k differing bits of qp, in ascending permuted order.
func (d *descriptor) findAll(s orderedSet, qp, low, high uint64, k int, fn func(uint64)) {
	cur, ok := s.FirstAtOrAfter(low)
	for ok && cur <= high {
		if bits.OnesCount64(cur^qp) <= k {
			fn(d.unpermute(cur))
		}
		cur, ok = s.NextGreater(cur)
	}
}

// orderedSet is the abstract sorted 64-bit set the index needs: insert,
// remove, first-at-or-after, and next-greater, all logarithmic in size.
// *store.Set satisfies this; it is expressed as an interface here so index
// depends only on the contract, not on the store package's concrete type.
type orderedSet interface {
	Insert(uint64) bool
	Remove(uint64) bool
	Contains(uint64) bool
	Len() int
	FirstAtOrAfter(uint64) (uint64, bool)
	NextGreater(uint64) (uint64, bool)
	Ascend(func(uint64) bool)
}
