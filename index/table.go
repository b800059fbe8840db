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
// github.com:seomoz/simhash-go/index/table.go

// Package index implements the permuted-index table: given a family of
// non-overlapping bitmask blocks that partition the 64 bits of a
// fingerprint, it permutes stored fingerprints so near-duplicate queries
// within a fixed Hamming tolerance reduce to a single prefix range scan
// over an ordered 64-bit set.
package index

import "github.com/seomoz/simhash-go/store"

// Table answers k-bit Hamming-distance queries over a set of 64-bit
// fingerprints. A Table owns its store exclusively; the same fingerprint
// may be inserted into several independent Tables (the caller's choice,
// typically one per rotated mask family).
type Table struct {
	k    int
	desc *descriptor
	set  orderedSet
}

// New builds a Table for tolerance k over block family masks. It fails if
// masks violates the block-family invariants (overlap, non-contiguous
// block, empty block, incomplete coverage) or if k >= len(masks).
func New(k int, masks []uint64) (*Table, error) {
	desc, err := newDescriptor(masks, k)
	if err != nil {
		return nil, err
	}
	return &Table{k: k, desc: desc, set: store.New()}, nil
}

// K reports the table's configured Hamming tolerance.
func (t *Table) K() int {
	return t.k
}

// Insert permutes h and adds it to the store. Idempotent: inserting an
// already-present fingerprint leaves the table unchanged. Reports whether
// h was newly added.
func (t *Table) Insert(h uint64) bool {
	return t.set.Insert(t.desc.permute(h))
}

// Remove permutes h and deletes it from the store. No-op if absent.
// Reports whether h had been present.
func (t *Table) Remove(h uint64) bool {
	return t.set.Remove(t.desc.permute(h))
}

// Len reports the number of fingerprints currently stored.
func (t *Table) Len() int {
	return t.set.Len()
}

// FindAny returns the first stored fingerprint within k differing bits of
// q, in ascending permuted order, or ok=false if the store is empty or no
// candidate qualifies. Only fingerprints whose first B-k permuted blocks
// equal q's are examined; one that differs from q in any of those blocks
// is not found, however few bits differ.
func (t *Table) FindAny(q uint64) (uint64, bool) {
	qp, low, high := t.desc.rangeQuery(q)
	return t.desc.findAny(t.set, qp, low, high, t.k)
}

// FindAll calls fn, in ascending permuted order, for every stored
// fingerprint within k differing bits of q whose first B-k permuted blocks
// equal q's; fingerprints differing from q in any of those blocks are
// skipped.
func (t *Table) FindAll(q uint64, fn func(uint64)) {
	qp, low, high := t.desc.rangeQuery(q)
	t.desc.findAll(t.set, qp, low, high, t.k, fn)
}

// Permute exposes the table's forward permutation, for tests and tooling.
func (t *Table) Permute(h uint64) uint64 {
	return t.desc.permute(h)
}

// Unpermute exposes the table's inverse permutation, for tests and
// tooling.
func (t *Table) Unpermute(hp uint64) uint64 {
	return t.desc.unpermute(hp)
}

// Iterate calls fn, in ascending permuted key order, for every stored
// fingerprint. Values passed to fn are permuted; callers needing the
// original fingerprint must call Unpermute themselves. Stops early if fn
// returns false.
func (t *Table) Iterate(fn func(permuted uint64) bool) {
	t.set.Ascend(fn)
}
