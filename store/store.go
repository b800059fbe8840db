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
// github.com:seomoz/simhash-go/store/store.go

// Package store provides an ordered set of 64-bit keys: insert, remove,
// first-at-or-after, and next-greater, all logarithmic in set size. The
// index package treats this as its sorted 64-bit set collaborator.
package store

import "github.com/google/btree"

// Set is an ordered set of uint64 keys backed by a B-tree.
type Set struct {
	tree *btree.BTreeG[uint64]
}

// New creates an empty Set.
func New() *Set {
	return &Set{tree: btree.NewG(32, func(a, b uint64) bool { return a < b })}
}

// Insert adds key to the set. Idempotent: inserting a present key is a
// no-op. Reports whether the key was newly added.
func (s *Set) Insert(key uint64) bool {
	_, had := s.tree.ReplaceOrInsert(key)
	return !had
}

// Remove deletes key from the set. No-op if absent. Reports whether the
// key had been present.
func (s *Set) Remove(key uint64) bool {
	_, had := s.tree.Delete(key)
	return had
}

// Contains reports whether key is in the set.
func (s *Set) Contains(key uint64) bool {
	return s.tree.Has(key)
}

// Len reports the number of keys in the set.
func (s *Set) Len() int {
	return s.tree.Len()
}

// FirstAtOrAfter returns the smallest key >= from, or ok=false if none.
func (s *Set) FirstAtOrAfter(from uint64) (key uint64, ok bool) {
	s.tree.AscendGreaterOrEqual(from, func(item uint64) bool {
		key, ok = item, true
		return false
	})
	return key, ok
}

// NextGreater returns the smallest key strictly greater than after, or
// ok=false if none.
func (s *Set) NextGreater(after uint64) (key uint64, ok bool) {
	if after == ^uint64(0) {
		return 0, false
	}
	s.tree.AscendGreaterOrEqual(after+1, func(item uint64) bool {
		key, ok = item, true
		return false
	})
	return key, ok
}

// Ascend calls fn for every key in ascending order, stopping early if fn
// returns false.
func (s *Set) Ascend(fn func(uint64) bool) {
	s.tree.Ascend(fn)
}
