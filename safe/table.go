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
// github.com:seomoz/simhash-go/safe/table.go

// Package safe wraps an *index.Table so concurrent callers don't need to
// coordinate access themselves: reads take a shared lock, mutations take
// an exclusive one.
package safe

import (
	"sync"

	"github.com/seomoz/simhash-go/index"
)

// Table serializes concurrent access to an *index.Table. A Table is safe
// for concurrent use by multiple goroutines; the wrapped *index.Table is
// not, which is the entire reason this type exists.
type Table struct {
	mu    sync.RWMutex
	table *index.Table
}

// New wraps table for concurrent use.
func New(table *index.Table) *Table {
	return &Table{table: table}
}

// Insert permutes h and adds it to the underlying table.
func (t *Table) Insert(h uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Insert(h)
}

// Remove permutes h and deletes it from the underlying table.
func (t *Table) Remove(h uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Remove(h)
}

// FindAny returns the first stored fingerprint within the table's
// tolerance of q, with the same prefix-block restriction as
// index.Table.FindAny.
func (t *Table) FindAny(q uint64) (uint64, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.FindAny(q)
}

// FindAll calls fn for every stored fingerprint within the table's
// tolerance of q, with the same prefix-block restriction as
// index.Table.FindAll. fn runs while the read lock is held; it must not call
// back into t.
func (t *Table) FindAll(q uint64, fn func(uint64)) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	t.table.FindAll(q, fn)
}

// Len reports the number of fingerprints currently stored.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Len()
}
