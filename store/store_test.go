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
// github.com:seomoz/simhash-go/store/store_test.go

package store_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seomoz/simhash-go/store"
)

func Test_Insert_Idempotent(t *testing.T) {
	t.Parallel()

	s := store.New()
	require.True(t, s.Insert(42))
	require.False(t, s.Insert(42))
	require.Equal(t, 1, s.Len())
}

func Test_Remove_AbsentIsNoop(t *testing.T) {
	t.Parallel()

	s := store.New()
	require.False(t, s.Remove(42))

	s.Insert(42)
	require.True(t, s.Remove(42))
	require.False(t, s.Contains(42))
	require.False(t, s.Remove(42))
}

func Test_FirstAtOrAfter(t *testing.T) {
	t.Parallel()

	s := store.New()
	for _, k := range []uint64{10, 20, 30} {
		s.Insert(k)
	}

	key, ok := s.FirstAtOrAfter(15)
	require.True(t, ok)
	require.Equal(t, uint64(20), key)

	key, ok = s.FirstAtOrAfter(20)
	require.True(t, ok)
	require.Equal(t, uint64(20), key)

	_, ok = s.FirstAtOrAfter(31)
	require.False(t, ok)
}

func Test_NextGreater(t *testing.T) {
	t.Parallel()

	s := store.New()
	for _, k := range []uint64{10, 20, 30} {
		s.Insert(k)
	}

	key, ok := s.NextGreater(10)
	require.True(t, ok)
	require.Equal(t, uint64(20), key)

	_, ok = s.NextGreater(30)
	require.False(t, ok)

	_, ok = s.NextGreater(^uint64(0))
	require.False(t, ok)
}

func Test_Ascend_VisitsInOrder(t *testing.T) {
	t.Parallel()

	s := store.New()
	for _, k := range []uint64{30, 10, 20} {
		s.Insert(k)
	}

	var got []uint64
	s.Ascend(func(k uint64) bool {
		got = append(got, k)
		return true
	})

	require.Equal(t, []uint64{10, 20, 30}, got)
}
