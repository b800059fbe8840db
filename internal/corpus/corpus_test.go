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
// github.com:seomoz/simhash-go/internal/corpus/corpus_test.go

package corpus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Generate_Deterministic(t *testing.T) {
	t.Parallel()

	a := Generate(42, 10, 8)
	b := Generate(42, 10, 8)
	require.Equal(t, a, b)
}

func Test_Generate_DifferentSeedsDiffer(t *testing.T) {
	t.Parallel()

	a := Generate(1, 5, 8)
	b := Generate(2, 5, 8)
	require.NotEqual(t, a, b)
}

func Test_Generate_RespectsCounts(t *testing.T) {
	t.Parallel()

	docs := Generate(7, 3, 5)
	require.Len(t, docs, 3)
	for _, d := range docs {
		require.NotEmpty(t, d)
	}
}

func Test_Generate_DegenerateInputs(t *testing.T) {
	t.Parallel()

	require.Nil(t, Generate(1, 0, 5))
	require.Nil(t, Generate(1, 5, 0))
}

func Test_SeededStream_DeterministicFromSeed(t *testing.T) {
	t.Parallel()

	a := newSeededStream(42, 1, 2)
	b := newSeededStream(42, 1, 2)
	for i := 0; i < 5; i++ {
		require.Equal(t, a.next(), b.next())
	}
}

func Test_SeededStream_SuccessiveValuesDiffer(t *testing.T) {
	t.Parallel()

	s := newSeededStream(7)
	seen := map[uint64]bool{}
	for i := 0; i < 20; i++ {
		v := s.next()
		require.False(t, seen[v], "value %d repeated at call %d", v, i)
		seen[v] = true
	}
}
