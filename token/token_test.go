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
// github.com:seomoz/simhash-go/token/token_test.go

package token_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seomoz/simhash-go/token"
)

func Test_Letters_SpanLengths(t *testing.T) {
	t.Parallel()

	input := []byte("what's new?How5is _ the ^# stuff")
	want := []int{4, 1, 3, 3, 2, 0, 0, 3, 0, 0, 0, 5}

	var got []int
	token.Walk(input, token.Letters, func(s token.Span) {
		got = append(got, s.Len())
	})

	require.Equal(t, want, got)
}

func Test_Letters_EmptyBuffer(t *testing.T) {
	t.Parallel()

	_, _, ok := token.Letters([]byte{}, 0)
	require.False(t, ok)
}

func Test_Letters_NULTerminatesStream(t *testing.T) {
	t.Parallel()

	input := []byte("ab\x00cd")

	var spans []token.Span
	token.Walk(input, token.Letters, func(s token.Span) {
		spans = append(spans, s)
	})

	require.Equal(t, []token.Span{{Start: 0, End: 2}}, spans)
}

func Test_Letters_SingleRunConsumesWholeBuffer(t *testing.T) {
	t.Parallel()

	input := []byte("hello")

	span, next, ok := token.Letters(input, 0)
	require.True(t, ok)
	require.Equal(t, token.Span{Start: 0, End: 5}, span)
	require.Equal(t, 5, span.Len())
	require.Equal(t, 6, next)

	_, _, ok = token.Letters(input, next)
	require.False(t, ok)
}
