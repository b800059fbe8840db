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
// github.com:seomoz/simhash-go/token/token.go

// Package token implements the pluggable tokenizer contract that feeds the
// fingerprinting pipeline: given a buffer and a position, produce the next
// token span and the position to resume from.
package token

// Span is a half-open byte range [Start, End) within a buffer.
type Span struct {
	Start, End int
}

// Len reports the number of bytes in the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// NextFunc is the tokenizer contract. Given buf and a starting position,
// it returns the span found there, the position the caller should resume
// scanning from, and ok=false once the stream is exhausted.
//
// A zero-length span (Start == End) is a valid result signalling an
// inter-token gap; callers resume from next, not from span.End, and must
// not feed the empty span to a hasher.
type NextFunc func(buf []byte, pos int) (span Span, next int, ok bool)

// Letters is the reference tokenizer policy: the maximal run of ASCII
// letters starting at pos. Any byte outside [A-Za-z] yields a zero-length
// span at that position; the caller advances one byte and resumes. A NUL
// byte, or the end of buf, terminates the stream -- including when the
// NUL immediately follows the run this call returns.
func Letters(buf []byte, pos int) (Span, int, bool) {
	if pos >= len(buf) || buf[pos] == 0 {
		return Span{}, pos, false
	}

	end := pos
	for end < len(buf) && isASCIILetter(buf[end]) {
		end++
	}

	next := end + 1
	if end < len(buf) && buf[end] == 0 {
		next = len(buf)
	}

	return Span{Start: pos, End: end}, next, true
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// Walk drives next over buf starting at position 0, calling fn with every
// span it produces -- including zero-length gaps -- until the stream ends.
// This is the shape the reference tokenizer debugging tool needs; the
// fingerprinting reducer instead filters out zero-length spans itself
// since they must never reach the byte-hasher.
func Walk(buf []byte, next NextFunc, fn func(Span)) {
	if next == nil {
		next = Letters
	}

	pos := 0
	for {
		span, nextPos, ok := next(buf, pos)
		if !ok {
			return
		}
		fn(span)
		pos = nextPos
	}
}
