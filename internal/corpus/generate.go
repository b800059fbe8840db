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
// github.com:seomoz/simhash-go/internal/corpus/generate.go

package corpus

import (
	"encoding/binary"
	"strings"

	"github.com/seomoz/simhash-go/internal/mix"
)

// seededStream draws an endless sequence of uint64 values by repeatedly
// mixing its own prior output, the way the original ShaRing chained
// successive hashes to stretch a short seed into an arbitrarily long
// stream -- here built on this module's own byte-hasher instead of a
// bespoke digest, since the stream has no cryptographic requirement, just
// determinism and a reasonable spread of bits. Each call to next re-mixes
// the previous value, so the stream is fully determined by the initial
// seed.
type seededStream struct {
	state uint64
	calls uint64
}

func newSeededStream(seed uint64, more ...uint64) *seededStream {
	buf := make([]byte, 8*(1+len(more)))
	binary.BigEndian.PutUint64(buf[0:], seed)
	for i, v := range more {
		binary.BigEndian.PutUint64(buf[8*(i+1):], v)
	}
	return &seededStream{state: mix.Hash64(buf, 0)}
}

// next returns the next 64-bit value and advances the stream.
func (s *seededStream) next() uint64 {
	s.calls++
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], s.state)
	s.state = mix.Hash64(buf[:], s.calls)
	return s.state
}

// wordSyllables is the fixed alphabet Generate draws synthetic words from,
// chosen only for readability of the generated corpus, not realism.
var wordSyllables = []string{
	"ka", "ri", "mo", "lun", "sel", "tor", "van", "exi", "plo", "dren",
	"um", "bra", "fen", "quil", "nos", "tra", "gil", "vex", "orn", "ith",
}

// Generate produces count deterministic synthetic documents, each roughly
// wordsPerDoc words long, built from the same seed every time it is
// called with the same arguments. It exists to give the sample command
// a corpus to run against without shipping sample data.
func Generate(seed uint64, count, wordsPerDoc int) []string {
	if count <= 0 || wordsPerDoc <= 0 {
		return nil
	}

	stream := newSeededStream(seed, uint64(count), uint64(wordsPerDoc))
	docs := make([]string, count)
	for i := range docs {
		var b strings.Builder
		for w := 0; w < wordsPerDoc; w++ {
			if w > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(word(stream.next()))
		}
		docs[i] = b.String()
	}
	return docs
}

// word turns a 64-bit value into a pronounceable lowercase token by
// picking 2-4 syllables from wordSyllables.
func word(v uint64) string {
	n := 2 + int(v%3)
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString(wordSyllables[v%uint64(len(wordSyllables))])
		v /= uint64(len(wordSyllables))
	}
	return b.String()
}
