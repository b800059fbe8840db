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
// github.com:seomoz/simhash-go/internal/mix/mix.go

// Package mix implements the byte-hasher contract: a 64-bit mix of a byte
// slice and a seed with strong avalanche. The fingerprinting pipeline never
// interprets the result numerically, only bit by bit, so any of Jenkins
// lookup3, Murmur, or FNV would satisfy the contract equally well; this is
// an FNV-1a accumulation finished with murmur3's 64-bit avalanche mix, kept
// unexported since callers only depend on the Hash64 contract, not on which
// algorithm backs it.
package mix

const (
	offsetBasis64 = 14695981039346656037
	prime64       = 1099511628211
)

// Hash64 mixes data with seed into a 64-bit value. It is deterministic
// within a process and has no cross-process or cross-version stability
// guarantee.
func Hash64(data []byte, seed uint64) uint64 {
	h := offsetBasis64 ^ seed
	for _, b := range data {
		h ^= uint64(b)
		h *= prime64
	}
	return avalanche(h)
}

// avalanche is murmur3's 64-bit finalizer: it scatters every output bit
// across the input so that short inputs, like a single token, still mix
// well.
func avalanche(h uint64) uint64 {
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33
	return h
}
