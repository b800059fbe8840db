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
// github.com:seomoz/simhash-go/index/errors.go

package index

import "errors"

// ErrOverlappingBlocks indicates two masks in a block family share a bit.
var ErrOverlappingBlocks = errors.New("index: overlapping blocks")

// ErrNonContiguousBlock indicates a mask's 1-bits are not a single
// contiguous run.
var ErrNonContiguousBlock = errors.New("index: non-contiguous block")

// ErrEmptyBlock indicates a mask with no set bits.
var ErrEmptyBlock = errors.New("index: empty block")

// ErrIncompleteCoverage indicates the block family does not cover all 64
// bits.
var ErrIncompleteCoverage = errors.New("index: block family does not cover all 64 bits")

// ErrToleranceTooLarge indicates k is not strictly less than the number of
// blocks.
var ErrToleranceTooLarge = errors.New("index: k must be less than the number of blocks")
