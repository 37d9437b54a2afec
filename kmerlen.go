// Copyright © 2018-2021 Wei Shen <shenwei356@gmail.com>
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
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package kcount

import "strconv"

// MaxK is the largest supported k-mer length; a k-mer must fit in the 2k
// low-order bits of a uint64.
const MaxK = 32

// KmerLength is a validated k-mer size in [1, MaxK]. The zero value is not
// a valid KmerLength; construct one with NewKmerLength.
type KmerLength struct {
	k int
}

// NewKmerLength validates k and returns a KmerLength, or ErrInvalidKmerLength
// if k is outside [1, MaxK].
func NewKmerLength(k int) (KmerLength, error) {
	if k < 1 || k > MaxK {
		return KmerLength{}, ErrInvalidKmerLength
	}
	return KmerLength{k: k}, nil
}

// Int returns the validated k value.
func (kl KmerLength) Int() int {
	return kl.k
}

// bits returns 2k, the number of significant low-order bits in a packed
// k-mer of this length.
func (kl KmerLength) bits() uint {
	return uint(kl.k) * 2
}

// String satisfies fmt.Stringer.
func (kl KmerLength) String() string {
	return "k=" + strconv.Itoa(kl.k)
}
