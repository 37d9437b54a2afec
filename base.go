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

// bit2base maps a 2-bit code to its uppercase ASCII base.
var bit2base = [4]byte{'A', 'C', 'G', 'T'}

// Encode1 converts a single base byte (case-insensitive A/C/G/T) to its
// 2-bit code. It is the diagnostic counterpart of the window extractor's
// internal byte classification: unlike the extractor, it reports exactly
// where and on what byte it failed.
func Encode1(pos int, b byte) (code uint8, err error) {
	switch b {
	case 'A', 'a':
		return 0, nil
	case 'C', 'c':
		return 1, nil
	case 'G', 'g':
		return 2, nil
	case 'T', 't':
		return 3, nil
	default:
		return 0, &IllegalBaseError{Pos: pos, Byte: b}
	}
}

// encodeBase is Encode1 without position tracking, used on the hot path
// inside the window extractor where a failure only needs to be detected,
// not explained.
func encodeBase(b byte) (code uint8, ok bool) {
	switch b {
	case 'A', 'a':
		return 0, true
	case 'C', 'c':
		return 1, true
	case 'G', 'g':
		return 2, true
	case 'T', 't':
		return 3, true
	default:
		return 0, false
	}
}

// Decode1 converts a 2-bit code in {0,1,2,3} to its uppercase ASCII base.
// Behavior for any other input is undefined; callers must only pass codes
// produced by this package.
func Decode1(code uint8) byte {
	return bit2base[code&3]
}

// ComplementBase returns the complementary 2-bit code: A<->T, C<->G.
func ComplementBase(code uint8) uint8 {
	return code ^ 3
}
