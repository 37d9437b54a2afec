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

// A PackedKmer is a k-mer (k <= MaxK) packed into the low 2k bits of a
// uint64, first base in the highest-valued significant bits. The high
// 64-2k bits are always zero.
type PackedKmer = uint64

// Pack encodes bytes (case-insensitive A/C/G/T) into a PackedKmer. The
// caller must ensure len(bytes) == k.Int() and every byte is valid;
// Pack reports ok=false on the first invalid byte instead, leaving the
// accumulator undefined.
func Pack(bytes []byte, k KmerLength) (code PackedKmer, ok bool) {
	for _, b := range bytes {
		c, valid := encodeBase(b)
		if !valid {
			return 0, false
		}
		code = code<<2 | uint64(c)
	}
	return code, true
}

// ReverseComplement returns the reverse complement of a packed k-mer:
// each 2-bit lane is complemented (XOR 3) and the lane order is reversed.
// Applying it twice yields the original value.
func ReverseComplement(code PackedKmer, k KmerLength) PackedKmer {
	var rc uint64
	for i := 0; i < k.k; i++ {
		rc <<= 2
		rc |= (code & 3) ^ 3
		code >>= 2
	}
	return rc
}

// Canonical returns the lexicographically smaller of code and its reverse
// complement, under unsigned integer ordering (which matches decoded
// string ordering under A<C<G<T, given this package's bit layout).
func Canonical(code PackedKmer, k KmerLength) PackedKmer {
	rc := ReverseComplement(code, k)
	if rc < code {
		return rc
	}
	return code
}

// Unpack decodes a PackedKmer back to its k-byte uppercase representation.
func Unpack(code PackedKmer, k KmerLength) []byte {
	out := make([]byte, k.k)
	for i := k.k - 1; i >= 0; i-- {
		out[i] = Decode1(uint8(code & 3))
		code >>= 2
	}
	return out
}

// highBitsClear reports whether code has no bits set above position 2k,
// guarding the shift-by-64 case (k == MaxK) that is undefined behavior
// for a naive `code>>64` in many languages; Go itself defines shifts by
// the full width as zero, but this helper keeps the invariant checkable
// without relying on that stdlib-specific guarantee.
func highBitsClear(code PackedKmer, k KmerLength) bool {
	bits := k.bits()
	if bits >= 64 {
		return true
	}
	return code>>bits == 0
}
