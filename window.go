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

// mask2k returns a mask with the low 2k bits set.
func mask2k(k KmerLength) uint64 {
	bits := k.bits()
	if bits >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << bits) - 1
}

// WindowIter walks a sequence buffer emitting one raw (non-canonicalized)
// PackedKmer per valid k-window, left to right. A run of bases containing
// an invalid byte at absolute position j causes every window overlapping
// j to be skipped — resuming at j+1 — without re-scanning bytes already
// known to be valid. This is strategy (a) from the window extractor
// design: a rolling accumulator plus a valid-run counter, reset on an
// invalid byte, rather than re-scanning each k-window from scratch.
type WindowIter struct {
	seq []byte
	k   KmerLength
	mask uint64

	pos   int // next byte to consume
	acc   uint64
	valid int // length of the current run of consecutive valid bases
}

// Windows returns an iterator over the canonical-eligible windows of seq
// for the given k. The caller retains ownership of seq; WindowIter never
// copies or retains it beyond the lifetime of the iteration.
func Windows(seq []byte, k KmerLength) *WindowIter {
	return &WindowIter{seq: seq, k: k, mask: mask2k(k)}
}

// Next advances to the next valid window and returns its raw packed form
// and the 0-based start position of the window in seq. ok is false once
// the sequence is exhausted.
func (w *WindowIter) Next() (raw uint64, start int, ok bool) {
	kk := w.k.k
	for w.pos < len(w.seq) {
		b := w.seq[w.pos]
		code, valid := encodeBase(b)
		w.pos++
		if !valid {
			w.valid = 0
			w.acc = 0
			continue
		}
		w.acc = ((w.acc << 2) | uint64(code)) & w.mask
		w.valid++
		if w.valid >= kk {
			return w.acc, w.pos - kk, true
		}
	}
	return 0, 0, false
}
