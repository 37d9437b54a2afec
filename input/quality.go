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

package input

// phredOffset is the Phred+33 encoding used by every FASTQ variant this
// package accepts (Illumina 1.8+ and Sanger). Older Solexa/Illumina 1.3-1.5
// offsets are out of scope.
const phredOffset = 33

// MaskQuality replaces each base in seq whose Phred quality score falls
// below minQ with 'N', in place, and returns seq. Bases are never
// dropped or shifted: low-quality positions stay in the sequence as
// invalid bases, so the window extractor's skip-ahead behavior is the
// only thing that ever removes them from the counted output. qual must
// be the same length as seq; if it is shorter (malformed record), only
// the overlapping prefix is masked.
//
// A minQ of 0 is a no-op: every Phred score is >= 0, so nothing is
// masked, which matches the CLI's default of not filtering.
func MaskQuality(seq, qual []byte, minQ int) []byte {
	if minQ <= 0 {
		return seq
	}
	n := len(seq)
	if len(qual) < n {
		n = len(qual)
	}
	for i := 0; i < n; i++ {
		if int(qual[i])-phredOffset < minQ {
			seq[i] = 'N'
		}
	}
	return seq
}
