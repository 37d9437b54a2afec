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

import (
	"io"

	"github.com/pkg/errors"
	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"

	"github.com/kmertools/kcount"
)

func init() {
	// The counter re-validates every base itself via its own codec, so
	// there is no value in fastx/seq paying for its own validation pass.
	// The teacher's own count command disables this for the same reason.
	seq.ValidateSeq = false
}

// Reader pulls sequence records from one path. A non-zero minQuality
// (set by Open) masks FASTQ bases below that Phred score to 'N' as each
// record is read; it has no effect on FASTA input, which carries no
// quality string.
type Reader struct {
	path       string
	minQuality int

	fx     *fastx.Reader
	closer io.Closer
}

// Open resolves path to a fastx reader. "-" and "" mean stdin. A ".gz"
// suffix is handled transparently by fastx/xopen; callers do not need to
// pre-decompress gzipped FASTA/FASTQ files. minQuality masks low-quality
// FASTQ bases to 'N' as records are read; pass 0 to disable masking.
//
// This mirrors the teacher's own count command, which opens every input
// path through a single fastx.NewDefaultReader regardless of declared
// format: fastx sniffs FASTA vs FASTQ from the record content itself.
func Open(path string, minQuality int) (*Reader, error) {
	fx, err := fastx.NewDefaultReader(path)
	if err != nil {
		return nil, errors.Wrapf(kcount.ErrSequenceRead, "open %q: %s", path, err)
	}
	return &Reader{path: path, minQuality: minQuality, fx: fx}, nil
}

// Close releases the underlying file handle, if any.
func (r *Reader) Close() error {
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}

// Next returns the next record's sequence bytes, or io.EOF at end of
// input. The returned slice is owned by the caller: fastx hands back a
// fresh Record per call, and quality masking (if enabled) mutates it in
// place before it is returned.
func (r *Reader) Next() ([]byte, error) {
	record, err := r.fx.Read()
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, errors.Wrapf(kcount.ErrSequenceParse, "%s: %s", r.path, err)
	}

	s := record.Seq.Seq
	if r.minQuality > 0 && len(record.Seq.Qual) > 0 {
		s = MaskQuality(s, record.Seq.Qual, r.minQuality)
	}
	return s, nil
}

// Source adapts Reader to kcount.SequenceSource for streaming mode.
func (r *Reader) Source() kcount.SequenceSource {
	return kcount.FuncSource(r.Next)
}

// ReadAll drains r into a slice of sequences, for buffered-mode callers
// that want every record resident before counting starts. Each returned
// slice is a fresh copy of the record's sequence bytes.
func ReadAll(r *Reader) ([][]byte, error) {
	var out [][]byte
	for {
		s, err := r.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		buf := make([]byte, len(s))
		copy(buf, s)
		out = append(out, buf)
	}
}
