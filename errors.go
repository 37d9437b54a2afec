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

import (
	"errors"
	"fmt"
)

// ErrInvalidKmerLength means k is outside [1, 32].
var ErrInvalidKmerLength = errors.New("kcount: k must be in [1, 32]")

// ErrKmerLengthNotSet means a Builder was used before K was configured.
var ErrKmerLengthNotSet = errors.New("kcount: kmer length not set")

// ErrIllegalBase means a byte outside {A,C,G,T} (case-insensitive) was seen
// where a single validated base was required.
var ErrIllegalBase = errors.New("kcount: illegal base")

// ErrSequenceRead means the external parser failed on I/O.
var ErrSequenceRead = errors.New("kcount: sequence read error")

// ErrSequenceParse means the external parser failed on malformed input.
var ErrSequenceParse = errors.New("kcount: sequence parse error")

// ErrIndexRead means I/O failed while reading an index file.
var ErrIndexRead = errors.New("kcount: index read error")

// ErrIndexWrite means I/O failed while writing an index file.
var ErrIndexWrite = errors.New("kcount: index write error")

// ErrInvalidIndex means the index file is malformed: bad magic, unsupported
// version, a size inconsistency, or a checksum mismatch.
var ErrInvalidIndex = errors.New("kcount: invalid index")

// ErrCancelled means a Driver run was cancelled before all sequences were
// processed; the partial counter was discarded.
var ErrCancelled = errors.New("kcount: cancelled")

// IllegalBaseError carries the position and offending byte for diagnostic
// callers (e.g. a CLI "validate" path). The window extractor does not
// construct or propagate this error; it is used only by Encode1.
type IllegalBaseError struct {
	Pos  int
	Byte byte
}

func (e *IllegalBaseError) Error() string {
	return fmt.Sprintf("kcount: illegal base %q at position %d", e.Byte, e.Pos)
}

func (e *IllegalBaseError) Unwrap() error {
	return ErrIllegalBase
}
