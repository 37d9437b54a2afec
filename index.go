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
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/klauspost/pgzip"
	"github.com/pkg/errors"
)

// indexMagic is the 4-byte ASCII prefix of a kcount index file: "KMIX".
var indexMagic = [4]byte{'K', 'M', 'I', 'X'}

// indexVersion is the only supported on-disk format version.
const indexVersion = 1

// indexHeaderSize is the number of bytes before the first data entry:
// 4 (magic) + 1 (version) + 1 (k) + 8 (count).
const indexHeaderSize = 14

// Index is the (KmerLength, CountMap) pair persisted by SaveIndex and
// recovered by LoadIndex.
type Index struct {
	K      KmerLength
	Counts map[uint64]uint64
}

// SaveIndex writes idx to w in this binary layout: a 4-byte magic, 1-byte version, 1-byte k, 8-byte entry count,
// 16 bytes per (packed, count) entry in any order, and a trailing
// little-endian CRC32 (IEEE polynomial) over every byte written before
// it. Entry order is not meaningful and callers must not rely on it.
//
// This reuses the teacher's lazy-header-then-stream Writer shape from
// its own binary serialization format, adapted to this spec's
// little-endian, CRC-checked layout (the teacher's own format is
// big-endian and carries no checksum).
func SaveIndex(w io.Writer, idx Index) error {
	if idx.K.Int() < 1 || idx.K.Int() > MaxK {
		return ErrInvalidKmerLength
	}

	var buf bytes.Buffer
	buf.Write(indexMagic[:])
	buf.WriteByte(indexVersion)
	buf.WriteByte(byte(idx.K.Int()))

	var countBuf [8]byte
	binary.LittleEndian.PutUint64(countBuf[:], uint64(len(idx.Counts)))
	buf.Write(countBuf[:])

	var entry [16]byte
	for packed, count := range idx.Counts {
		binary.LittleEndian.PutUint64(entry[0:8], packed)
		binary.LittleEndian.PutUint64(entry[8:16], count)
		buf.Write(entry[:])
	}

	sum := crc32.ChecksumIEEE(buf.Bytes())
	var sumBuf [4]byte
	binary.LittleEndian.PutUint32(sumBuf[:], sum)

	if _, err := w.Write(buf.Bytes()); err != nil {
		return errors.Wrap(ErrIndexWrite, err.Error())
	}
	if _, err := w.Write(sumBuf[:]); err != nil {
		return errors.Wrap(ErrIndexWrite, err.Error())
	}
	return nil
}

// LoadIndex reads and validates an index previously written by
// SaveIndex. It returns ErrInvalidIndex (wrapped with a distinguishing
// message) on a bad magic, an unsupported version, a size
// inconsistency, or a checksum mismatch.
func LoadIndex(r io.Reader) (Index, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Index{}, errors.Wrap(err, "kcount: read index")
	}
	if len(data) < indexHeaderSize+4 {
		return Index{}, errors.Wrap(ErrInvalidIndex, "truncated header")
	}
	if !bytes.Equal(data[0:4], indexMagic[:]) {
		return Index{}, errors.Wrap(ErrInvalidIndex, "bad magic")
	}

	body := data[:len(data)-4]
	wantSum := binary.LittleEndian.Uint32(data[len(data)-4:])
	gotSum := crc32.ChecksumIEEE(body)
	if gotSum != wantSum {
		return Index{}, errors.Wrap(ErrInvalidIndex, "checksum mismatch")
	}

	version := body[4]
	if version != indexVersion {
		return Index{}, errors.Wrap(ErrInvalidIndex, fmt.Sprintf("unsupported version %d", version))
	}

	k := int(body[5])
	kl, err := NewKmerLength(k)
	if err != nil {
		return Index{}, errors.Wrap(ErrInvalidIndex, fmt.Sprintf("invalid k %d", k))
	}

	n := binary.LittleEndian.Uint64(body[6:14])
	wantLen := indexHeaderSize + 16*int(n)
	if len(body) != wantLen {
		return Index{}, errors.Wrap(ErrInvalidIndex, "entry count does not match data size")
	}

	counts := make(map[uint64]uint64, n)
	off := indexHeaderSize
	for i := uint64(0); i < n; i++ {
		packed := binary.LittleEndian.Uint64(body[off : off+8])
		count := binary.LittleEndian.Uint64(body[off+8 : off+16])
		counts[packed] = count
		off += 16
	}

	return Index{K: kl, Counts: counts}, nil
}

// SaveIndexGzip writes idx to w gzip-compressed using pgzip, the
// teacher's own parallel-gzip dependency (pulled in transitively via
// shenwei356/xopen for its own transparent .gz handling, wired here
// directly). The CRC32 in the index trailer is computed over the
// uncompressed content, matching SaveIndex's guarantee.
func SaveIndexGzip(w io.Writer, idx Index) error {
	gw := pgzip.NewWriter(w)
	if err := SaveIndex(gw, idx); err != nil {
		gw.Close()
		return err
	}
	if err := gw.Close(); err != nil {
		return errors.Wrap(ErrIndexWrite, err.Error())
	}
	return nil
}

// LoadIndexGzip reads a gzip-compressed index previously written by
// SaveIndexGzip.
func LoadIndexGzip(r io.Reader) (Index, error) {
	gr, err := pgzip.NewReader(r)
	if err != nil {
		return Index{}, errors.Wrap(ErrIndexRead, err.Error())
	}
	defer gr.Close()
	return LoadIndex(gr)
}
