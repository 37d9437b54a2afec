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

// Package input resolves a path or stream to a sequence source: format
// detection, optional gzip transport, and FASTQ quality masking. These
// are the "adapters" of the counting pipeline — thin collaborators that
// the core package (base codec, packed k-mer, window extractor,
// counter, index) never depends on directly.
package input

import "strings"

// Format is the detected or requested sequence file format.
type Format int

const (
	// Auto means detect from the file extension, falling back to FASTA.
	Auto Format = iota
	FASTA
	FASTQ
)

// DetectFormat applies the extension rules from the CLI spec: strip a
// trailing ".gz" (case-insensitive), then match ".fq"/".fastq" to FASTQ,
// ".fa"/".fasta"/".fna" to FASTA, and anything else (including stdin,
// conventionally named "-") to FASTA.
func DetectFormat(path string) Format {
	name := strings.ToLower(path)
	name = strings.TrimSuffix(name, ".gz")
	switch {
	case strings.HasSuffix(name, ".fq"), strings.HasSuffix(name, ".fastq"):
		return FASTQ
	case strings.HasSuffix(name, ".fa"), strings.HasSuffix(name, ".fasta"), strings.HasSuffix(name, ".fna"):
		return FASTA
	default:
		return FASTA
	}
}
