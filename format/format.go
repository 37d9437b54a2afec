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

// Package format renders a finished k-mer count map or histogram to one
// of the CLI's output formats. It depends only on plain Go maps/slices
// so it stays usable from tests without touching the counting pipeline.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/kmertools/kcount"
)

// Kind selects the textual rendering of a count map.
type Kind int

const (
	TSV Kind = iota
	FASTA
	JSON
	Histogram
)

// ParseKind maps a CLI --format flag value to a Kind. An empty string
// (the flag left unset) defaults to FASTA, matching the CLI's
// documented --format default.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "fasta", "":
		return FASTA, nil
	case "tsv":
		return TSV, nil
	case "json":
		return JSON, nil
	case "histogram", "hist":
		return Histogram, nil
	default:
		return 0, fmt.Errorf("kcount: unknown output format %q", s)
	}
}

// jsonEntry is one (kmer, count) pair in the JSON rendering.
type jsonEntry struct {
	Kmer  string `json:"kmer"`
	Count uint64 `json:"count"`
}

// sortedKeys returns the k-mer strings of counts in ascending
// lexicographic order, so that TSV/FASTA/JSON output is deterministic
// across runs despite the counter's map-based storage.
func sortedKeys(counts map[string]uint64) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// WriteCounts renders counts to w in the given Kind. Histogram is not a
// valid Kind for this function; use WriteHistogram instead.
func WriteCounts(w io.Writer, counts map[string]uint64, kind Kind) error {
	switch kind {
	case TSV:
		return writeTSV(w, counts)
	case FASTA:
		return writeFASTA(w, counts)
	case JSON:
		return writeJSON(w, counts)
	default:
		return fmt.Errorf("kcount: format not supported for a count map")
	}
}

func writeTSV(w io.Writer, counts map[string]uint64) error {
	for _, kmer := range sortedKeys(counts) {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", kmer, counts[kmer]); err != nil {
			return err
		}
	}
	return nil
}

func writeFASTA(w io.Writer, counts map[string]uint64) error {
	for _, kmer := range sortedKeys(counts) {
		if _, err := fmt.Fprintf(w, ">%d\n%s\n", counts[kmer], kmer); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, counts map[string]uint64) error {
	keys := sortedKeys(counts)
	entries := make([]jsonEntry, len(keys))
	for i, kmer := range keys {
		entries[i] = jsonEntry{Kmer: kmer, Count: counts[kmer]}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

// WriteHistogram renders a count-of-counts histogram, one "count\tfrequency"
// line per entry, in the ascending order already produced by
// kcount.Builder.Histogram.
func WriteHistogram(w io.Writer, entries []kcount.HistogramEntry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%d\t%d\n", e.Count, e.Frequency); err != nil {
			return err
		}
	}
	return nil
}
