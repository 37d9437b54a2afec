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
	"context"
	"sort"
)

// Builder accumulates configuration for a k-mer counting run and
// produces one of several terminal outputs. It mirrors the reference
// implementation's fluent KmerCounter builder and the teacher's own
// Options/getOptions(cmd) pattern for turning CLI flags into a single
// validated config value.
type Builder struct {
	k        *KmerLength
	minCount uint64
	workers  int
}

// NewBuilder returns a Builder with MinCount defaulting to 1 (every
// counted k-mer is kept) and k unset.
func NewBuilder() *Builder {
	return &Builder{minCount: 1}
}

// K validates and sets the k-mer length. It returns the Builder for
// chaining and the validation error, if any.
func (b *Builder) K(k int) (*Builder, error) {
	kl, err := NewKmerLength(k)
	if err != nil {
		return b, err
	}
	b.k = &kl
	return b, nil
}

// MinCount sets the minimum occurrence count kept in the final output.
// The filter is applied after aggregation completes; it does not reduce
// peak memory.
func (b *Builder) MinCount(n uint64) *Builder {
	b.minCount = n
	return b
}

// Workers sets the worker pool size; zero (the default) means
// runtime.GOMAXPROCS(0).
func (b *Builder) Workers(n int) *Builder {
	b.workers = n
	return b
}

func (b *Builder) validated() (KmerLength, error) {
	if b.k == nil {
		return KmerLength{}, ErrKmerLengthNotSet
	}
	return *b.k, nil
}

func (b *Builder) driver(progress *Progress) *Driver {
	return &Driver{NumWorkers: b.workers, Progress: progress}
}

func (b *Builder) driverWithCallback(onSeq func(ProgressSnapshot)) *Driver {
	return &Driver{NumWorkers: b.workers, Progress: &Progress{}, OnSequence: onSeq}
}

// CountPacked runs the full buffered pipeline over seqs and returns a
// packed-key count map, skipping the final unpack-to-string pass. This
// is the fastest terminal operation when callers want to do further
// processing on the 64-bit keys themselves.
func (b *Builder) CountPacked(ctx context.Context, seqs [][]byte) (map[uint64]uint64, error) {
	k, err := b.validated()
	if err != nil {
		return nil, err
	}
	counter, err := b.driver(nil).Count(ctx, NewBufferedSource(seqs), k)
	if err != nil {
		return nil, err
	}
	return filterMinCount(counter.Snapshot(), b.minCount), nil
}

// Count runs the full buffered pipeline and unpacks every key to its
// DNA string.
func (b *Builder) Count(ctx context.Context, seqs [][]byte) (map[string]uint64, error) {
	k, err := b.validated()
	if err != nil {
		return nil, err
	}
	packed, err := b.CountPacked(ctx, seqs)
	if err != nil {
		return nil, err
	}
	return unpackCounts(packed, k), nil
}

// CountWithProgress runs Count, invoking progress after each completed
// sequence.
func (b *Builder) CountWithProgress(ctx context.Context, seqs [][]byte, onProgress func(ProgressSnapshot)) (map[string]uint64, error) {
	k, err := b.validated()
	if err != nil {
		return nil, err
	}
	packed, err := b.CountPackedWithProgress(ctx, seqs, onProgress)
	if err != nil {
		return nil, err
	}
	return unpackCounts(packed, k), nil
}

// CountPackedWithProgress is CountWithProgress without the final
// unpack-to-string pass, for callers (e.g. the CLI) that decide after
// aggregation whether they need string keys or a histogram reduction.
func (b *Builder) CountPackedWithProgress(ctx context.Context, seqs [][]byte, onProgress func(ProgressSnapshot)) (map[uint64]uint64, error) {
	k, err := b.validated()
	if err != nil {
		return nil, err
	}
	counter, err := b.driverWithCallback(onProgress).Count(ctx, NewBufferedSource(seqs), k)
	if err != nil {
		return nil, err
	}
	return filterMinCount(counter.Snapshot(), b.minCount), nil
}

// CountStreaming runs the pipeline in streaming mode: src is pulled one
// sequence at a time rather than materialized up front, bounding
// in-flight memory to O(workers x max sequence length).
func (b *Builder) CountStreaming(ctx context.Context, src SequenceSource) (map[string]uint64, error) {
	k, err := b.validated()
	if err != nil {
		return nil, err
	}
	counter, err := b.driver(nil).Count(ctx, src, k)
	if err != nil {
		return nil, err
	}
	return unpackCounts(filterMinCount(counter.Snapshot(), b.minCount), k), nil
}

// HistogramEntry is one (count, frequency) pair: frequency distinct
// canonical k-mers occurred exactly count times.
type HistogramEntry struct {
	Count     uint64
	Frequency uint64
}

// Histogram runs Count and reduces it to a count-of-counts histogram,
// sorted ascending by Count.
func (b *Builder) Histogram(ctx context.Context, seqs [][]byte) ([]HistogramEntry, error) {
	if _, err := b.validated(); err != nil {
		return nil, err
	}
	packed, err := b.CountPacked(ctx, seqs)
	if err != nil {
		return nil, err
	}
	return BuildHistogram(packed), nil
}

// BuildHistogram reduces a packed-key count map to a count-of-counts
// histogram, sorted ascending by Count. Exported so callers that already
// hold a packed count map (e.g. the CLI, after merging several input
// files) can produce a histogram without re-running the pipeline.
func BuildHistogram(packed map[uint64]uint64) []HistogramEntry {
	freq := make(map[uint64]uint64)
	for _, count := range packed {
		freq[count]++
	}

	out := make([]HistogramEntry, 0, len(freq))
	for count, n := range freq {
		out = append(out, HistogramEntry{Count: count, Frequency: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Count < out[j].Count })
	return out
}

func filterMinCount(m map[uint64]uint64, minCount uint64) map[uint64]uint64 {
	if minCount <= 1 {
		return m
	}
	out := make(map[uint64]uint64, len(m))
	for k, v := range m {
		if v >= minCount {
			out[k] = v
		}
	}
	return out
}

func unpackCounts(packed map[uint64]uint64, k KmerLength) map[string]uint64 {
	out := make(map[string]uint64, len(packed))
	for code, count := range packed {
		out[string(Unpack(code, k))] = count
	}
	return out
}
