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
	"sync/atomic"
	"time"
)

// Progress holds two independently-updated monotonic counters: sequences
// processed and bases processed. Both are updated with relaxed atomic
// adds once per completed sequence; a Snapshot is not atomic across the
// two fields, so a reader may observe an updated Sequences count before
// the matching Bases update lands. That is an accepted looseness for
// progress display, not a correctness issue for counting.
type Progress struct {
	sequences atomic.Uint64
	bases     atomic.Uint64
}

// Record is called once per completed sequence by a driver worker.
func (p *Progress) Record(sequences, bases uint64) {
	p.sequences.Add(sequences)
	p.bases.Add(bases)
}

// ProgressSnapshot is an independently-read pair of counters.
type ProgressSnapshot struct {
	Sequences uint64
	Bases     uint64
}

// Snapshot reads both counters. See the non-atomicity note on Progress.
func (p *Progress) Snapshot() ProgressSnapshot {
	return ProgressSnapshot{
		Sequences: p.sequences.Load(),
		Bases:     p.bases.Load(),
	}
}

// BasesPerSecond returns the bases-processed rate since start. A
// convenience carried over from the reference implementation's progress
// reporter; it adds no new core behavior, just a division.
func (s ProgressSnapshot) BasesPerSecond(since time.Time) float64 {
	elapsed := time.Since(since).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(s.Bases) / elapsed
}
