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
	"io"
	"runtime"
	"sync"
)

// SequenceSource yields owned sequence byte buffers, one at a time. Next
// returns io.EOF once exhausted. Implementations are not required to be
// safe for concurrent use; the Driver only ever calls Next from a single
// goroutine and hands the returned buffer off to a worker.
type SequenceSource interface {
	Next() ([]byte, error)
}

// BufferedSource is a SequenceSource over sequences already materialized
// in memory (buffered mode: the external parser ran to completion before
// counting starts).
type BufferedSource struct {
	seqs [][]byte
	pos  int
}

// NewBufferedSource wraps a pre-materialized slice of sequences.
func NewBufferedSource(seqs [][]byte) *BufferedSource {
	return &BufferedSource{seqs: seqs}
}

// Next implements SequenceSource.
func (b *BufferedSource) Next() ([]byte, error) {
	if b.pos >= len(b.seqs) {
		return nil, io.EOF
	}
	s := b.seqs[b.pos]
	b.pos++
	return s, nil
}

// FuncSource adapts a plain pull function to a SequenceSource, for
// streaming mode: the function typically wraps an external FASTA/FASTQ
// parser and is called once per sequence, returning io.EOF at end of
// input.
type FuncSource func() ([]byte, error)

// Next implements SequenceSource.
func (f FuncSource) Next() ([]byte, error) {
	return f()
}

// Driver orchestrates the window extractor and the concurrent counter
// across many sequences using a bounded work-stealing-style pool: a
// fixed number of goroutines drain a channel of sequence buffers, each
// running the per-sequence extraction loop sequentially and updating the
// shared Counter. This mirrors the teacher's own goroutine+WaitGroup
// fan-out idiom, generalized from a fixed pair of tasks to a pool sized
// by NumWorkers.
type Driver struct {
	// NumWorkers is the size of the worker pool. Zero means
	// runtime.GOMAXPROCS(0).
	NumWorkers int

	// Progress, if non-nil, is updated once per completed sequence.
	Progress *Progress

	// OnSequence, if non-nil and Progress is also non-nil, is called
	// synchronously with the current Progress snapshot once per
	// completed sequence, from whichever
	// worker goroutine finished it. It must not block for long or it
	// will stall that worker.
	OnSequence func(ProgressSnapshot)
}

// Count drains seqs, extracting and counting canonical k-mers for the
// given k across NumWorkers goroutines. Cancellation is checked only at
// sequence boundaries: ctx is consulted before each next sequence is
// pulled from seqs, never inside the per-sequence k-mer loop. On
// cancellation, sequences already handed to the workers finish, no
// further sequences are pulled, the partial counter is discarded, and
// ErrCancelled is returned.
func (d *Driver) Count(ctx context.Context, seqs SequenceSource, k KmerLength) (*Counter, error) {
	n := d.NumWorkers
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}

	counter := NewCounter(k)

	work := make(chan []byte, n)
	var wg sync.WaitGroup
	var readErr error
	var readErrOnce sync.Once

	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			for seq := range work {
				countSequence(counter, seq, k)
				if d.Progress != nil {
					d.Progress.Record(1, uint64(len(seq)))
					if d.OnSequence != nil {
						d.OnSequence(d.Progress.Snapshot())
					}
				}
			}
		}()
	}

feed:
	for {
		select {
		case <-ctx.Done():
			break feed
		default:
		}

		seq, err := seqs.Next()
		if err != nil {
			if err != io.EOF {
				readErrOnce.Do(func() { readErr = err })
			}
			break feed
		}
		work <- seq
	}
	close(work)
	wg.Wait()

	if ctx.Err() != nil {
		return nil, ErrCancelled
	}
	if readErr != nil {
		return nil, readErr
	}
	return counter, nil
}

// countSequence runs the window extractor over one sequence and feeds
// every emitted raw k-mer into the counter. Extraction order within a
// single sequence is left to right; this is observable only through
// progress timing, not through the final counts.
func countSequence(counter *Counter, seq []byte, k KmerLength) {
	if len(seq) < k.Int() {
		return
	}
	it := Windows(seq, k)
	for {
		raw, _, ok := it.Next()
		if !ok {
			return
		}
		counter.Increment(raw)
	}
}
