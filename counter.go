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
	"encoding/binary"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

const minShards = 16

// shard is one lock-guarded slice of the counter's key space. Counts are
// stored behind *atomic.Uint64 so the common case — incrementing an
// already-present key — only needs the shard's read lock.
type shard struct {
	mu sync.RWMutex
	m  map[uint64]*atomic.Uint64
}

// Counter is a sharded concurrent map from canonical PackedKmer to
// occurrence count, tuned for a high-concurrency, heavily-repeated-key
// increment workload (see Increment). It is safe for concurrent use by
// many goroutines; Snapshot should only be called once all Increment
// calls have returned.
type Counter struct {
	k      KmerLength
	shards []shard
	mask   uint64
}

// NewCounter returns a Counter for the given k-mer length, with a shard
// count chosen from the current GOMAXPROCS (rounded up to the next power
// of two, minimum minShards), per the "16-64, or scaled with thread
// count" guidance for the concurrent counter's sharding.
func NewCounter(k KmerLength) *Counter {
	n := nextPow2(runtime.GOMAXPROCS(0) * 4)
	if n < minShards {
		n = minShards
	}
	c := &Counter{
		k:      k,
		shards: make([]shard, n),
		mask:   uint64(n - 1),
	}
	for i := range c.shards {
		c.shards[i].m = make(map[uint64]*atomic.Uint64)
	}
	return c
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func (c *Counter) shardFor(key uint64) *shard {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], key)
	h := xxhash.Sum64(buf[:])
	return &c.shards[h&c.mask]
}

// Increment records one occurrence of raw, a k-mer in either its
// canonical or non-canonical orientation. It implements the
// canonicalization-on-miss optimization: raw is probed first, and only
// on a miss is Canonical(raw, k) computed and probed/inserted. The first
// occurrence of any k-mer (in either orientation) therefore enters under
// its canonical key; every later occurrence of either orientation finds
// that same key, directly if it is the canonical form, or via the
// canonicalize-then-probe path if not.
func (c *Counter) Increment(raw uint64) {
	s := c.shardFor(raw)

	s.mu.RLock()
	if n, ok := s.m[raw]; ok {
		n.Add(1)
		s.mu.RUnlock()
		return
	}
	s.mu.RUnlock()

	canon := Canonical(raw, c.k)
	if canon != raw {
		s = c.shardFor(canon)
		s.mu.RLock()
		if n, ok := s.m[canon]; ok {
			n.Add(1)
			s.mu.RUnlock()
			return
		}
		s.mu.RUnlock()
	}

	s.mu.Lock()
	if n, ok := s.m[canon]; ok {
		n.Add(1)
	} else {
		n := &atomic.Uint64{}
		n.Store(1)
		s.m[canon] = n
	}
	s.mu.Unlock()
}

// Snapshot consumes the counter's current state into an owned
// map[uint64]uint64. Callers should not call Increment concurrently with
// Snapshot; the parallel driver calls it only after every worker has
// finished.
func (c *Counter) Snapshot() map[uint64]uint64 {
	out := make(map[uint64]uint64)
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.RLock()
		for k, n := range s.m {
			out[k] = n.Load()
		}
		s.mu.RUnlock()
	}
	return out
}

// K returns the k-mer length this counter was created for.
func (c *Counter) K() KmerLength {
	return c.k
}
