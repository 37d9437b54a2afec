package kcount

import (
	"context"
	"errors"
	"io"
	"testing"
)

func TestDriverCountBuffered(t *testing.T) {
	k := mustK(t, 3)
	seqs := [][]byte{
		[]byte("ACGT"),
		[]byte("ACGNACG"),
	}
	d := &Driver{NumWorkers: 2}
	counter, err := d.Count(context.Background(), NewBufferedSource(seqs), k)
	if err != nil {
		t.Fatal(err)
	}

	acg, _ := Pack([]byte("ACG"), k)
	snap := counter.Snapshot()
	// "ACGT" contributes one ACG-orientation window (canonical ACG) and
	// one CGT-orientation window (canonical ACG, since CGT's reverse
	// complement is ACG). "ACGNACG" contributes two more ACG windows.
	// Total occurrences of the canonical ACG key: 4.
	if got := snap[acg]; got != 4 {
		t.Errorf("count for canonical ACG = %d, want 4 (snapshot=%v)", got, snap)
	}
}

func TestDriverCountEmptySource(t *testing.T) {
	k := mustK(t, 3)
	d := &Driver{}
	counter, err := d.Count(context.Background(), NewBufferedSource(nil), k)
	if err != nil {
		t.Fatal(err)
	}
	if snap := counter.Snapshot(); len(snap) != 0 {
		t.Errorf("expected empty snapshot, got %v", snap)
	}
}

func TestDriverCountPropagatesReadError(t *testing.T) {
	k := mustK(t, 3)
	wantErr := errors.New("boom")
	src := FuncSource(func() ([]byte, error) {
		return nil, wantErr
	})
	d := &Driver{}
	_, err := d.Count(context.Background(), src, k)
	if err != wantErr {
		t.Errorf("Count error = %v, want %v", err, wantErr)
	}
}

func TestDriverCountCancellation(t *testing.T) {
	k := mustK(t, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := FuncSource(func() ([]byte, error) {
		return []byte("ACGT"), nil
	})
	d := &Driver{NumWorkers: 1}
	_, err := d.Count(ctx, src, k)
	if !errors.Is(err, ErrCancelled) {
		t.Errorf("Count error = %v, want ErrCancelled", err)
	}
}

func TestDriverOnSequenceCallback(t *testing.T) {
	k := mustK(t, 3)
	seqs := [][]byte{[]byte("ACGT"), []byte("ACGT"), []byte("ACGT")}

	var calls int
	progress := &Progress{}
	d := &Driver{
		NumWorkers: 1,
		Progress:   progress,
		OnSequence: func(snap ProgressSnapshot) { calls++ },
	}
	_, err := d.Count(context.Background(), NewBufferedSource(seqs), k)
	if err != nil {
		t.Fatal(err)
	}
	if calls != len(seqs) {
		t.Errorf("OnSequence called %d times, want %d", calls, len(seqs))
	}
	if progress.Snapshot().Sequences != uint64(len(seqs)) {
		t.Errorf("progress sequences = %d, want %d", progress.Snapshot().Sequences, len(seqs))
	}
}

func TestBufferedSourceEOF(t *testing.T) {
	src := NewBufferedSource([][]byte{[]byte("A")})
	if _, err := src.Next(); err != nil {
		t.Fatal(err)
	}
	if _, err := src.Next(); err != io.EOF {
		t.Errorf("second Next() error = %v, want io.EOF", err)
	}
}
