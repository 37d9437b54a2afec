package kcount

import (
	"bytes"
	"testing"
)

func mustK(t *testing.T, k int) KmerLength {
	t.Helper()
	kl, err := NewKmerLength(k)
	if err != nil {
		t.Fatal(err)
	}
	return kl
}

func TestPackUnpackRoundTrip(t *testing.T) {
	k := mustK(t, 3)
	code, ok := Pack([]byte("ACG"), k)
	if !ok {
		t.Fatal("Pack: expected ok")
	}
	if code != 6 {
		t.Errorf("Pack(\"ACG\") = %d, want 6", code)
	}
	if got := Unpack(code, k); !bytes.Equal(got, []byte("ACG")) {
		t.Errorf("Unpack(Pack(\"ACG\")) = %q, want \"ACG\"", got)
	}
}

func TestPackFirstBaseIsHighOrder(t *testing.T) {
	// The spec mandates the first base in the highest-order bits of the
	// packed key, the opposite convention from a low-bit-first packer.
	k := mustK(t, 2)
	code, ok := Pack([]byte("AC"), k)
	if !ok {
		t.Fatal("expected ok")
	}
	// A=0b00, C=0b01; first-base-high gives 0b0001 = 1.
	if code != 1 {
		t.Errorf("Pack(\"AC\") = %d, want 1", code)
	}
}

func TestPackRejectsInvalidBase(t *testing.T) {
	k := mustK(t, 3)
	if _, ok := Pack([]byte("ACN"), k); ok {
		t.Fatal("expected Pack to reject an invalid base")
	}
}

func TestReverseComplement(t *testing.T) {
	k := mustK(t, 3)
	code, _ := Pack([]byte("ACG"), k)
	rc := ReverseComplement(code, k)
	if got := Unpack(rc, k); !bytes.Equal(got, []byte("CGT")) {
		t.Errorf("ReverseComplement(\"ACG\") unpacked = %q, want \"CGT\"", got)
	}
	// Reverse-complementing twice returns the original.
	if got := ReverseComplement(rc, k); got != code {
		t.Errorf("double reverse complement = %d, want %d", got, code)
	}
}

func TestCanonical(t *testing.T) {
	k := mustK(t, 3)
	acg, _ := Pack([]byte("ACG"), k)
	cgt, _ := Pack([]byte("CGT"), k)

	if got := Canonical(acg, k); got != acg {
		t.Errorf("Canonical(ACG) = %d, want %d (ACG is already canonical)", got, acg)
	}
	if got := Canonical(cgt, k); got != acg {
		t.Errorf("Canonical(CGT) = %d, want %d (canonical form is ACG)", got, acg)
	}
}

func TestCanonicalPalindrome(t *testing.T) {
	// ACGT is its own reverse complement.
	k := mustK(t, 4)
	code, _ := Pack([]byte("ACGT"), k)
	if got := Canonical(code, k); got != code {
		t.Errorf("Canonical(ACGT) = %d, want %d (self-palindromic)", got, code)
	}
}

// TestHighBitsClear checks invariant 6 (pack(.,k) >> 2k == 0) across
// every k, including the k == MaxK boundary where 2k == 64 and a naive
// shift would be undefined in languages without Go's defined-zero
// full-width shift semantics.
func TestHighBitsClear(t *testing.T) {
	bases := []byte{'A', 'C', 'G', 'T'}
	for k := 1; k <= MaxK; k++ {
		kl := mustK(t, k)
		seq := bytes.Repeat([]byte{'A'}, k)
		for i := range seq {
			seq[i] = bases[i%len(bases)]
		}
		code, ok := Pack(seq, kl)
		if !ok {
			t.Fatalf("Pack(%q) for k=%d: expected ok", seq, k)
		}
		if !highBitsClear(code, kl) {
			t.Errorf("highBitsClear(Pack(%q), %d) = false, want true", seq, k)
		}
		if canon := Canonical(code, kl); !highBitsClear(canon, kl) {
			t.Errorf("highBitsClear(Canonical(Pack(%q)), %d) = false, want true", seq, k)
		}
	}
}
