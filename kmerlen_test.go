package kcount

import "testing"

func TestNewKmerLength(t *testing.T) {
	cases := []struct {
		k       int
		wantErr bool
	}{
		{0, true},
		{1, false},
		{21, false},
		{32, false},
		{33, true},
		{-5, true},
	}
	for _, c := range cases {
		kl, err := NewKmerLength(c.k)
		if c.wantErr {
			if err == nil {
				t.Errorf("NewKmerLength(%d): expected error, got nil", c.k)
			}
			continue
		}
		if err != nil {
			t.Fatalf("NewKmerLength(%d): unexpected error: %s", c.k, err)
		}
		if kl.Int() != c.k {
			t.Errorf("NewKmerLength(%d).Int() = %d", c.k, kl.Int())
		}
		if kl.bits() != uint(c.k)*2 {
			t.Errorf("NewKmerLength(%d).bits() = %d, want %d", c.k, kl.bits(), c.k*2)
		}
	}
}

func TestKmerLengthString(t *testing.T) {
	kl, err := NewKmerLength(21)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := kl.String(), "k=21"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
