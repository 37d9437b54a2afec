package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kmertools/kcount"
)

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{
		"":          FASTA,
		"tsv":       TSV,
		"fasta":     FASTA,
		"json":      JSON,
		"histogram": Histogram,
		"hist":      Histogram,
	}
	for s, want := range cases {
		got, err := ParseKind(s)
		if err != nil {
			t.Fatalf("ParseKind(%q): %s", s, err)
		}
		if got != want {
			t.Errorf("ParseKind(%q) = %v, want %v", s, got, want)
		}
	}
	if _, err := ParseKind("bogus"); err == nil {
		t.Error("ParseKind(\"bogus\"): expected error")
	}
}

func TestWriteCountsTSV(t *testing.T) {
	var buf bytes.Buffer
	counts := map[string]uint64{"ACG": 3, "AAA": 1}
	if err := WriteCounts(&buf, counts, TSV); err != nil {
		t.Fatal(err)
	}
	want := "AAA\t1\nACG\t3\n"
	if buf.String() != want {
		t.Errorf("TSV output = %q, want %q", buf.String(), want)
	}
}

func TestWriteCountsFASTA(t *testing.T) {
	var buf bytes.Buffer
	counts := map[string]uint64{"ACG": 3}
	if err := WriteCounts(&buf, counts, FASTA); err != nil {
		t.Fatal(err)
	}
	want := ">3\nACG\n"
	if buf.String() != want {
		t.Errorf("FASTA output = %q, want %q", buf.String(), want)
	}
}

func TestWriteCountsJSON(t *testing.T) {
	var buf bytes.Buffer
	counts := map[string]uint64{"ACG": 3}
	if err := WriteCounts(&buf, counts, JSON); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"kmer": "ACG"`) {
		t.Errorf("JSON output missing kmer field: %s", buf.String())
	}
	if !strings.Contains(buf.String(), `"count": 3`) {
		t.Errorf("JSON output missing count field: %s", buf.String())
	}
}

func TestWriteHistogram(t *testing.T) {
	var buf bytes.Buffer
	entries := []kcount.HistogramEntry{{Count: 1, Frequency: 5}, {Count: 2, Frequency: 1}}
	if err := WriteHistogram(&buf, entries); err != nil {
		t.Fatal(err)
	}
	want := "1\t5\n2\t1\n"
	if buf.String() != want {
		t.Errorf("histogram output = %q, want %q", buf.String(), want)
	}
}
