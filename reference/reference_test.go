package reference

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
)

const refFasta = `>chr1 test chromosome
ACGTACGTACGTACGTACGT
ACGTACGTAC
>chr2
GGGGCCCCAAAATTTT
`

func TestSummarize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genome.fna")
	if err := os.WriteFile(path, []byte(refFasta), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	sum, err := Summarize(path)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if sum.NumSeqs != 2 {
		t.Errorf("NumSeqs = %d, want 2", sum.NumSeqs)
	}
	if sum.TotalLength != 46 {
		t.Errorf("TotalLength = %d, want 46", sum.TotalLength)
	}
	if len(sum.SeqIDs) != 2 || sum.SeqIDs[0] != "chr1" || sum.SeqIDs[1] != "chr2" {
		t.Errorf("SeqIDs = %v, want [chr1 chr2]", sum.SeqIDs)
	}
	if sum.SeqLengths[0] != 30 || sum.SeqLengths[1] != 16 {
		t.Errorf("SeqLengths = %v, want [30 16]", sum.SeqLengths)
	}
}

func TestSummarizeGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genome.fna.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating fixture: %v", err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte(refFasta)); err != nil {
		t.Fatalf("writing gzip fixture: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("closing gzip writer: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("closing fixture: %v", err)
	}

	sum, err := Summarize(path)
	if err != nil {
		t.Fatalf("Summarize failed on gzipped input: %v", err)
	}
	if sum.NumSeqs != 2 {
		t.Errorf("NumSeqs = %d, want 2", sum.NumSeqs)
	}
}

func TestSummarizeEmptyFasta(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.fna")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := Summarize(path); err == nil {
		t.Error("expected an error for an empty FASTA")
	}
}

func TestSummarizeMissingFile(t *testing.T) {
	if _, err := Summarize(filepath.Join(t.TempDir(), "nope.fna")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
