package audit

import (
	"errors"
	"math"
	"testing"
)

const flagstatOutput = `10000000 + 0 in total (QC-passed reads + QC-failed reads)
120000 + 0 secondary
34000 + 0 supplementary
560000 + 0 duplicates
9500000 + 0 mapped (95.00% : N/A)
9000000 + 0 paired in sequencing
4500000 + 0 read1
4500000 + 0 read2
8800000 + 0 properly paired (97.78% : N/A)
0 + 0 singletons (0.00% : N/A)
`

func TestParseFlagstat(t *testing.T) {
	fs, err := ParseFlagstat(flagstatOutput)
	if err != nil {
		t.Fatalf("ParseFlagstat failed: %v", err)
	}

	if fs.TotalReads != 10000000 {
		t.Errorf("TotalReads = %d, want 10000000", fs.TotalReads)
	}
	if fs.MappedReads != 9500000 {
		t.Errorf("MappedReads = %d, want 9500000", fs.MappedReads)
	}
	if fs.Secondary != 120000 {
		t.Errorf("Secondary = %d, want 120000", fs.Secondary)
	}
	if fs.Supplementary != 34000 {
		t.Errorf("Supplementary = %d, want 34000", fs.Supplementary)
	}
	if fs.Duplicates != 560000 {
		t.Errorf("Duplicates = %d, want 560000", fs.Duplicates)
	}
	if math.Abs(fs.MappedPct-95.0) > 1e-9 {
		t.Errorf("MappedPct = %f, want 95.00", fs.MappedPct)
	}
}

func TestParseFlagstatQCFailedCounted(t *testing.T) {
	fs, err := ParseFlagstat("90 + 10 in total (QC-passed reads + QC-failed reads)\n40 + 10 mapped (50.00% : N/A)\n")
	if err != nil {
		t.Fatalf("ParseFlagstat failed: %v", err)
	}
	if fs.TotalReads != 100 || fs.MappedReads != 50 {
		t.Errorf("got total=%d mapped=%d, want 100/50", fs.TotalReads, fs.MappedReads)
	}
	if math.Abs(fs.MappedPct-50.0) > 1e-9 {
		t.Errorf("MappedPct = %f, want 50.00", fs.MappedPct)
	}
}

func TestParseFlagstatZeroTotal(t *testing.T) {
	fs, err := ParseFlagstat("0 + 0 in total (QC-passed reads + QC-failed reads)\n0 + 0 mapped (N/A : N/A)\n")
	if err != nil {
		t.Fatalf("ParseFlagstat failed: %v", err)
	}
	if fs.TotalReads != 0 {
		t.Errorf("TotalReads = %d, want 0", fs.TotalReads)
	}
	if fs.MappedPct != 0 {
		t.Errorf("MappedPct = %f, want 0 (no division by zero)", fs.MappedPct)
	}
}

func TestParseFlagstatGarbage(t *testing.T) {
	_, err := ParseFlagstat("this is not flagstat output\n")
	if err == nil {
		t.Fatal("expected an error for unparseable output")
	}
	if !errors.Is(err, ErrInvalidData) {
		t.Errorf("error = %v, want ErrInvalidData", err)
	}
}
