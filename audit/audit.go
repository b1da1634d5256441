package audit

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Liang-Zhanhao/m6aseq-toolkit/workspace"
)

var (
	ErrSampleNotFound = errors.New("sample directory not found")
	ErrToolExecution  = errors.New("samtools flagstat failed")
	ErrInvalidData    = errors.New("invalid alignment statistics")
)

type Verdict string

const (
	VerdictPass Verdict = "PASS"
	VerdictWarn Verdict = "WARN"
	VerdictFail Verdict = "FAIL"
)

// Options controls one audit run. Zero values are filled by DefaultOptions.
type Options struct {
	MinMappedPct float64
	WarnFloorPct float64
	Samtools     string
	Timeout      time.Duration
}

func DefaultOptions() Options {
	return Options{
		MinMappedPct: 80.0,
		WarnFloorPct: 1.0,
		Samtools:     "samtools",
		Timeout:      5 * time.Minute,
	}
}

// Result is the per-sample audit outcome. Not persisted anywhere; the batch
// driver serialises a table of these into the workspace result directory.
type Result struct {
	Sample       string
	Dir          string
	MissingFiles []string
	HasIndex     bool
	Flagstat     *FlagstatSummary
	StarLog      *StarLogSummary
	Verdict      Verdict
	Reason       string
}

// Expected STAR output file names for one sample.
func sampleFiles(sampleID string) (bam, bai, finalLog, runLog string) {
	bam = sampleID + "_Aligned.sortedByCoord.out.bam"
	bai = bam + ".bai"
	finalLog = sampleID + "_Log.final.out"
	runLog = sampleID + "_Log.out"
	return
}

// AuditSample checks one sample's STAR output under <root>/align_results and
// classifies it against the mapped-percentage threshold. A missing sample
// directory is an error; a failing sample is a normal Result with VerdictFail.
func AuditSample(ctx context.Context, root, sampleID string, opts Options) (Result, error) {
	if opts.Samtools == "" {
		opts = DefaultOptions()
	}

	res := Result{Sample: sampleID}

	if sampleID == "" {
		return res, fmt.Errorf("%w: empty sample id", ErrSampleNotFound)
	}

	sampleDir := workspace.Open(root).SampleDir(sampleID)
	res.Dir = sampleDir

	info, err := os.Stat(sampleDir)
	if err != nil || !info.IsDir() {
		return res, fmt.Errorf("%w: %s", ErrSampleNotFound, sampleDir)
	}

	bam, bai, finalLog, runLog := sampleFiles(sampleID)
	bamPath := filepath.Join(sampleDir, bam)

	critical := false
	if _, err := os.Stat(bamPath); err != nil {
		res.MissingFiles = append(res.MissingFiles, "BAM")
		critical = true
	}
	if _, err := os.Stat(filepath.Join(sampleDir, bai)); err != nil {
		// Index is optional, downstream tools regenerate it.
		res.MissingFiles = append(res.MissingFiles, "BAM index")
	} else {
		res.HasIndex = true
	}
	finalLogPath := filepath.Join(sampleDir, finalLog)
	if _, err := os.Stat(finalLogPath); err != nil {
		res.MissingFiles = append(res.MissingFiles, "final log")
		critical = true
	}
	if _, err := os.Stat(filepath.Join(sampleDir, runLog)); err != nil {
		res.MissingFiles = append(res.MissingFiles, "run log")
	}

	if critical {
		res.Verdict = VerdictFail
		res.Reason = fmt.Sprintf("critical files missing: %v", res.MissingFiles)
		return res, nil
	}

	if sl, slErr := ParseStarLogFile(finalLogPath); slErr == nil {
		res.StarLog = sl
	}

	fs, fsErr := RunFlagstat(ctx, opts.Samtools, bamPath, opts.Timeout)
	if fsErr != nil {
		res.Verdict = VerdictFail
		res.Reason = fsErr.Error()
		return res, fsErr
	}
	res.Flagstat = &fs

	if fs.TotalReads == 0 {
		res.Verdict = VerdictFail
		res.Reason = "zero total reads"
		return res, fmt.Errorf("%w: %s has zero total reads", ErrInvalidData, bam)
	}

	switch {
	case fs.MappedPct >= opts.MinMappedPct:
		res.Verdict = VerdictPass
		res.Reason = fmt.Sprintf("mapped %.2f%% >= %.2f%%", fs.MappedPct, opts.MinMappedPct)
	case fs.MappedPct >= opts.WarnFloorPct:
		res.Verdict = VerdictWarn
		res.Reason = fmt.Sprintf("mapped %.2f%% below threshold %.2f%%", fs.MappedPct, opts.MinMappedPct)
	default:
		res.Verdict = VerdictFail
		res.Reason = fmt.Sprintf("mapped %.2f%% at or near zero", fs.MappedPct)
	}

	return res, nil
}

// Print writes a human readable report of the audit to stdout.
func (r Result) Print() {
	fmt.Printf("================================ AUDIT %s ================================\n\n", r.Sample)
	fmt.Printf("Sample directory: %s\n", r.Dir)
	if len(r.MissingFiles) == 0 {
		fmt.Printf("All expected files present\n")
	} else {
		fmt.Printf("Missing files: %v\n", r.MissingFiles)
	}
	if r.StarLog != nil {
		fmt.Printf("STAR input reads: %d\n", r.StarLog.InputReads)
		fmt.Printf("STAR uniquely mapped: %d (%.2f%%)\n", r.StarLog.UniquelyMapped, r.StarLog.UniquelyMappedPct)
		fmt.Printf("STAR multi-mapped: %.2f%%\n", r.StarLog.MultiMappedPct)
	}
	if r.Flagstat != nil {
		fmt.Printf("Total reads: %d\n", r.Flagstat.TotalReads)
		fmt.Printf("Mapped reads: %d (%.2f%%)\n", r.Flagstat.MappedReads, r.Flagstat.MappedPct)
		fmt.Printf("Secondary: %d  Supplementary: %d  Duplicates: %d\n",
			r.Flagstat.Secondary, r.Flagstat.Supplementary, r.Flagstat.Duplicates)
	}
	fmt.Printf("\nVerdict: %s (%s)\n\n", r.Verdict, r.Reason)
}
