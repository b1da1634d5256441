package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

// SubDirs is the fixed m6A-seq pipeline tree created under the workspace root.
var SubDirs = []string{
	"raw_srr",
	"raw_fastq",
	"clean_fastq",
	"qc_report/raw",
	"qc_report/clean",
	"qc_report/summary",
	"reference/genome",
	"reference/gtf",
	"reference/index",
	"bam",
	"result/exomepeak2",
	"result/enrichment",
	"result/plots",
}

// AlignResultsDir is where the STAR aligner drops per-sample output.
const AlignResultsDir = "align_results"

// Layout holds the resolved paths of a workspace.
type Layout struct {
	Root         string
	RawSRR       string
	RawFastq     string
	CleanFastq   string
	QCReport     string
	Reference    string
	Bam          string
	Result       string
	ResultPlots  string
	AlignResults string
}

// Init creates the workspace tree under root. Already-existing directories
// are left untouched, so repeated calls are no-ops.
func Init(root string) (*Layout, error) {
	if root == "" {
		return nil, fmt.Errorf("workspace root must not be empty")
	}

	for _, sub := range SubDirs {
		dir := filepath.Join(root, filepath.FromSlash(sub))
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	return &Layout{
		Root:         root,
		RawSRR:       filepath.Join(root, "raw_srr"),
		RawFastq:     filepath.Join(root, "raw_fastq"),
		CleanFastq:   filepath.Join(root, "clean_fastq"),
		QCReport:     filepath.Join(root, "qc_report"),
		Reference:    filepath.Join(root, "reference"),
		Bam:          filepath.Join(root, "bam"),
		Result:       filepath.Join(root, "result"),
		ResultPlots:  filepath.Join(root, "result", "plots"),
		AlignResults: filepath.Join(root, AlignResultsDir),
	}, nil
}

// Open returns the layout for an existing workspace without creating anything.
func Open(root string) *Layout {
	return &Layout{
		Root:         root,
		RawSRR:       filepath.Join(root, "raw_srr"),
		RawFastq:     filepath.Join(root, "raw_fastq"),
		CleanFastq:   filepath.Join(root, "clean_fastq"),
		QCReport:     filepath.Join(root, "qc_report"),
		Reference:    filepath.Join(root, "reference"),
		Bam:          filepath.Join(root, "bam"),
		Result:       filepath.Join(root, "result"),
		ResultPlots:  filepath.Join(root, "result", "plots"),
		AlignResults: filepath.Join(root, AlignResultsDir),
	}
}

// SampleDir returns the expected STAR output directory for one sample.
func (l *Layout) SampleDir(sampleID string) string {
	return filepath.Join(l.AlignResults, sampleID)
}
