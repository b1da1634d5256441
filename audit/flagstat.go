package audit

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// FlagstatSummary holds the counts reported by samtools flagstat.
type FlagstatSummary struct {
	TotalReads    int
	MappedReads   int
	Secondary     int
	Supplementary int
	Duplicates    int
	MappedPct     float64
}

// RunFlagstat invokes samtools flagstat on one BAM file and parses its output.
// The subprocess is killed when the timeout elapses.
func RunFlagstat(ctx context.Context, samtools, bamPath string, timeout time.Duration) (FlagstatSummary, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, samtools, "flagstat", bamPath)
	var out bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return FlagstatSummary{}, fmt.Errorf("%w: timed out after %s on %s", ErrToolExecution, timeout, bamPath)
		}
		return FlagstatSummary{}, fmt.Errorf("%w: %v: %s", ErrToolExecution, err, strings.TrimSpace(stderr.String()))
	}

	return ParseFlagstat(out.String())
}

// ParseFlagstat parses the text samtools flagstat prints, e.g.
//
//	10000000 + 0 in total (QC-passed reads + QC-failed reads)
//	9500000 + 0 mapped (95.00% : N/A)
//
// The percentage is recomputed from the counts rather than read back from
// the tool's formatting.
func ParseFlagstat(text string) (FlagstatSummary, error) {
	var fs FlagstatSummary
	sawTotal := false
	sawMapped := false

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 4 || fields[1] != "+" {
			continue
		}
		passed, pErr := strconv.Atoi(fields[0])
		failed, fErr := strconv.Atoi(fields[2])
		if pErr != nil || fErr != nil {
			continue
		}
		n := passed + failed

		rest := strings.Join(fields[3:], " ")
		switch {
		case strings.HasPrefix(rest, "in total"):
			fs.TotalReads = n
			sawTotal = true
		case strings.HasPrefix(rest, "secondary"):
			fs.Secondary = n
		case strings.HasPrefix(rest, "supplementary"):
			fs.Supplementary = n
		case strings.HasPrefix(rest, "duplicates"):
			fs.Duplicates = n
		case strings.HasPrefix(rest, "mapped ("):
			fs.MappedReads = n
			sawMapped = true
		}
	}

	if !sawTotal || !sawMapped {
		return fs, fmt.Errorf("%w: flagstat output missing total/mapped lines", ErrInvalidData)
	}
	if fs.TotalReads > 0 {
		fs.MappedPct = float64(fs.MappedReads) / float64(fs.TotalReads) * 100.0
	}
	return fs, nil
}
