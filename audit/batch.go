package audit

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/Liang-Zhanhao/m6aseq-toolkit/workspace"
)

// Batch audits every sample directory under <root>/align_results. One failing
// sample never stops the others; its Result carries VerdictFail and the
// reason. Samples are audited up to jobs at a time.
func Batch(ctx context.Context, root string, opts Options, jobs int) ([]Result, error) {
	ws := workspace.Open(root)

	entries, err := os.ReadDir(ws.AlignResults)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", ws.AlignResults, err)
	}

	var samples []string
	for _, e := range entries {
		if e.IsDir() {
			samples = append(samples, e.Name())
		}
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("no sample directories under %s", ws.AlignResults)
	}
	sort.Strings(samples)
	fmt.Printf("Found %d samples under %s\n\n", len(samples), ws.AlignResults)

	// ----------------------------------- Create/Open log file ------------------------------------ //
	if err := os.MkdirAll(ws.Result, 0755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", ws.Result, err)
	}
	logFilePath := filepath.Join(ws.Result, "audit.log")
	logFile, lErr := os.OpenFile(logFilePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if lErr != nil {
		return nil, fmt.Errorf("opening log file %s: %w", logFilePath, lErr)
	}
	defer logFile.Close()

	jlog := slog.New(slog.NewJSONHandler(logFile, nil))
	jlog.Info("AUDIT", "PROGRAM", "INITIALISE", "SAMPLE", "ALL", "STATUS", "STARTED")

	if jobs < 1 {
		jobs = 1
	}

	results := make([]Result, len(samples))
	var g errgroup.Group
	g.SetLimit(jobs)

	for i, sample := range samples {
		i, sample := i, sample
		g.Go(func() error {
			jlog.Info("AUDIT", "PROGRAM", "FLAGSTAT", "SAMPLE", sample, "STATUS", "STARTED")
			res, aErr := AuditSample(ctx, root, sample, opts)
			if aErr != nil {
				// Keep going; the verdict and reason land in the summary.
				if res.Verdict == "" {
					res.Verdict = VerdictFail
					res.Reason = aErr.Error()
				}
				jlog.Error("AUDIT", "PROGRAM", "FLAGSTAT", "SAMPLE", sample, "STATUS", fmt.Sprintf("FAILED - %v", aErr))
			} else {
				jlog.Info("AUDIT", "PROGRAM", "FLAGSTAT", "SAMPLE", sample, "STATUS", "COMPLETED", "VERDICT", string(res.Verdict))
			}
			results[i] = res
			return nil
		})
	}
	if gErr := g.Wait(); gErr != nil {
		return results, gErr
	}

	jlog.Info("AUDIT", "PROGRAM", "INITIALISE", "SAMPLE", "ALL", "STATUS", "COMPLETED")
	return results, nil
}

// WriteSummary writes one TSV row per audited sample.
func WriteSummary(results []Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "SAMPLE\tVERDICT\tTOTAL_READS\tMAPPED_READS\tMAPPED_PCT\tMISSING_FILES\tREASON\n"); err != nil {
		return err
	}
	for _, r := range results {
		total, mapped := 0, 0
		pct := 0.0
		if r.Flagstat != nil {
			total = r.Flagstat.TotalReads
			mapped = r.Flagstat.MappedReads
			pct = r.Flagstat.MappedPct
		}
		missing := "-"
		if len(r.MissingFiles) > 0 {
			missing = fmt.Sprintf("%v", r.MissingFiles)
		}
		if _, err := fmt.Fprintf(f, "%s\t%s\t%d\t%d\t%.2f\t%s\t%s\n",
			r.Sample, r.Verdict, total, mapped, pct, missing, r.Reason); err != nil {
			return err
		}
	}
	return nil
}

// PrintBatchStats prints aggregate mapped-percentage statistics across the
// samples with usable flagstat numbers.
func PrintBatchStats(results []Result) {
	var pcts []float64
	for _, r := range results {
		if r.Flagstat != nil && r.Flagstat.TotalReads > 0 {
			pcts = append(pcts, r.Flagstat.MappedPct)
		}
	}
	if len(pcts) == 0 {
		fmt.Println("No mapped-percentage statistics to aggregate")
		return
	}
	sort.Float64s(pcts)

	fmt.Printf("================================== Batch Statistics ======================================\n\n")
	fmt.Printf("Samples with statistics: %d\n", len(pcts))
	fmt.Printf("Mean mapped %%: %.2f\n", stat.Mean(pcts, nil))
	fmt.Printf("Median mapped %%: %.2f\n", stat.Quantile(0.5, stat.Empirical, pcts, nil))
	fmt.Printf("Min mapped %%: %.2f  Max mapped %%: %.2f\n\n", pcts[0], pcts[len(pcts)-1])
}
