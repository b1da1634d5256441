/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/Liang-Zhanhao/m6aseq-toolkit/audit"
	"github.com/Liang-Zhanhao/m6aseq-toolkit/utils"
	"github.com/Liang-Zhanhao/m6aseq-toolkit/workspace"
	"github.com/spf13/cobra"
)

var auditBatchCmd = &cobra.Command{
	Use:   "auditBatch",
	Short: "Audit every sample under align_results",
	Long: `Audits all sample directories under <root>/align_results, writes a TSV
summary and a JSON run log into <root>/result, and prints aggregate
mapped-percentage statistics. One sample's failure never stops the rest.

Exit codes: 0 (no FAIL verdict), 2 (at least one FAIL).`,
	Run: func(cmd *cobra.Command, args []string) {
		minPct, mErr := cmd.Flags().GetFloat64("min-mapped-pct")
		if mErr != nil {
			log.Fatalf("Error getting min-mapped-pct flag: %v", mErr)
		}

		warnFloor, wErr := cmd.Flags().GetFloat64("warn-floor-pct")
		if wErr != nil {
			log.Fatalf("Error getting warn-floor-pct flag: %v", wErr)
		}

		samtools, stErr := cmd.Flags().GetString("samtools")
		if stErr != nil {
			log.Fatalf("Error getting samtools flag: %v", stErr)
		}

		timeout, tErr := cmd.Flags().GetDuration("timeout")
		if tErr != nil {
			log.Fatalf("Error getting timeout flag: %v", tErr)
		}

		jobs, jErr := cmd.Flags().GetInt("jobs")
		if jErr != nil {
			log.Fatalf("Error getting jobs flag: %v", jErr)
		}

		if cfgFile != "" {
			fmt.Println("Reading config file ...")
			cfg, confErr := utils.ReadConfig(cfgFile)
			if confErr != nil {
				log.Fatalf("Error reading config file: %v", confErr)
			}
			if workspaceRoot == "" {
				workspaceRoot = cfg.WorkspaceRoot
			}
			minPct = cfg.MinMappedPct
			warnFloor = cfg.WarnFloorPct
			samtools = cfg.Samtools
			jobs = cfg.Threads
		}

		if workspaceRoot == "" {
			fmt.Fprintln(os.Stderr, "Please provide a workspace root with --root or a config file")
			os.Exit(1)
		}

		fmt.Printf("Checking dependencies ...\n\n")
		if err := utils.CheckDeps(samtools); err != nil {
			log.Fatalf("Dependency check failed: %v", err)
		}
		fmt.Printf("Dependencies OK\n\n----------------------------------------------------------\n\n")

		opts := audit.Options{
			MinMappedPct: minPct,
			WarnFloorPct: warnFloor,
			Samtools:     samtools,
			Timeout:      timeout,
		}

		results, err := audit.Batch(context.Background(), workspaceRoot, opts, jobs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Batch audit failed: %v\n", err)
			os.Exit(1)
		}

		failed := 0
		for _, res := range results {
			res.Print()
			if res.Verdict == audit.VerdictFail {
				failed++
			}
		}

		audit.PrintBatchStats(results)

		summaryPath := filepath.Join(workspace.Open(workspaceRoot).Result, "audit_summary.tsv")
		if err := audit.WriteSummary(results, summaryPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing summary: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Summary written to %s\n", summaryPath)

		if failed > 0 {
			fmt.Printf("\n%d of %d samples FAILED\n", failed, len(results))
			os.Exit(2)
		}
		fmt.Printf("\nAll %d samples passed the audit\n", len(results))
	},
}

func init() {
	rootCmd.AddCommand(auditBatchCmd)

	auditBatchCmd.Flags().Float64("min-mapped-pct", 80.0, "Minimum acceptable mapped-read percentage")
	auditBatchCmd.Flags().Float64("warn-floor-pct", 1.0, "Mapped percentage below which WARN becomes FAIL")
	auditBatchCmd.Flags().String("samtools", "samtools", "Path to the samtools binary")
	auditBatchCmd.Flags().Duration("timeout", 5*time.Minute, "Timeout per flagstat subprocess")
	auditBatchCmd.Flags().IntP("jobs", "j", 4, "Number of samples audited in parallel")
}
