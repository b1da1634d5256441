/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Liang-Zhanhao/m6aseq-toolkit/audit"
	"github.com/Liang-Zhanhao/m6aseq-toolkit/utils"
	"github.com/spf13/cobra"
)

var auditSampleCmd = &cobra.Command{
	Use:   "auditSample",
	Short: "Audit one sample's STAR alignment output",
	Long: `Checks the expected STAR output files for one sample under
<root>/align_results/<sample_id>/, runs samtools flagstat on the sorted BAM
and classifies the sample as PASS, WARN or FAIL against the mapped-read
percentage threshold.

Exit codes: 0 (PASS or WARN), 2 (FAIL), 3 (sample directory not found).`,
	Run: func(cmd *cobra.Command, args []string) {
		sampleID, sErr := cmd.Flags().GetString("sample")
		if sErr != nil {
			log.Fatalf("Error getting sample flag: %v", sErr)
		}

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

		if workspaceRoot == "" {
			fmt.Fprintln(os.Stderr, "Please provide a workspace root with --root")
			os.Exit(1)
		}
		if sampleID == "" {
			fmt.Fprintln(os.Stderr, "Please provide a sample accession with --sample")
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

		res, err := audit.AuditSample(context.Background(), workspaceRoot, sampleID, opts)
		if err != nil {
			if errors.Is(err, audit.ErrSampleNotFound) {
				fmt.Fprintf(os.Stderr, "Sample %s: %v\n", sampleID, err)
				os.Exit(3)
			}
			fmt.Fprintf(os.Stderr, "Sample %s: %v\n", sampleID, err)
			res.Print()
			os.Exit(2)
		}

		res.Print()
		if res.Verdict == audit.VerdictFail {
			os.Exit(2)
		}
	},
}

func init() {
	rootCmd.AddCommand(auditSampleCmd)

	auditSampleCmd.Flags().StringP("sample", "s", "", "Sample accession (e.g. an SRR run id)")
	auditSampleCmd.Flags().Float64("min-mapped-pct", 80.0, "Minimum acceptable mapped-read percentage")
	auditSampleCmd.Flags().Float64("warn-floor-pct", 1.0, "Mapped percentage below which WARN becomes FAIL")
	auditSampleCmd.Flags().String("samtools", "samtools", "Path to the samtools binary")
	auditSampleCmd.Flags().Duration("timeout", 5*time.Minute, "Timeout for the flagstat subprocess")
}
