/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/Liang-Zhanhao/m6aseq-toolkit/workspace"
	"github.com/spf13/cobra"
)

var initWorkspaceCmd = &cobra.Command{
	Use:   "initWorkspace",
	Short: "Create the m6A-seq workspace directory tree",
	Long: `Creates the fixed directory layout used by the m6A-seq pipeline under the
given root (raw_srr, raw_fastq, clean_fastq, qc_report, reference, bam,
result). Existing directories are left untouched, so the command can be
re-run safely.`,
	Run: func(cmd *cobra.Command, args []string) {
		if workspaceRoot == "" {
			fmt.Fprintln(os.Stderr, "Please provide a workspace root with --root")
			os.Exit(1)
		}

		fmt.Printf("Initialising workspace at %s ...\n\n", workspaceRoot)
		layout, err := workspace.Init(workspaceRoot)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error initialising workspace: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Workspace ready:\n")
		for _, sub := range workspace.SubDirs {
			fmt.Printf("  %s\n", sub)
		}
		fmt.Printf("\nSTAR output is expected under %s/<sample_id>/\n", layout.AlignResults)
	},
}

func init() {
	rootCmd.AddCommand(initWorkspaceCmd)
}
