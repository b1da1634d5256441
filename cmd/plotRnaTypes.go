/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/Liang-Zhanhao/m6aseq-toolkit/plots"
	"github.com/Liang-Zhanhao/m6aseq-toolkit/workspace"
	"github.com/spf13/cobra"
)

var plotRnaTypesCmd = &cobra.Command{
	Use:   "plotRnaTypes",
	Short: "Plot the rRNA depletion effect across two groups",
	Long: `Reads per-sample modification site tables (tab separated, with Sites and
Gene_Type columns) from two condition folders, collapses gene types into RNA
classes (mRNA, rRNA, ncRNA, unaligned) and renders stacked percentage bars
per sample to an HTML chart.`,
	Run: func(cmd *cobra.Command, args []string) {
		controlDir, c1Err := cmd.Flags().GetString("control-dir")
		if c1Err != nil {
			log.Fatalf("Error getting control-dir flag: %v", c1Err)
		}
		treatedDir, c2Err := cmd.Flags().GetString("treated-dir")
		if c2Err != nil {
			log.Fatalf("Error getting treated-dir flag: %v", c2Err)
		}
		controlName, n1Err := cmd.Flags().GetString("control-name")
		if n1Err != nil {
			log.Fatalf("Error getting control-name flag: %v", n1Err)
		}
		treatedName, n2Err := cmd.Flags().GetString("treated-name")
		if n2Err != nil {
			log.Fatalf("Error getting treated-name flag: %v", n2Err)
		}
		output, oErr := cmd.Flags().GetString("output")
		if oErr != nil {
			log.Fatalf("Error getting output flag: %v", oErr)
		}

		if controlDir == "" || treatedDir == "" {
			fmt.Fprintln(os.Stderr, "Please provide both --control-dir and --treated-dir")
			os.Exit(1)
		}

		if output == "" {
			if workspaceRoot != "" {
				output = filepath.Join(workspace.Open(workspaceRoot).ResultPlots, "rRNA_depletion_effect.html")
			} else {
				output = "rRNA_depletion_effect.html"
			}
		}

		if err := plots.RNATypeChart(controlDir, treatedDir, controlName, treatedName, output); err != nil {
			fmt.Fprintf(os.Stderr, "Error plotting RNA type chart: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Chart saved at: %s\n", output)
	},
}

func init() {
	rootCmd.AddCommand(plotRnaTypesCmd)

	plotRnaTypesCmd.Flags().String("control-dir", "", "Folder with control group site tables")
	plotRnaTypesCmd.Flags().String("treated-dir", "", "Folder with treated group site tables")
	plotRnaTypesCmd.Flags().String("control-name", "control", "Label for the control group")
	plotRnaTypesCmd.Flags().String("treated-name", "treated", "Label for the treated group")
	plotRnaTypesCmd.Flags().StringP("output", "o", "", "Output HTML path (default result/plots in the workspace)")
}
