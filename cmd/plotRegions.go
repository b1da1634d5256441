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

var plotRegionsCmd = &cobra.Command{
	Use:   "plotRegions",
	Short: "Plot the modification region distribution of two conditions",
	Long: `Compares modification sites between two condition site tables, assigns
each site a transcript region (5' UTR, CDS, 3' UTR, ncRNA, Intergenic) from
its gene annotation, layers the sites into condition-unique and shared per
region and renders normalised stacked bars to an HTML chart.`,
	Run: func(cmd *cobra.Command, args []string) {
		fileA, aErr := cmd.Flags().GetString("sites-a")
		if aErr != nil {
			log.Fatalf("Error getting sites-a flag: %v", aErr)
		}
		fileB, bErr := cmd.Flags().GetString("sites-b")
		if bErr != nil {
			log.Fatalf("Error getting sites-b flag: %v", bErr)
		}
		labelA, laErr := cmd.Flags().GetString("label-a")
		if laErr != nil {
			log.Fatalf("Error getting label-a flag: %v", laErr)
		}
		labelB, lbErr := cmd.Flags().GetString("label-b")
		if lbErr != nil {
			log.Fatalf("Error getting label-b flag: %v", lbErr)
		}
		output, oErr := cmd.Flags().GetString("output")
		if oErr != nil {
			log.Fatalf("Error getting output flag: %v", oErr)
		}

		if fileA == "" || fileB == "" {
			fmt.Fprintln(os.Stderr, "Please provide both --sites-a and --sites-b")
			os.Exit(1)
		}

		if output == "" {
			if workspaceRoot != "" {
				output = filepath.Join(workspace.Open(workspaceRoot).ResultPlots, "modification_region_distribution.html")
			} else {
				output = "modification_region_distribution.html"
			}
		}

		if err := plots.RegionChart(fileA, fileB, labelA, labelB, output); err != nil {
			fmt.Fprintf(os.Stderr, "Error plotting region chart: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Chart saved at: %s\n", output)
	},
}

func init() {
	rootCmd.AddCommand(plotRegionsCmd)

	plotRegionsCmd.Flags().String("sites-a", "", "Site table for the first condition")
	plotRegionsCmd.Flags().String("sites-b", "", "Site table for the second condition")
	plotRegionsCmd.Flags().String("label-a", "OD1", "Label for the first condition")
	plotRegionsCmd.Flags().String("label-b", "OD0.3", "Label for the second condition")
	plotRegionsCmd.Flags().StringP("output", "o", "", "Output HTML path (default result/plots in the workspace)")
}
