/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "m6aseq-toolkit",
	Short: "A toolkit for m6A-seq pipeline housekeeping",
	Long: `A helper tool for m6A-seq (MeRIP-seq) analysis workflows:
1.	Workspace scaffolding for pipeline intermediates and results
2.	STAR alignment output auditing (samtools flagstat, Log.final.out)
3.	Reference genome checks
4.	Proportion charts (rRNA depletion effect, modification regions)
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var cfgFile string
var workspaceRoot string

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to config file ")
	rootCmd.PersistentFlags().StringVar(&workspaceRoot, "root", "", "path to workspace root directory ")
}
