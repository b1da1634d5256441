/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/Liang-Zhanhao/m6aseq-toolkit/reference"
	"github.com/spf13/cobra"
)

var checkRefCmd = &cobra.Command{
	Use:   "checkRef",
	Short: "Summarise a reference genome FASTA",
	Long: `Reads a reference genome FASTA (plain or gzipped) and reports the number
of sequences and their lengths. Use it to confirm a download into
reference/genome before building the STAR index.`,
	Run: func(cmd *cobra.Command, args []string) {
		refPath, rErr := cmd.Flags().GetString("reference")
		if rErr != nil {
			log.Fatalf("Error getting reference flag: %v", rErr)
		}

		if refPath == "" {
			fmt.Fprintln(os.Stderr, "Please provide a reference FASTA with --reference")
			os.Exit(1)
		}

		fmt.Printf("Reading reference %s ...\n\n", refPath)
		sum, err := reference.Summarize(refPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading reference: %v\n", err)
			os.Exit(1)
		}
		sum.Print()
	},
}

func init() {
	rootCmd.AddCommand(checkRefCmd)

	checkRefCmd.Flags().StringP("reference", "r", "", "Path to reference genome fasta file")
}
