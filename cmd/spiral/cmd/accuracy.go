package cmd

import (
	"fmt"

	"github.com/casics/spiral/oracle"
	"github.com/spf13/cobra"
)

var (
	accuracyOracleFile string
	accuracySplitter   string
	accuracyShowMisses bool
)

var accuracyCmd = &cobra.Command{
	Use:   "accuracy",
	Short: "Report a splitter's accuracy against an oracle file",
	Long: `Accuracy reads an oracle file (tab-separated identifier and expected,
comma-separated tokens, one record per line) and reports what percentage of
records a named splitter reproduces exactly (spec §8, "Regression corpora").`,
	RunE: runAccuracy,
}

func init() {
	rootCmd.AddCommand(accuracyCmd)

	accuracyCmd.Flags().StringVarP(&accuracyOracleFile, "oracle", "o", "", "oracle file to evaluate against (required)")
	accuracyCmd.Flags().StringVarP(&accuracySplitter, "splitter", "s", "ronin", "named splitter to evaluate: ronin, samurai, or elementary")
	accuracyCmd.Flags().BoolVar(&accuracyShowMisses, "show-misses", false, "print every mismatched identifier")
	accuracyCmd.MarkFlagRequired("oracle")
}

func runAccuracy(_ *cobra.Command, _ []string) error {
	entries, err := oracle.LoadFile(accuracyOracleFile)
	if err != nil {
		return fmt.Errorf("reading oracle file: %w", err)
	}

	available, err := availableSplitters()
	if err != nil {
		return err
	}
	split, ok := available[accuracySplitter]
	if !ok {
		return fmt.Errorf("unrecognized splitter %q (see \"spiral list\")", accuracySplitter)
	}

	report := oracle.Evaluate(entries, split)
	fmt.Printf("%s: %d/%d correct (%.1f%%)\n", accuracySplitter, report.Correct, report.Total, report.Accuracy())

	if accuracyShowMisses {
		for _, miss := range report.Mismatches {
			fmt.Printf("  %s: expected %v, got %v\n", miss.Identifier, miss.Expected, miss.Got)
		}
	}
	return nil
}
