package cmd

import (
	"bufio"
	"fmt"
	"os"
	"sort"

	"github.com/casics/spiral/splitters"
	"github.com/spf13/cobra"
)

var buildFrequenciesOutput string

var buildFrequenciesCmd = &cobra.Command{
	Use:   "build-frequencies corpus-file...",
	Short: "Tokenize a corpus and write a word,frequency CSV frequency table",
	Long: `Build-frequencies is the external collaborator spec §1 calls out:
frequency-table construction is explicitly out of the core splitter's scope.
It tokenizes one or more corpus files with the Elementary splitter (one
identifier per line) and writes a "word,frequency" CSV suitable for
frequency.LoadCSVFile, sorted descending by frequency then alphabetically
for stable output.

Grounded on _examples/other_examples/...az-lang-nlp__scripts-buildfreq.go.go's
corpus-scan-then-sorted-CSV shape.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBuildFrequencies,
}

func init() {
	rootCmd.AddCommand(buildFrequenciesCmd)

	buildFrequenciesCmd.Flags().StringVarP(&buildFrequenciesOutput, "output", "o", "", "output CSV path (required)")
	buildFrequenciesCmd.MarkFlagRequired("output")
}

type freqEntry struct {
	word string
	freq int
}

func runBuildFrequencies(_ *cobra.Command, args []string) error {
	counts := make(map[string]int)

	for _, path := range args {
		lines, err := readLines(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		for _, line := range lines {
			for _, token := range splitters.Elementary(line, false) {
				counts[token]++
			}
		}
	}

	entries := make([]freqEntry, 0, len(counts))
	for word, freq := range counts {
		entries = append(entries, freqEntry{word, freq})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].freq != entries[j].freq {
			return entries[i].freq > entries[j].freq
		}
		return entries[i].word < entries[j].word
	})

	return writeFrequencyCSV(buildFrequenciesOutput, entries)
}

func writeFrequencyCSV(path string, entries []freqEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s,%d\n", e.word, e.freq); err != nil {
			return err
		}
	}
	return w.Flush()
}
