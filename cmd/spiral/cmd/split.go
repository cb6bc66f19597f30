package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/casics/spiral/splitters"
	"github.com/spf13/cobra"
)

var (
	splitFile     string
	splitSplitter string
)

var splitCmd = &cobra.Command{
	Use:   "split [identifier...]",
	Short: "Split one or more identifiers into their constituent tokens",
	Long: `Split runs a named splitter over one or more identifiers given on the
command line, or over a file of identifiers (one per line) with -f, printing
"identifier: tok1 tok2 ..." per input.

Examples:
  spiral split getInteger ABCFooBar
  spiral split -s samurai -f identifiers.txt`,
	RunE: runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)

	splitCmd.Flags().StringVarP(&splitFile, "file", "f", "", "read input identifiers from a file, one per line")
	splitCmd.Flags().StringVarP(&splitSplitter, "splitter", "s", "ronin", "named splitter to run: ronin, samurai, or elementary")
}

func runSplit(_ *cobra.Command, args []string) error {
	splitters.Trace = verbose

	available, err := availableSplitters()
	if err != nil {
		return err
	}
	split, ok := available[splitSplitter]
	if !ok {
		return fmt.Errorf("unrecognized splitter %q (see \"spiral list\")", splitSplitter)
	}

	identifiers := args
	if splitFile != "" {
		fromFile, err := readLines(splitFile)
		if err != nil {
			return fmt.Errorf("reading %s: %w", splitFile, err)
		}
		identifiers = append(identifiers, fromFile...)
	}
	if len(identifiers) == 0 {
		return fmt.Errorf("need an identifier argument or -f file; see \"spiral split -h\"")
	}

	for _, id := range identifiers {
		tokens := split(id)
		fmt.Printf("%s: %s\n", id, strings.Join(tokens, " "))
	}
	return nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
