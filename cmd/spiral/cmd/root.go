package cmd

import (
	"fmt"
	"os"

	"github.com/casics/spiral/frequency"
	"github.com/casics/spiral/splitters"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "spiral",
	Short: "SPlitters for IdentifieRs: a library of identifier-splitting algorithms",
	Long: `spiral runs the identifier splitters implemented in this module: the
frequency/dictionary-driven Ronin scored splitter, the earlier dictionary-
free Samurai splitter it evolved from, and the plain rule-based Elementary
splitter they both build on.

IMPORTANT: this CLI is meant for exploration and testing, not as the
primary interface to spiral. Programs that want to split identifiers
should import the constants, frequency, dictionary, and splitters
packages directly.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable splitter trace logging")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}

// namedSplitter is a uniform, CLI-facing wrapper around the library's
// splitter types, which otherwise have deliberately different Go
// signatures (Ronin.Split takes a keepNumbers bool, Samurai.Split returns
// an error, Elementary is a free function).
type namedSplitter func(identifier string) []string

// availableSplitters mirrors _examples/original_source/spiral/__main__.py's
// "_available_splitters" table, minus the simple/camelcase variants that
// are not part of this spec's scope.
func availableSplitters() (map[string]namedSplitter, error) {
	ronin, err := splitters.Default()
	if err != nil {
		return nil, fmt.Errorf("building default ronin splitter: %w", err)
	}
	samurai := splitters.NewSamurai(nil, frequency.NewTable(nil))

	return map[string]namedSplitter{
		"ronin": func(id string) []string { return ronin.SplitDefault(id) },
		"samurai": func(id string) []string {
			tokens, err := samurai.Split(id)
			if err != nil {
				exitWithError("samurai: %v", err)
			}
			return tokens
		},
		"elementary": func(id string) []string { return splitters.Elementary(id, true) },
	}, nil
}
