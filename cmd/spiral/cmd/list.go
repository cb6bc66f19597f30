package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available named splitters",
	RunE: func(_ *cobra.Command, _ []string) error {
		available, err := availableSplitters()
		if err != nil {
			return err
		}

		names := make([]string, 0, len(available))
		for name := range available {
			names = append(names, name)
		}
		sort.Strings(names)

		fmt.Println("Available splitters:")
		for _, name := range names {
			fmt.Println("  " + name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
