package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ghostflap/internal/level"
)

var checkCmd = &cobra.Command{
	Use:   "check <level>",
	Short: "Validate a level file",
	Long: `Parse a level file and report its contents without playing it.
Accepts a local path or an http(s) URL.

Examples:
  ghostflap check ./levels/hard.csv
  ghostflap check https://example.com/levels/hard.csv`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) {
	source := args[0]

	lvl, err := level.Load(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Level %s is invalid: %v\n", source, err)
		os.Exit(1)
	}

	fmt.Printf("Level %s is valid: %d obstacles\n", source, lvl.Count())
	fmt.Println()
	fmt.Printf("  %-4s  %-10s  %-10s  %s\n", "#", "GapCenter", "GapHeight", "SpawnTime")
	for i, o := range lvl.Obstacles {
		fmt.Printf("  %-4d  %-10.3f  %-10.3f  %.3f\n", i+1, o.GapCenter, o.GapHeight, o.SpawnTime)
	}
}
