// ghostflap is a terminal flappy game where every finished run comes
// back as a ghost in the next one.
//
// Usage:
//
//	ghostflap play              - Play in the current terminal
//	ghostflap serve             - Start SSH server for remote play
//	ghostflap scores            - Show the best recorded runs
//	ghostflap check <level>     - Validate a level file
//
// Global flags:
//
//	--db <path>      - Set database path (default: ~/.ghostflap/runs.db)
//	--level <source> - Level file path or URL (default: built-in level)
//	--config <path>  - Path to custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath string
	flagLevel  string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ghostflap",
	Short: "Ghostflap - flappy with ghosts of your past runs",
	Long: `Ghostflap is a terminal flappy game with deterministic replay:
every run you finish is recorded and flies along as a ghost in your
next attempts.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View the best recorded runs
  check    - Validate a level file

Examples:
  ghostflap play
  ghostflap play --level ./levels/hard.csv
  ghostflap serve --ssh :2222
  ghostflap scores
  ghostflap check ./levels/hard.csv`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ghostflap/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", "", "Level file path or URL (empty = built-in level)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(checkCmd)
}
