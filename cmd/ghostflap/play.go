package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ghostflap/internal/config"
	"github.com/vovakirdan/ghostflap/internal/level"
	"github.com/vovakirdan/ghostflap/internal/platform/tui"
	"github.com/vovakirdan/ghostflap/internal/storage"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a play session. Finished runs are replayed as ghosts in
your next attempts; ghosts last for the session, best scores persist.

Controls:
  Space/W/Up - Flap
  Enter/R    - Start / replay
  P/Esc      - Pause
  Q/Ctrl+C   - Quit

Difficulty presets:
  easy   - More lives, slower pipes
  normal - As configured
  hard   - One life, faster pipes

Examples:
  ghostflap play
  ghostflap play --difficulty hard
  ghostflap play --level ./levels/hard.csv
  ghostflap play --config ./my-config.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagDifficulty != "" {
		preset := config.DifficultyPreset(flagDifficulty)
		if !config.ValidPreset(preset) {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, normal, hard)\n", flagDifficulty)
			os.Exit(1)
		}
		config.ApplyPreset(&cfg, preset)
	}

	lvl, err := level.Load(flagLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading level: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size for the viewport
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - play still works
		store = nil
	}

	runErr := tui.Run(cfg, lvl, store, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
