package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game variant.

Controls:
  Left/Right, A/D  - Rotate
  Up/W             - Thrust
  Space            - Fire
  Down/S/H         - Hyperspace
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, fewer rocks, rarer saucers
  normal - Default settings
  hard   - Fewer lives, more rocks, small saucers from the start
  fixed  - No progression, stays at config's initial level

Examples:
  asteroids play asteroids
  asteroids play asteroids_classic --difficulty easy
  asteroids play asteroids --config ./my-asteroids.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	}
}

// applyGameFlags validates --config and --difficulty and hands them to the
// game package before any game is created.
func applyGameFlags() error {
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	if flagConfig != "" {
		if _, err := config.LoadAsteroids(flagConfig); err != nil {
			return err
		}
	}
	asteroids.SetConfigPath(flagConfig)
	asteroids.SetDifficultyPreset(flagDifficulty)
	return nil
}

// openStore opens the score database, warning and continuing without it
// on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	game, err := registry.Create(gameID)
	if errors.Is(err, registry.ErrUnknownGame) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'asteroids list' to see available games.")
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	runErr := tui.Run(game, store, runtimeConfig(), tui.Options{
		Player:        flagPlayer,
		Logger:        logger,
		ScreenshotDir: screenshotDir(),
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
