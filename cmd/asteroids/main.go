// asteroids is a vector Asteroids game for the terminal.
//
// Usage:
//
//	asteroids list              - List available game variants
//	asteroids play <game>       - Play a game
//	asteroids menu              - Start menu to pick games interactively
//	asteroids serve             - Start SSH server for remote play
//	asteroids scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.asteroids/scores.db)
//	--log <path>    - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	_ "github.com/vovakirdan/tui-asteroids/internal/games/asteroids" // registers the game variants
	"github.com/vovakirdan/tui-asteroids/internal/vector"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
	flagPlayer  string

	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asteroids",
	Short: "Asteroids - shoot rocks in your terminal",
	Long: `Asteroids is the vector arcade classic drawn with terminal characters.

Available commands:
  list     - Show all game variants
  play     - Play a specific variant directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  asteroids list
  asteroids play asteroids
  asteroids menu
  asteroids serve --ssh :2222
  asteroids scores asteroids_classic`,
	PersistentPreRunE: setupLogging,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.asteroids/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Name stored with your scores")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// logger is used by the local commands. It discards everything unless
// --log is set, since the game owns the terminal.
var logger = log.New(io.Discard)

func setupLogging(_ *cobra.Command, _ []string) error {
	if flagLogPath == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(flagLogPath), 0o755); err != nil {
		return fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f

	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "asteroids",
	})
	vector.SetLogger(logger.WithPrefix("vector"))
	return nil
}

// runtimeConfig builds the runtime config from the flags and the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// screenshotDir is where Ctrl+S writes screen dumps.
func screenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".asteroids", "screenshots")
}
