package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// Options tune how a GameModel runs.
type Options struct {
	// Player is stored with each finished run. Empty means anonymous.
	Player string

	// Logger receives game events. Nil discards them.
	Logger *log.Logger

	// AllowBack lets B/Esc leave a paused or finished game, returning
	// control to the caller (the menu).
	AllowBack bool

	// ScreenshotDir is where Ctrl+S writes the screen. Empty disables it.
	ScreenshotDir string
}

// GameModel is the Bubble Tea model that runs one game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	logger     *log.Logger
	keyMapper  *KeyMapper
	input      *HeldInput
	gameState  core.GameState
	runID      string
	loopID     string
	fixedSeed  bool
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewGameModel creates a model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) GameModel {
	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		opts:      opts,
		logger:    logger.With("game", game.ID()),
		keyMapper: NewKeyMapper(),
		input:     NewHeldInput(),
		runID:     uuid.NewString(),
		loopID:    uuid.NewString(),
		fixedSeed: fixed,
	}
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("run started", "run", m.runID, "seed", m.config.Seed)
	return tickCmd(m.config.TickRate, m.loopID)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.loopID {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			if m.opts.AllowBack {
				m.backToMenu = true
				m.logger.Info("left game", "run", m.runID, "score", m.gameState.Score)
			}
			return m, nil
		}
		// Esc during play pauses first
		m.input.Press(core.ActionPause)

	case core.ActionRestart:
		if m.gameState.GameOver {
			m.restart()
		}

	default:
		m.input.Press(action)
	}

	return m, nil
}

// restart begins a fresh run, reseeding unless the seed was fixed.
func (m *GameModel) restart() {
	if !m.fixedSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.runID = uuid.NewString()
	m.input.Release()
	m.logger.Info("run started", "run", m.runID, "seed", m.config.Seed)
}

// handleResize processes window resize events. A changed size restarts an
// unfinished game since the play field is derived from the terminal.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH {
		return m, nil
	}

	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.logger.Debug("resized", "width", msg.Width, "height", msg.Height)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.input.Frame())
	m.gameState = result.State

	for _, e := range result.Events {
		m.logger.Debug("event", "run", m.runID, "event", e, "score", result.State.Score, "wave", result.State.Wave)
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.scoreSaved = true
		m.logger.Info("run finished", "run", m.runID, "score", m.gameState.Score, "wave", m.gameState.Wave)
		if m.store != nil && m.gameState.Score > 0 {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveRun(storage.Run{
				RunID:  m.runID,
				GameID: m.game.ID(),
				Player: m.opts.Player,
				Score:  m.gameState.Score,
				Wave:   m.gameState.Wave,
			})
		}
	}

	return m, tickCmd(m.config.TickRate, m.loopID)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		return
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.opts.ScreenshotDir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(m.opts.ScreenshotDir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program for a single game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewGameModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
