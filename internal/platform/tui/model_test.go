package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 7}
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	require.True(t, ok)
	return gm, cmd
}

func tick(t *testing.T, m GameModel) (GameModel, tea.Cmd) {
	t.Helper()
	return update(t, m, TickMsg{Loop: m.loopID})
}

func TestGameModelInitResetsGame(t *testing.T) {
	g := newStubGame()
	m := NewGameModel(g, nil, testConfig(), Options{})

	cmd := m.Init()
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, g.resets)
	assert.Equal(t, []int64{7}, g.seeds)
}

func TestGameModelRandomSeedWhenUnset(t *testing.T) {
	cfg := testConfig()
	cfg.Seed = 0
	m := NewGameModel(newStubGame(), nil, cfg, Options{})

	assert.NotZero(t, m.config.Seed)
	assert.False(t, m.fixedSeed)
}

func TestGameModelIgnoresStaleTicks(t *testing.T) {
	g := newStubGame()
	m := NewGameModel(g, nil, testConfig(), Options{})
	m.Init()

	m, cmd := update(t, m, TickMsg{Loop: "some-other-loop"})
	assert.Nil(t, cmd)
	assert.Empty(t, g.frames)

	_, cmd = tick(t, m)
	assert.NotNil(t, cmd)
	assert.Len(t, g.frames, 1)
}

func TestGameModelFeedsHeldInput(t *testing.T) {
	g := newStubGame()
	m := NewGameModel(g, nil, testConfig(), Options{})
	m.Init()

	m, _ = update(t, m, keyMsg("w"))
	m, _ = update(t, m, keyMsg(" "))
	m, _ = tick(t, m)

	assert.True(t, g.lastFrame().Has(core.ActionThrust))
	assert.True(t, g.lastFrame().Has(core.ActionFire))

	_, _ = tick(t, m)
	assert.True(t, g.lastFrame().Has(core.ActionThrust), "thrust is held")
	assert.False(t, g.lastFrame().Has(core.ActionFire), "fire is one tick")
}

func TestGameModelEscPausesThenLeaves(t *testing.T) {
	g := newStubGame()
	m := NewGameModel(g, nil, testConfig(), Options{AllowBack: true})
	m.Init()

	m, _ = update(t, m, keyMsg("esc"))
	m, _ = tick(t, m)
	require.True(t, m.State().Paused)
	assert.False(t, m.BackToMenu())

	m, _ = update(t, m, keyMsg("esc"))
	assert.True(t, m.BackToMenu())

	_, cmd := tick(t, m)
	assert.Nil(t, cmd, "no more ticks after leaving")
}

func TestGameModelBackNeedsAllowBack(t *testing.T) {
	g := newStubGame()
	g.state.GameOver = true
	m := NewGameModel(g, nil, testConfig(), Options{})
	m.gameState = g.state

	m, _ = update(t, m, keyMsg("esc"))
	assert.False(t, m.BackToMenu())
}

func TestGameModelQuit(t *testing.T) {
	m := NewGameModel(newStubGame(), nil, testConfig(), Options{})

	m, cmd := update(t, m, keyMsg("q"))
	assert.True(t, m.IsQuitting())
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestGameModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	g := newStubGame()
	g.onStep = func(g *stubGame) {
		g.state.Score = 1230
		g.state.Wave = 3
		g.state.GameOver = true
	}
	g.events = []core.Event{core.EventGameOver}

	m := NewGameModel(g, store, testConfig(), Options{Player: "ada", Logger: logger})
	m.Init()

	m, _ = tick(t, m)
	m, _ = tick(t, m)

	scores, err := store.AllScores("stub")
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, "ada", scores[0].Player)
	assert.Equal(t, 1230, scores[0].Score)
	assert.Equal(t, 3, scores[0].Wave)
	assert.Equal(t, m.runID, scores[0].RunID)

	assert.Contains(t, buf.String(), "run finished")
	assert.Contains(t, buf.String(), "game_over")
}

func TestGameModelSkipsZeroScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	g := newStubGame()
	g.onStep = func(g *stubGame) { g.state.GameOver = true }

	m := NewGameModel(g, store, testConfig(), Options{})
	m.Init()
	tick(t, m)

	scores, err := store.AllScores("stub")
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestGameModelRestartAfterGameOver(t *testing.T) {
	g := newStubGame()
	m := NewGameModel(g, nil, testConfig(), Options{})
	m.Init()

	// Restart is ignored while playing
	m, _ = update(t, m, keyMsg("r"))
	assert.Equal(t, 1, g.resets)

	g.state.GameOver = true
	m, _ = tick(t, m)
	firstRun := m.runID

	m, _ = update(t, m, keyMsg("r"))
	assert.Equal(t, 2, g.resets)
	assert.False(t, m.State().GameOver)
	assert.NotEqual(t, firstRun, m.runID)
	assert.Equal(t, []int64{7, 7}, g.seeds, "a fixed seed survives restarts")
}

func TestGameModelResize(t *testing.T) {
	g := newStubGame()
	m := NewGameModel(g, nil, testConfig(), Options{})
	m.Init()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Equal(t, 1, g.resets, "same size keeps the game")

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, 2, g.resets)
	assert.Equal(t, 100, g.lastCfg.ScreenW)
	assert.Equal(t, 100, m.screen.Width())
}

func TestGameModelView(t *testing.T) {
	g := newStubGame()
	m := NewGameModel(g, nil, testConfig(), Options{})
	m.Init()

	view := stripANSI(m.View())
	assert.Equal(t, '@', []rune(view)[0])
}

func TestGameModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := NewGameModel(newStubGame(), nil, testConfig(), Options{ScreenshotDir: dir})
	m.Init()

	update(t, m, keyMsg("ctrl+s"))

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	data, err := os.ReadFile(filepath.Join(dir, files[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, byte('@'), data[0])
}
