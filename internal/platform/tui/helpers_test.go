package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// stubGame records what the platform feeds it.
type stubGame struct {
	resets  int
	seeds   []int64
	frames  []core.InputFrame
	state   core.GameState
	events  []core.Event
	onStep  func(g *stubGame)
	glyph   rune
	lastCfg core.RuntimeConfig
}

func newStubGame() *stubGame {
	return &stubGame{glyph: '@', state: core.GameState{Lives: 3, Wave: 1}}
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.seeds = append(g.seeds, cfg.Seed)
	g.lastCfg = cfg
	g.state = core.GameState{Lives: 3, Wave: 1}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	if g.onStep != nil {
		g.onStep(g)
	}
	return core.StepResult{State: g.state, Events: g.events}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.SetWithColor(0, 0, g.glyph, core.ColorBrightWhite)
}

func (g *stubGame) State() core.GameState { return g.state }

func (g *stubGame) lastFrame() core.InputFrame {
	if len(g.frames) == 0 {
		return core.NewInputFrame()
	}
	return g.frames[len(g.frames)-1]
}

func init() {
	registry.Register("stub", func() registry.Game { return newStubGame() })
}
