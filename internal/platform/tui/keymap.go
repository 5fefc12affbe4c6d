package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// holdTicks is how many ticks a steering action stays active after its
// last key event. Terminals send key repeats but no key releases.
const holdTicks = 8

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "a", "left":
		return core.ActionRotateLeft, false
	case "d", "right":
		return core.ActionRotateRight, false
	case "w", "up":
		return core.ActionThrust, false
	case " ":
		return core.ActionFire, false
	case "s", "h", "down":
		return core.ActionHyperspace, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// HeldInput turns discrete key events into per-tick input frames.
// Steering actions stay pressed for holdTicks ticks, everything else
// lasts exactly one tick.
type HeldInput struct {
	ttl map[core.Action]int
}

// NewHeldInput creates an empty held input.
func NewHeldInput() *HeldInput {
	return &HeldInput{ttl: make(map[core.Action]int)}
}

func continuous(a core.Action) bool {
	switch a {
	case core.ActionRotateLeft, core.ActionRotateRight, core.ActionThrust:
		return true
	}
	return false
}

// Press records a key event for the action.
func (h *HeldInput) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if !continuous(a) {
		h.ttl[a] = 1
		return
	}
	// Opposite turns cancel each other out.
	switch a {
	case core.ActionRotateLeft:
		delete(h.ttl, core.ActionRotateRight)
	case core.ActionRotateRight:
		delete(h.ttl, core.ActionRotateLeft)
	}
	h.ttl[a] = holdTicks
}

// Frame returns the actions active this tick and ages them by one tick.
func (h *HeldInput) Frame() core.InputFrame {
	frame := core.NewInputFrame()
	for a, n := range h.ttl {
		frame.Set(a)
		if n <= 1 {
			delete(h.ttl, a)
		} else {
			h.ttl[a] = n - 1
		}
	}
	return frame
}

// Release drops every held action.
func (h *HeldInput) Release() {
	for a := range h.ttl {
		delete(h.ttl, a)
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
