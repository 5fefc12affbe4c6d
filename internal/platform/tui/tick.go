// Package tui runs games in the terminal with Bubble Tea: the tick loop,
// key mapping, the game picker, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Loop identifies the
// model that scheduled it, so a stale loop from a finished game is ignored.
type TickMsg struct {
	Time time.Time
	Loop string
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop string) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
