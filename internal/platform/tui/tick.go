// Package tui provides the Bubble Tea integration for reflex. It owns the
// frame loop, key mapping, and rendering; all game rules live in
// internal/games/reflex.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per frame to drive the game loop.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends the next frame tick
// after the given period.
func tickCmd(period time.Duration) tea.Cmd {
	return tea.Tick(period, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
