package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-reflex/internal/core"
)

// KeyMap defines the game key bindings. The help line in the view is
// generated from these.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Quit}
}

// FullHelp returns key bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Quit},
	}
}

// DefaultKeyMap returns the default bindings: arrow keys mirror the four
// pad buttons, q quits.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Map translates a key message to a semantic key.
func (k KeyMap) Map(msg tea.KeyMsg) core.Key {
	switch {
	case key.Matches(msg, k.Quit):
		return core.KeyQuit
	case key.Matches(msg, k.Up):
		return core.KeyUp
	case key.Matches(msg, k.Down):
		return core.KeyDown
	case key.Matches(msg, k.Left):
		return core.KeyLeft
	case key.Matches(msg, k.Right):
		return core.KeyRight
	}
	return core.KeyNone
}

// KeyLatch adapts Bubble Tea's pushed key events to the game's pull-based
// KeyPoller. Key messages between frames overwrite a one-slot latch; the
// frame's single Poll consumes it. Everything runs on the program
// goroutine, so no locking is needed.
type KeyLatch struct {
	pending core.Key
}

// NewKeyLatch creates an empty latch.
func NewKeyLatch() *KeyLatch {
	return &KeyLatch{}
}

// Store records a key press, overwriting any unread one.
func (l *KeyLatch) Store(k core.Key) {
	if k != core.KeyNone {
		l.pending = k
	}
}

// Poll returns and clears the latched key.
func (l *KeyLatch) Poll() core.Key {
	k := l.pending
	l.pending = core.KeyNone
	return k
}

var _ core.KeyPoller = (*KeyLatch)(nil)
