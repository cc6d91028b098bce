package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-reflex/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune{r}})
}

func TestKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Key
	}{
		{"up arrow", tea.KeyMsg(tea.Key{Type: tea.KeyUp}), core.KeyUp},
		{"down arrow", tea.KeyMsg(tea.Key{Type: tea.KeyDown}), core.KeyDown},
		{"left arrow", tea.KeyMsg(tea.Key{Type: tea.KeyLeft}), core.KeyLeft},
		{"right arrow", tea.KeyMsg(tea.Key{Type: tea.KeyRight}), core.KeyRight},
		{"w", runeKey('w'), core.KeyUp},
		{"s", runeKey('s'), core.KeyDown},
		{"a", runeKey('a'), core.KeyLeft},
		{"d", runeKey('d'), core.KeyRight},
		{"q", runeKey('q'), core.KeyQuit},
		{"ctrl+c", tea.KeyMsg(tea.Key{Type: tea.KeyCtrlC}), core.KeyQuit},
		{"unmapped", runeKey('x'), core.KeyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Map(tt.msg); got != tt.want {
				t.Errorf("Map(%s) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyLatchLastWins(t *testing.T) {
	l := NewKeyLatch()

	l.Store(core.KeyUp)
	l.Store(core.KeyLeft)

	if got := l.Poll(); got != core.KeyLeft {
		t.Errorf("Expected last stored key LEFT, got %v", got)
	}
	if got := l.Poll(); got != core.KeyNone {
		t.Errorf("Poll should consume the key, got %v", got)
	}
}

func TestKeyLatchIgnoresNone(t *testing.T) {
	l := NewKeyLatch()

	l.Store(core.KeyQuit)
	l.Store(core.KeyNone)

	if got := l.Poll(); got != core.KeyQuit {
		t.Errorf("KeyNone must not clear a pending key, got %v", got)
	}
}
