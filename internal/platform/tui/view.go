package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-reflex/internal/games/reflex"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	targetStyle = lipgloss.NewStyle().Reverse(true).Padding(0, 1)
	readyStyle  = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
	overStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

// renderView lays out one frame snapshot for a width x height terminal.
func renderView(snap reflex.Snapshot, width, height int, helpLine string) string {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	center := func(s string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(center(titleStyle.Render("Reflex")))
	b.WriteString("\n\n")

	status := fmt.Sprintf("Score: %d   Lives: %d   Reaction window: %.1fs",
		snap.Score, snap.Lives, snap.Window.Seconds())
	b.WriteString(center(status))
	b.WriteString("\n\n")

	if snap.HasTarget {
		b.WriteString(center(targetStyle.Render(fmt.Sprintf(">>> %s <<<", snap.Target))))
	} else if snap.GameOver {
		b.WriteString(center(targetStyle.Render("GAME OVER")))
	} else {
		b.WriteString(center(readyStyle.Render("Get ready...")))
	}
	b.WriteString("\n\n")

	if snap.GameOver {
		msg := fmt.Sprintf("Game over! Final score: %d. Press 'q' to quit.", snap.Score)
		b.WriteString(center(overStyle.Render(msg)))
		b.WriteString("\n\n")
	}

	if snap.Info != "" {
		b.WriteString(center(snap.Info))
		b.WriteString("\n")
	}
	if snap.Error != "" {
		b.WriteString(center(errorStyle.Render(truncate(snap.Error, width-2))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(center(helpStyle.Render(helpLine)))

	// Pin the layout to the full terminal height so the alt screen stays
	// stable between frames.
	return lipgloss.PlaceVertical(height, lipgloss.Top, b.String())
}

func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max]
}
