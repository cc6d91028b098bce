package reflex

import (
	"time"

	"github.com/vovakirdan/tui-reflex/internal/core"
)

// Snapshot is the render-facing view of one frame. It is recomputed every
// frame and never retained by the game logic.
type Snapshot struct {
	Round     int
	Score     int
	Lives     int
	Target    core.Direction
	HasTarget bool
	Window    time.Duration
	Info      string // Last round outcome / prompt message
	Error     string // Sticky device error, already prefixed for display
	GameOver  bool
}
