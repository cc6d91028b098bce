package reflex

import (
	"time"

	"github.com/vovakirdan/tui-reflex/internal/core"
)

// Session is the per-frame driver: it ticks the engine, arbitrates input,
// and keeps the sticky device error message. The platform layer calls
// Frame once per frame period and renders the returned snapshot.
type Session struct {
	engine  *Engine
	events  <-chan core.DeviceEvent // nil in keyboard-only mode
	keys    core.KeyPoller
	lastErr string
}

// NewSession wires an engine to its input sources. events may be nil when
// no device is attached.
func NewSession(engine *Engine, events <-chan core.DeviceEvent, keys core.KeyPoller) *Session {
	return &Session{
		engine: engine,
		events: events,
		keys:   keys,
	}
}

// Frame runs one frame at the given instant and reports whether the player
// quit. After game over, input handling narrows to the quit key; device
// events are left queued, matching the idle game-over screen.
func (s *Session) Frame(now time.Time) (Snapshot, bool) {
	s.engine.Tick(now)

	if s.engine.GameOver() {
		return s.snapshot(), s.keys.Poll() == core.KeyQuit
	}

	d := Poll(s.events, s.keys)
	if d.HasErr {
		s.lastErr = "Error: " + d.Err
	}
	if d.Quit {
		return s.snapshot(), true
	}
	if d.HasAction {
		s.engine.Judge(d.Action, now)
	}

	return s.snapshot(), false
}

func (s *Session) snapshot() Snapshot {
	snap := s.engine.Snapshot()
	snap.Error = s.lastErr
	return snap
}
