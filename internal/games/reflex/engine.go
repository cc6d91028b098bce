// Package reflex implements the reaction-test game logic: the round state
// machine, the per-frame input arbiter, and the session that ties them to a
// device listener. The package is pure simulation; rendering and key
// sources live in the platform layer.
package reflex

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-reflex/internal/core"
)

// Engine is the round state machine. It owns round number, score, lives,
// and the current target with its prompt time. All mutation happens on the
// frame loop goroutine; the engine needs no locking.
type Engine struct {
	rng    *rand.Rand
	window time.Duration

	round int
	score int
	lives int

	target   core.Direction
	active   bool      // A target is currently prompted
	promptAt time.Time // When the current target was shown
	info     string
}

// NewEngine creates an engine with the given reaction window, starting
// lives, and RNG seed. The seed makes target selection deterministic.
func NewEngine(window time.Duration, lives int, seed int64) *Engine {
	if lives <= 0 {
		lives = 3
	}
	return &Engine{
		rng:    rand.New(rand.NewSource(seed)),
		window: window,
		lives:  lives,
	}
}

// Tick advances the state machine for one frame at the given instant.
// With no target and lives remaining it starts a new round; with an
// expired target it applies the timeout. After game over it does nothing.
func (e *Engine) Tick(now time.Time) {
	if !e.active && e.lives > 0 {
		e.target = core.Directions[e.rng.Intn(len(core.Directions))]
		e.promptAt = now
		e.active = true
		e.round++
		e.info = fmt.Sprintf("Round %d! Press %s!", e.round, e.target)
	}

	// Strict > keeps a press landing exactly on the deadline in-window.
	if e.active && now.Sub(e.promptAt) > e.window {
		e.lives--
		e.info = fmt.Sprintf("Too slow! It was %s.", e.target)
		e.active = false
	}
}

// Judge evaluates a submitted action against the current target. A no-op
// when no target is prompted. The target is cleared in every branch, so a
// judged round can never also time out on the next tick.
func (e *Engine) Judge(action core.Direction, now time.Time) {
	if !e.active {
		return
	}

	if now.Sub(e.promptAt) <= e.window {
		if action == e.target {
			e.score++
			e.info = fmt.Sprintf("Nice! %s was correct.", action)
		} else {
			e.lives--
			e.info = fmt.Sprintf("Oops! You pressed %s, it was %s.", action, e.target)
		}
	} else {
		e.lives--
		e.info = fmt.Sprintf("Too late! You pressed %s, but the timer ran out.", action)
	}

	e.active = false
}

// GameOver reports whether lives have run out.
func (e *Engine) GameOver() bool {
	return e.lives <= 0
}

// Window returns the configured reaction window.
func (e *Engine) Window() time.Duration {
	return e.window
}

// Snapshot captures the engine state for rendering.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Round:    e.round,
		Score:    e.score,
		Lives:    e.lives,
		Window:   e.window,
		Info:     e.info,
		GameOver: e.GameOver(),
	}
	if e.active {
		s.Target = e.target
		s.HasTarget = true
	}
	return s
}
