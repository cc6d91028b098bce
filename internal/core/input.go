package core

import "strings"

// Direction represents one of the four reaction-pad buttons.
// It is used both as the round target and as the player's action.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every direction in a fixed order, for uniform random
// target selection.
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the wire/display name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "UP"
	case DirDown:
		return "DOWN"
	case DirLeft:
		return "LEFT"
	case DirRight:
		return "RIGHT"
	default:
		return "UNKNOWN"
	}
}

// ParseDirection maps a normalized token to a Direction. Returns false for
// anything outside the four-token vocabulary.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "UP":
		return DirUp, true
	case "DOWN":
		return DirDown, true
	case "LEFT":
		return DirLeft, true
	case "RIGHT":
		return DirRight, true
	default:
		return 0, false
	}
}

// NormalizeToken trims surrounding whitespace and upper-cases a raw device
// line before vocabulary matching.
func NormalizeToken(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Key represents a semantic key press from the local keyboard, abstracted
// from the terminal library that produced it.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyQuit
)

// Direction maps a direction key to its Direction. ok is false for KeyNone
// and KeyQuit.
func (k Key) Direction() (Direction, bool) {
	switch k {
	case KeyUp:
		return DirUp, true
	case KeyDown:
		return DirDown, true
	case KeyLeft:
		return DirLeft, true
	case KeyRight:
		return DirRight, true
	default:
		return 0, false
	}
}

// KeyPoller is a non-blocking single-key source. Poll returns the most
// recent unread key, or KeyNone when nothing is pending. It must never
// block; the game loop calls it exactly once per frame.
type KeyPoller interface {
	Poll() Key
}
