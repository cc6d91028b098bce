// Package core contains the shared types of the reflex platform: directions,
// keyboard abstraction, device events, and runtime configuration. It has no
// external dependencies so both the device layer and the game logic can
// depend on it freely.
package core

// DeviceEvent is an event published by the device listener. Exactly two
// variants exist: ButtonEvent for a recognized token and ErrorEvent for a
// terminal listener failure. Events are consumed once by the per-frame
// arbiter drain.
type DeviceEvent interface {
	deviceEvent()
}

// ButtonEvent is a recognized direction press from the device stream.
type ButtonEvent struct {
	Dir Direction
}

func (ButtonEvent) deviceEvent() {}

// ErrorEvent reports a device-side failure. It is informational: the game
// continues in keyboard-only mode after receiving one.
type ErrorEvent struct {
	Message string
}

func (ErrorEvent) deviceEvent() {}
