package reflex

import "github.com/vovakirdan/tui-reflex/internal/core"

// Decision is the arbiter's output for one frame: at most one action to
// judge, at most one new error message, and whether the player asked to
// quit.
type Decision struct {
	Action    core.Direction
	HasAction bool
	Err       string
	HasErr    bool
	Quit      bool
}

// Poll merges the device event channel and the keyboard into one decision.
// The channel is drained to empty without blocking: events collapse so the
// most recent button and the most recent error win. The keyboard is then
// polled exactly once, and a direction key overwrites any queued device
// button. A nil channel (keyboard-only mode) is simply skipped.
func Poll(events <-chan core.DeviceEvent, keys core.KeyPoller) Decision {
	var d Decision

drain:
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case core.ButtonEvent:
				d.Action = ev.Dir
				d.HasAction = true
			case core.ErrorEvent:
				d.Err = ev.Message
				d.HasErr = true
			}
		default:
			break drain
		}
	}

	switch key := keys.Poll(); key {
	case core.KeyQuit:
		d.Quit = true
	default:
		if dir, ok := key.Direction(); ok {
			d.Action = dir
			d.HasAction = true
		}
	}

	return d
}
