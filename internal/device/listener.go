package device

import (
	"fmt"
	"io"
	"time"

	"github.com/vovakirdan/tui-reflex/internal/core"
)

// Source is a readable device handle. Reads are expected to return promptly
// (non-blocking or short timeout) with n == 0 when no bytes are available.
type Source = io.ReadCloser

// OpenFunc opens the device source. Called once, on the listener goroutine;
// an open failure is reported as a single ErrorEvent and ends the listener.
type OpenFunc func() (Source, error)

// ListenerConfig tunes the read loop. Zero values fall back to defaults.
type ListenerConfig struct {
	ChunkSize int           // Bytes per read attempt (default 32)
	IdleSleep time.Duration // Pause after an empty read (default 10ms)
	Buffer    int           // Event channel capacity (default 64)
}

func (c ListenerConfig) withDefaults() ListenerConfig {
	if c.ChunkSize <= 0 {
		c.ChunkSize = 32
	}
	if c.IdleSleep <= 0 {
		c.IdleSleep = 10 * time.Millisecond
	}
	if c.Buffer <= 0 {
		c.Buffer = 64
	}
	return c
}

// Listener owns a background goroutine that reads the device stream and
// publishes ButtonEvents and ErrorEvents in FIFO order. It never retries:
// both open failure and read failure publish one ErrorEvent and end the
// goroutine, leaving the game in keyboard-only mode.
type Listener struct {
	events chan core.DeviceEvent
	stop   chan struct{}
	done   chan struct{}
}

// Start opens the source via open and begins reading. The returned
// Listener is live immediately; consume Events() from the frame loop.
func Start(open OpenFunc, cfg ListenerConfig) *Listener {
	cfg = cfg.withDefaults()
	l := &Listener{
		events: make(chan core.DeviceEvent, cfg.Buffer),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go l.run(open, cfg)
	return l
}

// Events returns the listener's event channel. The channel is never closed;
// after the listener exits it simply goes quiet.
func (l *Listener) Events() <-chan core.DeviceEvent {
	return l.events
}

// Stop signals the goroutine to exit and waits up to timeout for it.
// Returns false if the goroutine did not exit in time; the process may
// still terminate, the goroutine holds nothing but the source handle.
func (l *Listener) Stop(timeout time.Duration) bool {
	select {
	case <-l.stop:
	default:
		close(l.stop)
	}

	select {
	case <-l.done:
		return true
	case <-time.After(timeout):
		return false
	}
}

func (l *Listener) run(open OpenFunc, cfg ListenerConfig) {
	defer close(l.done)

	src, err := open()
	if err != nil {
		l.publish(core.ErrorEvent{Message: fmt.Sprintf("failed to open device: %v", err)})
		return
	}
	defer src.Close()

	framer := NewFramer()
	buf := make([]byte, cfg.ChunkSize)

	for {
		select {
		case <-l.stop:
			return
		default:
		}

		n, err := src.Read(buf)
		if n > 0 {
			for _, dir := range framer.Feed(buf[:n]) {
				if !l.publish(core.ButtonEvent{Dir: dir}) {
					return
				}
			}
		}
		if err != nil {
			if err != io.EOF {
				l.publish(core.ErrorEvent{Message: fmt.Sprintf("device read error: %v", err)})
			} else {
				l.publish(core.ErrorEvent{Message: "device stream closed"})
			}
			return
		}
		if n == 0 {
			select {
			case <-l.stop:
				return
			case <-time.After(cfg.IdleSleep):
			}
		}
	}
}

// publish delivers an event without ever wedging the goroutine: the send
// races against the stop signal. With a drained channel the send is
// immediate; a stopped consumer aborts the listener instead.
func (l *Listener) publish(ev core.DeviceEvent) bool {
	select {
	case l.events <- ev:
		return true
	case <-l.stop:
		return false
	}
}
