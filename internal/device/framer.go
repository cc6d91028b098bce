// Package device reads newline-delimited direction tokens from a serial
// byte source and publishes them as events for the game loop. The listener
// runs on its own goroutine; the rest of the program only ever touches the
// event channel.
package device

import (
	"bytes"
	"strings"

	"github.com/vovakirdan/tui-reflex/internal/core"
)

// Framer turns a raw byte stream into direction tokens. It buffers a
// partial trailing line across Feed calls, so bytes may arrive in chunks of
// any size. Lines that do not spell a direction are dropped silently;
// malformed UTF-8 is substituted rather than rejected. That leniency is the
// protocol: the device is free to print debug noise between tokens.
type Framer struct {
	buf []byte
}

// NewFramer creates an empty framer.
func NewFramer() *Framer {
	return &Framer{}
}

// Feed appends p to the internal buffer and returns the directions parsed
// from every line completed by this chunk, in arrival order.
func (f *Framer) Feed(p []byte) []core.Direction {
	f.buf = append(f.buf, p...)

	var out []core.Direction
	for {
		i := bytes.IndexByte(f.buf, '\n')
		if i < 0 {
			break
		}
		line := f.buf[:i]
		f.buf = f.buf[i+1:]

		text := core.NormalizeToken(strings.ToValidUTF8(string(line), "�"))
		if dir, ok := core.ParseDirection(text); ok {
			out = append(out, dir)
		}
	}
	return out
}

// Pending reports how many buffered bytes are waiting for a newline.
func (f *Framer) Pending() int {
	return len(f.buf)
}
