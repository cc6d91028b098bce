package device

import (
	"fmt"
	"time"

	"go.bug.st/serial"
)

// DefaultBaudRate matches the reaction pad firmware.
const DefaultBaudRate = 115200

// DefaultReadTimeout keeps serial reads short so the listener notices the
// stop signal within one read interval.
const DefaultReadTimeout = 50 * time.Millisecond

// SerialOpener returns an OpenFunc for a serial port at the given baud
// rate. The read timeout makes Read return (0, nil) when the device is
// quiet instead of blocking indefinitely.
func SerialOpener(port string, baud int, readTimeout time.Duration) OpenFunc {
	if baud <= 0 {
		baud = DefaultBaudRate
	}
	if readTimeout <= 0 {
		readTimeout = DefaultReadTimeout
	}

	return func() (Source, error) {
		p, err := serial.Open(port, &serial.Mode{BaudRate: baud})
		if err != nil {
			return nil, fmt.Errorf("device: open %s: %w", port, err)
		}
		if err := p.SetReadTimeout(readTimeout); err != nil {
			p.Close()
			return nil, fmt.Errorf("device: set read timeout on %s: %w", port, err)
		}
		return p, nil
	}
}
