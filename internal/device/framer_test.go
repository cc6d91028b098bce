package device

import (
	"testing"

	"github.com/vovakirdan/tui-reflex/internal/core"
)

func TestFramerBasicTokens(t *testing.T) {
	f := NewFramer()

	got := f.Feed([]byte("UP\nDOWN\n"))
	want := []core.Direction{core.DirUp, core.DirDown}

	if len(got) != len(want) {
		t.Fatalf("Expected %d tokens, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Token %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestFramerPartialLineAcrossFeeds(t *testing.T) {
	f := NewFramer()

	if got := f.Feed([]byte("LE")); len(got) != 0 {
		t.Errorf("Incomplete line should yield nothing, got %v", got)
	}
	if f.Pending() != 2 {
		t.Errorf("Expected 2 pending bytes, got %d", f.Pending())
	}

	got := f.Feed([]byte("FT\nRI"))
	if len(got) != 1 || got[0] != core.DirLeft {
		t.Fatalf("Expected [LEFT], got %v", got)
	}

	got = f.Feed([]byte("GHT\n"))
	if len(got) != 1 || got[0] != core.DirRight {
		t.Fatalf("Expected [RIGHT], got %v", got)
	}
}

func TestFramerNormalization(t *testing.T) {
	f := NewFramer()

	// Lowercase, surrounding whitespace, and CR from CRLF all normalize away
	got := f.Feed([]byte("  up \r\nDown\n\tRIGHT\t\n"))
	want := []core.Direction{core.DirUp, core.DirDown, core.DirRight}

	if len(got) != len(want) {
		t.Fatalf("Expected %d tokens, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Token %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestFramerDropsUnknownLines(t *testing.T) {
	f := NewFramer()

	got := f.Feed([]byte("boot ok\nUP\nUPWARD\n\nLEFTY\nLEFT\n"))
	want := []core.Direction{core.DirUp, core.DirLeft}

	if len(got) != len(want) {
		t.Fatalf("Expected %d tokens, got %d: %v", len(want), len(got), got)
	}
	if got[0] != core.DirUp || got[1] != core.DirLeft {
		t.Errorf("Expected [UP LEFT], got %v", got)
	}
}

func TestFramerLenientDecoding(t *testing.T) {
	f := NewFramer()

	// Invalid UTF-8 is substituted, making the line unrecognized but never
	// failing the stream; the following valid token still parses.
	got := f.Feed([]byte{0xff, 0xfe, '\n', 'D', 'O', 'W', 'N', '\n'})
	if len(got) != 1 || got[0] != core.DirDown {
		t.Fatalf("Expected [DOWN] after garbage line, got %v", got)
	}
}

func TestFramerSingleBytes(t *testing.T) {
	f := NewFramer()

	var got []core.Direction
	for _, b := range []byte("UP\n") {
		got = append(got, f.Feed([]byte{b})...)
	}

	if len(got) != 1 || got[0] != core.DirUp {
		t.Fatalf("Expected [UP] from byte-at-a-time feed, got %v", got)
	}
}
