package device

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-reflex/internal/core"
)

// fakeSource replays scripted chunks, then keeps returning finalErr (or
// empty reads when finalErr is nil). Only the listener goroutine touches
// it, mirroring real source ownership.
type fakeSource struct {
	chunks   [][]byte
	finalErr error
	closed   bool
}

func (f *fakeSource) Read(p []byte) (int, error) {
	if len(f.chunks) == 0 {
		if f.finalErr != nil {
			return 0, f.finalErr
		}
		return 0, nil
	}

	c := f.chunks[0]
	n := copy(p, c)
	if n < len(c) {
		f.chunks[0] = c[n:]
	} else {
		f.chunks = f.chunks[1:]
	}
	return n, nil
}

func (f *fakeSource) Close() error {
	f.closed = true
	return nil
}

// fastConfig keeps tests snappy.
func fastConfig() ListenerConfig {
	return ListenerConfig{IdleSleep: time.Millisecond}
}

func nextEvent(t *testing.T, l *Listener) core.DeviceEvent {
	t.Helper()
	select {
	case ev := <-l.Events():
		return ev
	case <-time.After(time.Second):
		t.Fatal("Timed out waiting for event")
		return nil
	}
}

func TestListenerOpenFailure(t *testing.T) {
	open := func() (Source, error) {
		return nil, errors.New("no such port")
	}

	l := Start(open, fastConfig())

	ev := nextEvent(t, l)
	errEv, ok := ev.(core.ErrorEvent)
	if !ok {
		t.Fatalf("Expected ErrorEvent, got %T", ev)
	}
	if errEv.Message == "" {
		t.Error("Error event should carry a message")
	}

	// The goroutine must already be gone without Stop being called first
	if !l.Stop(time.Second) {
		t.Error("Listener did not exit after open failure")
	}
	if len(l.Events()) != 0 {
		t.Errorf("Expected no further events, %d queued", len(l.Events()))
	}
}

func TestListenerPublishesTokensInOrder(t *testing.T) {
	src := &fakeSource{
		chunks: [][]byte{
			[]byte("UP\nDO"),
			[]byte("WN\n"),
			[]byte("noise\nLEFT\n"),
		},
	}
	l := Start(func() (Source, error) { return src, nil }, fastConfig())
	defer l.Stop(time.Second)

	want := []core.Direction{core.DirUp, core.DirDown, core.DirLeft}
	for i, dir := range want {
		ev := nextEvent(t, l)
		btn, ok := ev.(core.ButtonEvent)
		if !ok {
			t.Fatalf("Event %d: expected ButtonEvent, got %T", i, ev)
		}
		if btn.Dir != dir {
			t.Errorf("Event %d: expected %v, got %v", i, dir, btn.Dir)
		}
	}
}

func TestListenerReadFailure(t *testing.T) {
	src := &fakeSource{
		chunks:   [][]byte{[]byte("RIGHT\n")},
		finalErr: errors.New("device unplugged"),
	}
	l := Start(func() (Source, error) { return src, nil }, fastConfig())

	ev := nextEvent(t, l)
	if btn, ok := ev.(core.ButtonEvent); !ok || btn.Dir != core.DirRight {
		t.Fatalf("Expected Button(RIGHT) first, got %#v", ev)
	}

	ev = nextEvent(t, l)
	if _, ok := ev.(core.ErrorEvent); !ok {
		t.Fatalf("Expected ErrorEvent after read failure, got %T", ev)
	}

	if !l.Stop(time.Second) {
		t.Error("Listener did not exit after read failure")
	}
	if !src.closed {
		t.Error("Source was not closed on the error path")
	}
}

func TestListenerStopWhileIdle(t *testing.T) {
	src := &fakeSource{} // Endless empty reads
	l := Start(func() (Source, error) { return src, nil }, fastConfig())

	// Give the goroutine a moment to enter its idle loop
	time.Sleep(5 * time.Millisecond)

	if !l.Stop(time.Second) {
		t.Fatal("Listener did not observe stop signal while idle")
	}
	if !src.closed {
		t.Error("Source was not closed on shutdown")
	}
}

func TestListenerStopIsIdempotent(t *testing.T) {
	l := Start(func() (Source, error) { return &fakeSource{}, nil }, fastConfig())

	if !l.Stop(time.Second) {
		t.Fatal("First Stop failed")
	}
	if !l.Stop(time.Second) {
		t.Fatal("Second Stop should also report a finished listener")
	}
}
