//go:build !windows
// +build !windows

package input

import (
	"context"
	"io"
	"os"

	"github.com/dshills/gokeys/internal/termkey"
)

// unixBackend implements the Backend interface for Unix-like systems,
// delegating raw mode and escape-sequence decoding to internal/termkey.
type unixBackend struct {
	fd          int
	dec         *termkey.Decoder
	initialized bool
}

// newBackend creates a new platform-specific backend.
// On Unix systems, this returns a Unix backend.
func newBackend() Backend {
	return &unixBackend{fd: int(os.Stdin.Fd())}
}

// Init initializes the backend by constructing a Decoder against stdin,
// which captures the current terminal state and enters raw mode as a
// side effect of construction.
// Idempotent: calling multiple times is safe and does nothing after first call.
func (b *unixBackend) Init() error {
	if b.initialized {
		return nil
	}

	dec, err := termkey.New(b.fd, termkey.Utf8)
	if err != nil {
		return err
	}

	b.dec = dec
	b.initialized = true
	return nil
}

// Restore restores the original terminal state.
// This should be called when shutting down to return the terminal
// to its normal operating mode.
func (b *unixBackend) Restore() error {
	if b.dec == nil {
		return nil
	}
	return b.dec.Close()
}

// ReadEvent reads a single event from the terminal. It blocks until a
// full key resolves, waiting out the decoder's ambiguity timeout for any
// sequence prefix that stalls partway through.
func (b *unixBackend) ReadEvent() (Event, error) {
	var key termkey.KeyEvent
	switch b.dec.WaitKey(context.Background(), &key) {
	case termkey.ResultKey:
		return translate(key), nil
	case termkey.ResultEOF:
		return Event{}, io.EOF
	default:
		return Event{Key: KeyUnknown}, nil
	}
}
