package input

import (
	"fmt"

	"github.com/dshills/gokeys/internal/termkey"
)

// Decode parses a single complete key from data and returns its
// normalized Event. It is a synchronous convenience over the streaming
// decoder, for callers (and tests) that already have a whole sequence in
// hand rather than a live file descriptor. An incomplete or empty
// sequence returns an error rather than Event{}, so callers can't mistake
// "nothing decoded" for a literal KeyUnknown press.
func Decode(data []byte) (Event, error) {
	dec, err := termkey.New(-1, termkey.Utf8|termkey.NoTermios, termkey.WithTerm("xterm"))
	if err != nil {
		return Event{}, fmt.Errorf("failed to construct decoder: %w", err)
	}

	dec.PushInput(data)

	var key termkey.KeyEvent
	// Force resolves a lone, ambiguous ESC immediately rather than
	// waiting out the ambiguity timeout, since this call has no more
	// bytes coming.
	switch dec.GetKeyForce(&key) {
	case termkey.ResultKey:
		return translate(key), nil
	case termkey.ResultAgain:
		return Event{}, fmt.Errorf("incomplete sequence: % x", data)
	default:
		return Event{}, fmt.Errorf("empty sequence")
	}
}
