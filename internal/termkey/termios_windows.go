//go:build windows

package termkey

import "errors"

// platformTermios is unused on Windows; console mode capture is not yet
// implemented, matching input/backend_windows.go's stubbed state.
type platformTermios struct{}

func captureTermios(fd int) (*platformTermios, error) {
	return nil, errors.New("termkey: console mode capture not implemented on windows")
}

func applyRawTermios(fd int) error {
	return errors.New("termkey: raw mode not implemented on windows")
}

func restoreTermios(fd int, saved *platformTermios) error {
	return nil
}
