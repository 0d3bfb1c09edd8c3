//go:build !windows

package termkey

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// platformTermios is the captured prior tty mode, restored on Close.
// Grounded on input/backend_unix.go's use of unix.Termios via
// IoctlGetTermios/IoctlSetTermios.
type platformTermios = unix.Termios

// captureTermios saves the current termios for fd so it can be restored
// later. It is only called when the NoTermios flag is clear.
func captureTermios(fd int) (*platformTermios, error) {
	state, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, fmt.Errorf("termkey: tcgetattr: %w", err)
	}
	return state, nil
}

// applyRawTermios clears the input/local flags spec §5 requires:
// IXON|INLCR|ICRNL from Iflag, ICANON|ECHO|ISIG from Lflag. It also
// enables non-blocking reads on fd so AdviseReadable never blocks.
func applyRawTermios(fd int) error {
	state, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return fmt.Errorf("termkey: tcgetattr: %w", err)
	}

	state.Iflag &^= unix.IXON | unix.INLCR | unix.ICRNL
	state.Lflag &^= unix.ICANON | unix.ECHO | unix.ISIG

	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, state); err != nil {
		return fmt.Errorf("termkey: tcsetattr: %w", err)
	}

	return unix.SetNonblock(fd, true)
}

// restoreTermios restores exactly the captured struct.
func restoreTermios(fd int, saved *platformTermios) error {
	if saved == nil {
		return nil
	}
	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, saved); err != nil {
		return fmt.Errorf("termkey: tcsetattr restore: %w", err)
	}
	return nil
}
