//go:build darwin || freebsd || netbsd || openbsd

package integration_test

import "golang.org/x/sys/unix"

const (
	termiosGetReq = unix.TIOCGETA
	termiosSetReq = unix.TIOCSETA
)
