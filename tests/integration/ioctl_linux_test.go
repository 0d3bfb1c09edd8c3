//go:build linux

package integration_test

import "golang.org/x/sys/unix"

const (
	termiosGetReq = unix.TCGETS
	termiosSetReq = unix.TCSETS
)
