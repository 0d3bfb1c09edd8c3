//go:build !windows

package termkey

import (
	"golang.org/x/sys/unix"
)

// adviseReadBufPool supplies the scratch buffer AdviseReadable reads
// into, keeping the hot polling path allocation-free. Grounded on
// input/backend_unix.go's readBufferPool and sized like libtermkey's
// advisereadable, which reads into a 64-byte stack buffer smaller than
// the default decoder buffer.
var adviseReadBufPool = newBytePool(64)

// AdviseReadable performs one non-blocking read from the file descriptor
// and appends any bytes read to the buffer. It never blocks: EAGAIN
// yields ResultNone, and any other read error (including a 0-byte read)
// sets IsClosed and yields ResultNone, matching libtermkey's
// termkey_advisereadable.
func (d *Decoder) AdviseReadable() Result {
	buf := adviseReadBufPool.get()
	defer adviseReadBufPool.put(buf)

	n, err := unix.Read(d.fd, buf)
	if err == unix.EAGAIN || err == unix.EWOULDBLOCK {
		return ResultNone
	}
	if err != nil || n < 1 {
		d.closed = true
		return ResultNone
	}

	d.buffer.push(buf[:n])
	return ResultAgain
}

// waitReadable blocks for up to timeout for the fd to become readable,
// unless ctx is cancelled first. It returns true if the fd is readable,
// false on timeout.
func (d *Decoder) waitReadable(timeoutMillis int, cancel <-chan struct{}) (readable bool, cancelled bool) {
	const pollChunk = 20 // ms; bounds how often we notice cancellation

	remaining := timeoutMillis
	for {
		select {
		case <-cancel:
			return false, true
		default:
		}

		wait := remaining
		if cancel != nil && (wait < 0 || wait > pollChunk) {
			wait = pollChunk
		}

		fds := []unix.PollFd{{Fd: int32(d.fd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, wait)
		if err != nil && err != unix.EINTR {
			return false, false
		}
		if n > 0 {
			return true, false
		}

		if remaining >= 0 {
			remaining -= wait
			if remaining <= 0 {
				return false, false
			}
		}
	}
}
