package termkey

import "context"

// WaitKey is the blocking convenience wrapper described in spec §4.4's
// "Ambiguity resolution via waitkey": it loops GetKey/AdviseReadable, and
// when GetKey reports ResultAgain it polls the fd for up to the
// configured wait time before calling GetKeyForce. This is the only path
// by which a standalone ESC is ever emitted from a pending ambiguous
// prefix.
//
// Grounded on termkey_waitkey in the libtermkey reference. ctx, if
// non-nil and already done, makes WaitKey return immediately with
// ResultNone; otherwise cancellation is checked between poll chunks.
func (d *Decoder) WaitKey(ctx context.Context, key *KeyEvent) Result {
	var cancel <-chan struct{}
	if ctx != nil {
		cancel = ctx.Done()
	}

	for {
		switch res := d.GetKey(key); res {
		case ResultKey, ResultEOF:
			return res

		case ResultNone:
			// The buffer is empty: wait for the fd to become readable
			// before polling it, rather than spinning on EAGAIN. This
			// departs from libtermkey's termkey_waitkey (which assumes a
			// blocking fd makes the read itself the wait), since this
			// decoder puts the fd in non-blocking mode whenever it applies
			// raw termios.
			readable, cancelled := d.waitReadable(int(d.waittime.Milliseconds()), cancel)
			if cancelled {
				return ResultNone
			}
			if readable {
				d.AdviseReadable()
			}
			if d.closed {
				return ResultEOF
			}

		case ResultAgain:
			readable, cancelled := d.waitReadable(int(d.waittime.Milliseconds()), cancel)
			if cancelled {
				return ResultNone
			}
			if !readable {
				return d.GetKeyForce(key)
			}
			d.AdviseReadable()
		}
	}
}
