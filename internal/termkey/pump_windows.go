//go:build windows

package termkey

// AdviseReadable is not yet implemented on Windows; Decoder.PushInput
// remains available for embedders supplying their own console-event
// bridge. Mirrors input/backend_windows.go's stubbed state.
func (d *Decoder) AdviseReadable() Result {
	d.closed = true
	return ResultNone
}

func (d *Decoder) waitReadable(timeoutMillis int, cancel <-chan struct{}) (readable bool, cancelled bool) {
	select {
	case <-cancel:
		return false, true
	default:
		return false, false
	}
}
