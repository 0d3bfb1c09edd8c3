package termkey

// Driver recognizes a family of multi-byte escape sequences at the head
// of a Decoder's buffer. Two concrete drivers are provided: csiDriver
// (CSI/SS3 sequences) and terminfoDriver (capability strings sourced from
// a terminal database). Drivers are probed in a fixed order at
// construction time; the first to accept the terminal name is bound for
// the lifetime of the Decoder.
//
// Re-architected from libtermkey's function-pointer struct into a Go
// interface per spec §9's design note: drivers own their parsing state,
// the Decoder owns the byte buffer and calls into the driver by
// reference.
type Driver interface {
	// GetKey attempts to parse a key from the buffer head. force
	// indicates pending ambiguity (a lone ESC) should be resolved now
	// rather than waiting for more bytes.
	GetKey(d *Decoder, key *KeyEvent, force bool) Result
}

// newDriverFunc probes whether a driver handles term, given an optional
// terminfo source (nil is acceptable; terminfoDriver then binds with no
// sequences and decodes only simple keys). It returns nil when the driver
// declines.
type newDriverFunc func(term string, source TerminfoSource) Driver

// driverProbes lists the probe order: CSI first, then terminfo, matching
// libtermkey's drivers[] = {&termkey_driver_csi, &termkey_driver_ti, NULL}.
var driverProbes = []newDriverFunc{
	newCSIDriver,
	newTerminfoDriver,
}
