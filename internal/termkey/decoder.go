package termkey

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Flags control how a Decoder interprets raw bytes and manages the
// terminal.
type Flags int

const (
	// Raw treats input as 8-bit bytes rather than UTF-8.
	Raw Flags = 1 << iota
	// Utf8 decodes input as UTF-8.
	Utf8
	// NoInterpret suppresses C0-to-keysym mapping and Space/DEL aliasing.
	NoInterpret
	// NoTermios disables capturing/modifying termios state.
	NoTermios
)

const (
	defaultBufferSize = 256
	defaultWaitTime   = 50 * time.Millisecond
)

// Decoder is the top-level incremental key decoder: a struct owned by
// the caller, one per input stream. It is not safe for concurrent use;
// see the input package's Input (backed by inputImpl) for a
// goroutine-safe wrapper.
type Decoder struct {
	fd    int
	flags Flags

	buffer   *byteBuffer
	waittime time.Duration

	registry *registry
	driver   Driver

	closed bool

	restoreTermios    *platformTermios
	hasRestoreTermios bool
}

// Option configures a Decoder at construction time.
type Option func(*decoderConfig)

type decoderConfig struct {
	bufferSize int
	waittime   time.Duration
	terminfo   TerminfoSource
	term       string
}

// WithBufferSize overrides the default 256-byte buffer.
func WithBufferSize(n int) Option {
	return func(c *decoderConfig) { c.bufferSize = n }
}

// WithWaitTime overrides the default 50ms ambiguity timeout.
func WithWaitTime(d time.Duration) Option {
	return func(c *decoderConfig) { c.waittime = d }
}

// WithTerminfoSource injects a capability-string source for the
// terminfo driver. Without one, the terminfo driver still binds (as the
// catch-all when no CSI-family TERM matched) but recognizes no
// sequences beyond what the simple decoder already handles.
func WithTerminfoSource(source TerminfoSource) Option {
	return func(c *decoderConfig) { c.terminfo = source }
}

// WithTerm overrides $TERM for driver selection, mainly for tests.
func WithTerm(term string) Option {
	return func(c *decoderConfig) { c.term = term }
}

// New is equivalent to NewFull; unless options override them, the buffer
// is 256 bytes and the ambiguity timeout 50ms.
func New(fd int, flags Flags, opts ...Option) (*Decoder, error) {
	return NewFull(fd, flags, opts...)
}

// NewFull constructs a Decoder reading from fd. If neither Raw nor Utf8
// is set, the encoding is inferred from LANG/LC_MESSAGES/LC_ALL (UTF-8 if
// any contains "UTF-8", else Raw). Construction fails if no driver
// accepts the terminal named by $TERM (or WithTerm).
func NewFull(fd int, flags Flags, opts ...Option) (*Decoder, error) {
	cfg := decoderConfig{
		bufferSize: defaultBufferSize,
		waittime:   defaultWaitTime,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if flags&(Raw|Utf8) == 0 {
		if localeIsUTF8() {
			flags |= Utf8
		} else {
			flags |= Raw
		}
	}

	d := &Decoder{
		fd:       fd,
		flags:    flags,
		buffer:   newByteBuffer(cfg.bufferSize),
		waittime: cfg.waittime,
		registry: newRegistry(),
	}

	term := cfg.term
	if term == "" {
		term = os.Getenv("TERM")
	}

	for _, probe := range driverProbes {
		if drv := probe(term, cfg.terminfo); drv != nil {
			d.driver = drv
			break
		}
	}
	if d.driver == nil {
		return nil, fmt.Errorf("termkey: no driver matches TERM=%q", term)
	}

	if flags&NoTermios == 0 {
		if saved, err := captureTermios(fd); err == nil {
			d.restoreTermios = saved
			d.hasRestoreTermios = true
			_ = applyRawTermios(fd)
		}
	}

	return d, nil
}

// localeIsUTF8 mirrors libtermkey's LANG/LC_MESSAGES/LC_ALL sniff.
func localeIsUTF8() bool {
	for _, name := range []string{"LANG", "LC_MESSAGES", "LC_ALL"} {
		if strings.Contains(os.Getenv(name), "UTF-8") {
			return true
		}
	}
	return false
}

// Close restores termios (if captured) and releases platform resources.
// Safe to call once; repeated calls are no-ops.
func (d *Decoder) Close() error {
	if d.hasRestoreTermios {
		d.hasRestoreTermios = false
		return restoreTermios(d.fd, d.restoreTermios)
	}
	return nil
}

// WaitTime returns the configured ambiguity timeout.
func (d *Decoder) WaitTime() time.Duration {
	return d.waittime
}

// SetWaitTime updates the ambiguity timeout used by future GetKey/WaitKey
// calls.
func (d *Decoder) SetWaitTime(wt time.Duration) {
	d.waittime = wt
}

// Remaining returns the decoder's free buffer space (size - count).
func (d *Decoder) Remaining() int {
	return d.buffer.remaining()
}

// IsClosed reports whether the underlying stream has reported EOF.
func (d *Decoder) IsClosed() bool {
	return d.closed
}

// PushInput appends bytes directly to the decoder's buffer, growing it if
// necessary. This is the same path AdviseReadable uses internally, and is
// exported for tests and for embedders feeding synthetic input.
func (d *Decoder) PushInput(p []byte) {
	d.buffer.push(p)
}

// GetKey attempts a single non-blocking decode. It never resolves a lone,
// pending ESC as standalone Escape; callers wanting that must pass
// force=true (via GetKeyForce) once their own ambiguity timer fires, or
// use WaitKey, which does this automatically.
func (d *Decoder) GetKey(key *KeyEvent) Result {
	return d.driver.GetKey(d, key, false)
}

// GetKeyForce behaves like GetKey but resolves a pending lone ESC as a
// standalone Escape keypress instead of returning ResultAgain.
func (d *Decoder) GetKeyForce(key *KeyEvent) Result {
	return d.driver.GetKey(d, key, true)
}

// RegisterKeyname assigns name to sym (or allocates a fresh id if sym is
// SymNone) and returns the id used.
func (d *Decoder) RegisterKeyname(sym Sym, name string) Sym {
	return d.registry.registerKeyname(sym, name)
}

// KeyName returns the name registered for sym, or "UNKNOWN" if sym is out
// of range or the sentinel.
func (d *Decoder) KeyName(sym Sym) string {
	return d.registry.keyName(sym)
}

// RegisterC0Full maps a C0 control byte to sym with explicit modifier
// bits, optionally registering name for sym first. ctrl must be < 0x20.
func (d *Decoder) RegisterC0Full(sym Sym, modifierSet, modifierMask Modifier, ctrl byte, name string) Sym {
	return d.registry.registerC0Full(sym, modifierSet, modifierMask, ctrl, name)
}
