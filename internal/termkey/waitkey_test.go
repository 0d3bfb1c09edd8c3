package termkey

import (
	"context"
	"os"
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

func newPipeDecoder(t *testing.T) (*Decoder, *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() failed: %v", err)
	}
	t.Cleanup(func() { r.Close(); w.Close() })

	if err := unix.SetNonblock(int(r.Fd()), true); err != nil {
		t.Fatalf("SetNonblock() failed: %v", err)
	}

	d, err := New(int(r.Fd()), Utf8|NoTermios, WithTerm("xterm"), WithWaitTime(20*time.Millisecond))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return d, w
}

func TestAdviseReadableReadsAvailableBytes(t *testing.T) {
	d, w := newPipeDecoder(t)

	if _, err := w.Write([]byte("a")); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if res := d.AdviseReadable(); res != ResultAgain {
		t.Fatalf("AdviseReadable() = %v, want ResultAgain", res)
	}

	var key KeyEvent
	if res := d.GetKey(&key); res != ResultKey || key.Codepoint != 'a' {
		t.Fatalf("GetKey() = %v %v, want ResultKey 'a'", res, key)
	}
}

func TestAdviseReadableEAGAINIsNone(t *testing.T) {
	d, _ := newPipeDecoder(t)
	if res := d.AdviseReadable(); res != ResultNone {
		t.Fatalf("AdviseReadable() on empty pipe = %v, want ResultNone", res)
	}
}

func TestWaitKeyResolvesOnceDataArrives(t *testing.T) {
	d, w := newPipeDecoder(t)

	go func() {
		time.Sleep(10 * time.Millisecond)
		_, _ = w.Write([]byte{esc, '[', 'A'})
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	var key KeyEvent
	if res := d.WaitKey(ctx, &key); res != ResultKey {
		t.Fatalf("WaitKey() = %v, want ResultKey", res)
	}
	if key.Type != TypeKeySym || key.Sym != SymUp {
		t.Fatalf("got %v, want Up keysym", key)
	}
}

func TestWaitKeyCancelledByContext(t *testing.T) {
	d, _ := newPipeDecoder(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	var key KeyEvent
	if res := d.WaitKey(ctx, &key); res != ResultNone {
		t.Fatalf("WaitKey() with no data and a cancelled context = %v, want ResultNone", res)
	}
}

func TestWaitKeyEOFOnClosedWriteEnd(t *testing.T) {
	d, w := newPipeDecoder(t)
	w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	var key KeyEvent
	if res := d.WaitKey(ctx, &key); res != ResultEOF {
		t.Fatalf("WaitKey() after write end closed = %v, want ResultEOF", res)
	}
}
