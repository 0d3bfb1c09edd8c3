package termkey

import "testing"

func newTestDecoder(t *testing.T, flags Flags) *Decoder {
	t.Helper()
	d, err := New(-1, flags|NoTermios, WithTerm("xterm"))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return d
}

func TestGetKeySimpleASCII(t *testing.T) {
	d := newTestDecoder(t, Utf8)
	d.PushInput([]byte("a"))

	var key KeyEvent
	if res := d.GetKey(&key); res != ResultKey {
		t.Fatalf("GetKey() = %v, want ResultKey", res)
	}
	if key.Type != TypeUnicode || key.Codepoint != 'a' {
		t.Fatalf("got %v, want Unicode 'a'", key)
	}
}

func TestGetKeySimpleMultiByteUTF8(t *testing.T) {
	tests := []struct {
		name string
		seq  []byte
		want rune
	}{
		{"two-byte", []byte{0xc3, 0xa9}, 0x00e9},
		{"three-byte", []byte{0xe6, 0x97, 0xa5}, 0x65e5},
		{"four-byte", []byte{0xf0, 0x9f, 0x98, 0x80}, 0x1f600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDecoder(t, Utf8)
			d.PushInput(tt.seq)

			var key KeyEvent
			if res := d.GetKeyForce(&key); res != ResultKey {
				t.Fatalf("GetKeyForce() = %v, want ResultKey", res)
			}
			if key.Codepoint != tt.want {
				t.Fatalf("Codepoint = %U, want %U", key.Codepoint, tt.want)
			}
		})
	}
}

func TestGetKeySimpleIncompleteUTF8WaitsForMoreBytes(t *testing.T) {
	d := newTestDecoder(t, Utf8)
	d.PushInput([]byte{0xe6, 0x97}) // first two of a three-byte sequence

	var key KeyEvent
	if res := d.GetKey(&key); res != ResultAgain {
		t.Fatalf("GetKey() = %v, want ResultAgain", res)
	}

	d.PushInput([]byte{0xa5})
	if res := d.GetKey(&key); res != ResultKey {
		t.Fatalf("GetKey() after completing sequence = %v, want ResultKey", res)
	}
	if key.Codepoint != 0x65e5 {
		t.Fatalf("Codepoint = %U, want U+65E5", key.Codepoint)
	}
}

func TestGetKeySimpleRejectsOverlongEncoding(t *testing.T) {
	d := newTestDecoder(t, Utf8)
	// 0xC0 0x80 is an overlong two-byte encoding of NUL.
	d.PushInput([]byte{0xc0, 0x80})

	var key KeyEvent
	if res := d.GetKeyForce(&key); res != ResultKey {
		t.Fatalf("GetKeyForce() = %v, want ResultKey", res)
	}
	if key.Codepoint != utf8Invalid {
		t.Fatalf("Codepoint = %U, want replacement character", key.Codepoint)
	}
}

func TestGetKeySimpleRejectsSurrogate(t *testing.T) {
	d := newTestDecoder(t, Utf8)
	// ED A0 80 encodes U+D800, a lone surrogate, invalid in UTF-8.
	d.PushInput([]byte{0xed, 0xa0, 0x80})

	var key KeyEvent
	if res := d.GetKeyForce(&key); res != ResultKey {
		t.Fatalf("GetKeyForce() = %v, want ResultKey", res)
	}
	if key.Codepoint != utf8Invalid {
		t.Fatalf("Codepoint = %U, want replacement character", key.Codepoint)
	}
}

func TestGetKeySimpleResyncsAtBadContinuationByte(t *testing.T) {
	d := newTestDecoder(t, Utf8)
	// A two-byte lead followed by an ASCII byte instead of a continuation.
	d.PushInput([]byte{0xc3, 'x'})

	var key KeyEvent
	if res := d.GetKeyForce(&key); res != ResultKey {
		t.Fatalf("GetKeyForce() = %v, want ResultKey", res)
	}
	if key.Codepoint != utf8Invalid {
		t.Fatalf("Codepoint = %U, want replacement character", key.Codepoint)
	}
	// Only the lead byte should have been consumed, leaving 'x' for redecoding.
	if d.Remaining() != d.buffer.size()-1 {
		t.Fatalf("Remaining() = %d, want buffer with 1 byte left ('x')", d.Remaining())
	}

	if res := d.GetKey(&key); res != ResultKey {
		t.Fatalf("GetKey() on resync = %v, want ResultKey", res)
	}
	if key.Codepoint != 'x' {
		t.Fatalf("Codepoint = %U, want 'x'", key.Codepoint)
	}
}

func TestEmitCodepointC0Ctrl(t *testing.T) {
	d := newTestDecoder(t, Utf8)
	d.PushInput([]byte{0x03}) // Ctrl-C

	var key KeyEvent
	if res := d.GetKey(&key); res != ResultKey {
		t.Fatalf("GetKey() = %v, want ResultKey", res)
	}
	if key.Type != TypeUnicode || key.Codepoint != 'C' || key.Modifiers != ModCtrl {
		t.Fatalf("got %v, want Unicode 'C' with ModCtrl", key)
	}
}

func TestEmitCodepointRegisteredC0BecomesKeysym(t *testing.T) {
	d := newTestDecoder(t, Utf8)
	d.PushInput([]byte{0x09}) // Tab

	var key KeyEvent
	if res := d.GetKey(&key); res != ResultKey {
		t.Fatalf("GetKey() = %v, want ResultKey", res)
	}
	if key.Type != TypeKeySym || key.Sym != SymTab {
		t.Fatalf("got %v, want Tab keysym", key)
	}
}

func TestEmitCodepointSpaceAndDEL(t *testing.T) {
	d := newTestDecoder(t, Utf8)
	d.PushInput([]byte{0x20, 0x7f})

	var key KeyEvent
	if res := d.GetKey(&key); res != ResultKey || key.Sym != SymSpace {
		t.Fatalf("space: got %v result %v, want Space keysym", key, res)
	}
	if res := d.GetKey(&key); res != ResultKey || key.Sym != SymDEL {
		t.Fatalf("DEL: got %v result %v, want DEL keysym", key, res)
	}
}
