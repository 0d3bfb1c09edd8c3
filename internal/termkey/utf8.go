package termkey

// utf8Invalid is the Unicode replacement character, emitted whenever the
// simple decoder rejects malformed UTF-8.
const utf8Invalid rune = 0xFFFD

// utf8SeqLen returns the minimal UTF-8 encoding length for cp, used both
// to choose how many continuation bytes to expect and to detect overlong
// encodings (nbytes > utf8SeqLen(decoded) means overlong).
func utf8SeqLen(cp rune) int {
	switch {
	case cp < 0x80:
		return 1
	case cp < 0x800:
		return 2
	case cp < 0x10000:
		return 3
	case cp < 0x200000:
		return 4
	case cp < 0x4000000:
		return 5
	default:
		return 6
	}
}

// fillUTF8 encodes cp into key.UTF8 in canonical UTF-8, NUL-terminated,
// matching libtermkey's fill_utf8 (built backwards from the last
// continuation byte).
func fillUTF8(key *KeyEvent) {
	cp := key.Codepoint
	n := utf8SeqLen(cp)
	key.UTF8[n] = 0

	c := cp
	for b := n; b > 1; {
		b--
		key.UTF8[b] = byte(0x80 | (c & 0x3f))
		c >>= 6
	}

	switch n {
	case 1:
		key.UTF8[0] = byte(c & 0x7f)
	case 2:
		key.UTF8[0] = byte(0xc0 | (c & 0x1f))
	case 3:
		key.UTF8[0] = byte(0xe0 | (c & 0x0f))
	case 4:
		key.UTF8[0] = byte(0xf0 | (c & 0x07))
	case 5:
		key.UTF8[0] = byte(0xf8 | (c & 0x03))
	case 6:
		key.UTF8[0] = byte(0xfc | (c & 0x01))
	}
}

// emitCodepoint synthesizes a KeyEvent from a raw decoded code point,
// applying the C0/space/DEL/C1 special-casing from spec §4.2.1. Grounded
// on libtermkey's emit_codepoint.
func (d *Decoder) emitCodepoint(cp rune, key *KeyEvent) {
	switch {
	case cp < 0x20:
		entry := d.registry.c0[cp]
		key.Modifiers = 0

		if d.flags&NoInterpret == 0 && entry.sym != SymUnknown && entry.sym != SymNone {
			key.Type = TypeKeySym
			key.Sym = entry.sym
			key.Modifiers |= entry.modifierSet
			return
		}

		key.Type = TypeUnicode
		key.Codepoint = cp + 0x40
		key.Modifiers = ModCtrl

	case cp == 0x20 && d.flags&NoInterpret == 0:
		key.Type = TypeKeySym
		key.Sym = SymSpace
		key.Modifiers = 0

	case cp == 0x7f && d.flags&NoInterpret == 0:
		key.Type = TypeKeySym
		key.Sym = SymDEL
		key.Modifiers = 0

	case cp >= 0x20 && cp < 0x80:
		key.Type = TypeUnicode
		key.Codepoint = cp
		key.Modifiers = 0

	case cp >= 0x80 && cp < 0xa0:
		// UTF-8 never starts with a C1 byte, so this range is unambiguous.
		key.Type = TypeUnicode
		key.Codepoint = cp - 0x40
		key.Modifiers = ModCtrl | ModAlt

	default:
		key.Type = TypeUnicode
		key.Codepoint = cp
		key.Modifiers = 0
	}

	if key.Type == TypeUnicode {
		fillUTF8(key)
	}
}

// getKeySimple consumes one "simple" key (raw byte, C0/C1, or UTF-8
// sequence) from the head of the buffer. It is the fallback every driver
// chains to once it has determined the head is not one of its own
// escape-sequence prefixes.
func (d *Decoder) getKeySimple(key *KeyEvent) Result {
	if d.buffer.count == 0 {
		return ResultNone
	}

	b0 := d.buffer.peek(0)

	if b0 < 0xa0 {
		d.emitCodepoint(rune(b0), key)
		d.buffer.eat(1)
		return ResultKey
	}

	if d.flags&Utf8 == 0 {
		key.Type = TypeUnicode
		key.Codepoint = rune(b0)
		key.Modifiers = 0
		key.UTF8[0] = b0
		key.UTF8[1] = 0
		d.buffer.eat(1)
		return ResultKey
	}

	var nbytes int
	var cp rune

	switch {
	case b0 < 0xc0:
		// Continuation byte with no lead byte.
		d.emitCodepoint(utf8Invalid, key)
		d.buffer.eat(1)
		return ResultKey
	case b0 < 0xe0:
		nbytes, cp = 2, rune(b0&0x1f)
	case b0 < 0xf0:
		nbytes, cp = 3, rune(b0&0x0f)
	case b0 < 0xf8:
		nbytes, cp = 4, rune(b0&0x07)
	case b0 < 0xfc:
		nbytes, cp = 5, rune(b0&0x03)
	case b0 < 0xfe:
		nbytes, cp = 6, rune(b0&0x01)
	default:
		d.emitCodepoint(utf8Invalid, key)
		d.buffer.eat(1)
		return ResultKey
	}

	if d.buffer.count < nbytes {
		if d.waittime > 0 {
			return ResultAgain
		}
		return ResultNone
	}

	for i := 1; i < nbytes; i++ {
		cb := d.buffer.peek(i)
		if cb < 0x80 || cb >= 0xc0 {
			// Consume only the lead byte and any already-validated
			// continuation bytes (i of them); leave the offending byte at
			// index i in the buffer so it gets decoded as its own key on
			// the next call instead of being silently dropped.
			d.emitCodepoint(utf8Invalid, key)
			d.buffer.eat(i)
			return ResultKey
		}
		cp = cp<<6 | rune(cb&0x3f)
	}

	if nbytes > utf8SeqLen(cp) {
		cp = utf8Invalid
	}
	if (cp >= 0xd800 && cp <= 0xdfff) || cp == 0xfffe || cp == 0xffff {
		cp = utf8Invalid
	}

	d.emitCodepoint(cp, key)
	d.buffer.eat(nbytes)
	return ResultKey
}
