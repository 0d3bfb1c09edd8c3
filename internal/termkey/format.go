package termkey

import (
	"fmt"
	"strings"
)

// FormatFlags controls KeyEvent rendering in FormatKey.
type FormatFlags int

const (
	// LongMod spells out "Shift-/Ctrl-/Alt-/Meta-" instead of "S-/C-/A-/M-".
	LongMod FormatFlags = 1 << iota
	// CaretCtrl renders Ctrl-@..Ctrl-_ as "^X".
	CaretCtrl
	// AltIsMeta uses "M-"/"Meta-" instead of "A-"/"Alt-" for the Alt modifier.
	AltIsMeta
	// WrapBracket wraps non-Unicode or modified keys in "<...>".
	WrapBracket
)

// FormatKey renders key for display. It is a thin helper outside the
// core decoder (spec §6), grounded verbatim on termkey_snprint_key:
// rendering order is [wrap<] [^] [Alt|Meta] [Ctrl] [Shift] body [wrap>].
func FormatKey(d *Decoder, key KeyEvent, format FormatFlags) string {
	var b strings.Builder

	wrap := format&WrapBracket != 0 && (key.Type != TypeUnicode || key.Modifiers != 0)
	if wrap {
		b.WriteByte('<')
	}

	caret := false
	if format&CaretCtrl != 0 &&
		key.Type == TypeUnicode &&
		key.Modifiers == ModCtrl &&
		key.Codepoint >= '@' && key.Codepoint <= '_' {
		b.WriteByte('^')
		caret = true
	}

	if !caret {
		longMod := format&LongMod != 0
		if key.Modifiers&ModAlt != 0 {
			altIsMeta := format&AltIsMeta != 0
			switch {
			case longMod && altIsMeta:
				b.WriteString("Meta-")
			case longMod:
				b.WriteString("Alt-")
			case altIsMeta:
				b.WriteString("M-")
			default:
				b.WriteString("A-")
			}
		}
		if key.Modifiers&ModCtrl != 0 {
			if longMod {
				b.WriteString("Ctrl-")
			} else {
				b.WriteString("C-")
			}
		}
		if key.Modifiers&ModShift != 0 {
			if longMod {
				b.WriteString("Shift-")
			} else {
				b.WriteString("S-")
			}
		}
	}

	switch key.Type {
	case TypeUnicode:
		n := 0
		for n < len(key.UTF8) && key.UTF8[n] != 0 {
			n++
		}
		b.Write(key.UTF8[:n])
	case TypeKeySym:
		if d != nil {
			b.WriteString(d.KeyName(key.Sym))
		} else {
			b.WriteString("UNKNOWN")
		}
	case TypeFunction:
		fmt.Fprintf(&b, "F%d", key.Number)
	}

	if wrap {
		b.WriteByte('>')
	}

	return b.String()
}
