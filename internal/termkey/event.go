// Package termkey decodes a raw terminal byte stream into structured key
// events. It implements the incremental state machine at the heart of
// gokeys: UTF-8/C0 decoding, a pluggable escape-sequence driver chain, and
// an ambiguity timeout for disambiguating a lone Escape from the start of
// a longer sequence.
package termkey

import "fmt"

// Type tags the payload carried by a KeyEvent.
type Type int

const (
	// TypeUnicode carries a decoded Unicode code point.
	TypeUnicode Type = iota
	// TypeKeySym carries a named key symbol id (see Sym).
	TypeKeySym
	// TypeFunction carries a function-key number (F1, F2, ...).
	TypeFunction
)

// String returns the name of the event type.
func (t Type) String() string {
	switch t {
	case TypeUnicode:
		return "Unicode"
	case TypeKeySym:
		return "KeySym"
	case TypeFunction:
		return "Function"
	default:
		return "Unknown"
	}
}

// Modifier is a bitset of chord modifiers.
type Modifier int

const (
	// ModShift indicates the Shift key was held.
	ModShift Modifier = 1 << iota
	// ModAlt indicates Alt/Meta was held.
	ModAlt
	// ModCtrl indicates Control was held.
	ModCtrl
)

// String renders the modifier set as e.g. "Ctrl+Alt".
func (m Modifier) String() string {
	if m == 0 {
		return "None"
	}
	s := ""
	if m&ModShift != 0 {
		s += "+Shift"
	}
	if m&ModAlt != 0 {
		s += "+Alt"
	}
	if m&ModCtrl != 0 {
		s += "+Ctrl"
	}
	return s[1:]
}

// Sym is a registered key-symbol id, an index into a Decoder's keyname
// registry. SymNone (0) is reserved; SymUnknown is a sentinel that always
// renders as "UNKNOWN" regardless of registry contents.
type Sym int

// SymUnknown is returned by lookups that cannot resolve a name, and is
// never a valid registered id.
const SymUnknown Sym = -1

// Pre-registered key symbols, in the order the Decoder registers them at
// construction. The numeric values are part of the registry's bookkeeping
// only; callers should treat Sym as opaque and use Decoder.KeyName to
// render it.
const (
	SymNone Sym = iota
	SymBackspace
	SymTab
	SymEnter
	SymEscape
	SymSpace
	SymDEL
	SymUp
	SymDown
	SymLeft
	SymRight
	SymBegin
	SymFind
	SymInsert
	SymDelete
	SymSelect
	SymPageUp
	SymPageDown
	SymHome
	SymEnd
	SymKP0
	SymKP1
	SymKP2
	SymKP3
	SymKP4
	SymKP5
	SymKP6
	SymKP7
	SymKP8
	SymKP9
	SymKPEnter
	SymKPPlus
	SymKPMinus
	SymKPMult
	SymKPDiv
	SymKPComma
	SymKPPeriod
	SymKPEquals

	numPreregisteredSyms
)

var preregisteredNames = [numPreregisteredSyms]string{
	SymNone:      "NONE",
	SymBackspace: "Backspace",
	SymTab:       "Tab",
	SymEnter:     "Enter",
	SymEscape:    "Escape",
	SymSpace:     "Space",
	SymDEL:       "DEL",
	SymUp:        "Up",
	SymDown:      "Down",
	SymLeft:      "Left",
	SymRight:     "Right",
	SymBegin:     "Begin",
	SymFind:      "Find",
	SymInsert:    "Insert",
	SymDelete:    "Delete",
	SymSelect:    "Select",
	SymPageUp:    "PageUp",
	SymPageDown:  "PageDown",
	SymHome:      "Home",
	SymEnd:       "End",
	SymKP0:       "KP0",
	SymKP1:       "KP1",
	SymKP2:       "KP2",
	SymKP3:       "KP3",
	SymKP4:       "KP4",
	SymKP5:       "KP5",
	SymKP6:       "KP6",
	SymKP7:       "KP7",
	SymKP8:       "KP8",
	SymKP9:       "KP9",
	SymKPEnter:   "KPEnter",
	SymKPPlus:    "KPPlus",
	SymKPMinus:   "KPMinus",
	SymKPMult:    "KPMult",
	SymKPDiv:     "KPDiv",
	SymKPComma:   "KPComma",
	SymKPPeriod:  "KPPeriod",
	SymKPEquals:  "KPEquals",
}

// KeyEvent is a single decoded key, tagged by Type.
type KeyEvent struct {
	Type Type

	// Codepoint is valid when Type == TypeUnicode.
	Codepoint rune
	// UTF8 is a NUL-terminated UTF-8 rendering of Codepoint, valid when
	// Type == TypeUnicode. At most 6 encoded bytes plus the terminator.
	UTF8 [7]byte

	// Sym is valid when Type == TypeKeySym.
	Sym Sym

	// Number is valid when Type == TypeFunction (the function-key number,
	// e.g. 1 for F1).
	Number int

	Modifiers Modifier
}

// String renders the event for debugging; use FormatKey for a
// display-quality rendering.
func (k KeyEvent) String() string {
	switch k.Type {
	case TypeUnicode:
		return fmt.Sprintf("Unicode(%U mods=%s)", k.Codepoint, k.Modifiers)
	case TypeKeySym:
		return fmt.Sprintf("KeySym(%d mods=%s)", k.Sym, k.Modifiers)
	case TypeFunction:
		return fmt.Sprintf("F%d(mods=%s)", k.Number, k.Modifiers)
	default:
		return "Invalid"
	}
}

// Result is the outcome of a single decode attempt.
type Result int

const (
	// ResultNone means nothing parseable was found and no partial match
	// is pending.
	ResultNone Result = iota
	// ResultKey means a key was fully decoded and the buffer advanced.
	ResultKey
	// ResultAgain means a prefix match exists but more bytes are needed;
	// the buffer is unchanged.
	ResultAgain
	// ResultEOF means the input is closed and the buffer is empty.
	ResultEOF
)

// String names the result.
func (r Result) String() string {
	switch r {
	case ResultNone:
		return "None"
	case ResultKey:
		return "Key"
	case ResultAgain:
		return "Again"
	case ResultEOF:
		return "EOF"
	default:
		return "Invalid"
	}
}
