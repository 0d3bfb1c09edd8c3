package input

import (
	"time"

	"github.com/dshills/gokeys/internal/termkey"
)

// translate converts a decoded termkey.KeyEvent into the package's
// platform-independent Event. It is the seam between the incremental
// decoder (internal/termkey) and the normalized Key enum this package's
// consumers already depend on.
func translate(k termkey.KeyEvent) Event {
	ev := Event{
		Timestamp: time.Now(),
		Pressed:   true,
	}

	ev.Modifiers = translateModifiers(k.Modifiers)

	switch k.Type {
	case termkey.TypeUnicode:
		translateUnicode(k, &ev)
	case termkey.TypeKeySym:
		translateKeySym(k.Sym, &ev)
	case termkey.TypeFunction:
		translateFunction(k.Number, &ev)
	default:
		ev.Key = KeyUnknown
	}

	return ev
}

func translateModifiers(m termkey.Modifier) Modifier {
	var mods Modifier
	if m&termkey.ModShift != 0 {
		mods |= ModShift
	}
	if m&termkey.ModAlt != 0 {
		mods |= ModAlt
	}
	if m&termkey.ModCtrl != 0 {
		mods |= ModCtrl
	}
	return mods
}

func translateUnicode(k termkey.KeyEvent, ev *Event) {
	cp := k.Codepoint

	if k.Modifiers&termkey.ModCtrl != 0 && k.Modifiers&termkey.ModAlt == 0 && cp >= 'A' && cp <= 'Z' {
		// C0 bytes are reported with codepoint = ctrl+0x40, i.e. uppercase
		// letters; map straight to the KeyCtrl* constants.
		ev.Key = ctrlKeys[cp-'A']
		ev.Rune = rune(cp - 'A' + 'a')
		return
	}

	ev.Rune = cp

	switch {
	case cp >= 'a' && cp <= 'z':
		ev.Key = Key(int(KeyA) + int(cp-'a'))
	case cp >= 'A' && cp <= 'Z':
		ev.Key = Key(int(KeyA) + int(cp-'A'))
	case cp >= '0' && cp <= '9':
		ev.Key = Key(int(Key0) + int(cp-'0'))
	case cp == ' ':
		ev.Key = KeySpace
	default:
		ev.Key = KeyUnknown
	}
}

var ctrlKeys = [26]Key{
	KeyCtrlA, KeyCtrlB, KeyCtrlC, KeyCtrlD, KeyCtrlE, KeyCtrlF, KeyCtrlG,
	KeyCtrlH, KeyCtrlI, KeyCtrlJ, KeyCtrlK, KeyCtrlL, KeyCtrlM, KeyCtrlN,
	KeyCtrlO, KeyCtrlP, KeyCtrlQ, KeyCtrlR, KeyCtrlS, KeyCtrlT, KeyCtrlU,
	KeyCtrlV, KeyCtrlW, KeyCtrlX, KeyCtrlY, KeyCtrlZ,
}

var keysymToKey = map[termkey.Sym]Key{
	termkey.SymUp:        KeyUp,
	termkey.SymDown:      KeyDown,
	termkey.SymLeft:      KeyLeft,
	termkey.SymRight:     KeyRight,
	termkey.SymHome:      KeyHome,
	termkey.SymEnd:       KeyEnd,
	termkey.SymPageUp:    KeyPageUp,
	termkey.SymPageDown:  KeyPageDown,
	termkey.SymInsert:    KeyInsert,
	termkey.SymDelete:    KeyDelete,
	termkey.SymDEL:       KeyBackspace,
	termkey.SymBackspace: KeyBackspace,
	termkey.SymTab:       KeyTab,
	termkey.SymEnter:     KeyEnter,
	termkey.SymEscape:    KeyEscape,
	termkey.SymSpace:     KeySpace,
}

func translateKeySym(sym termkey.Sym, ev *Event) {
	if k, ok := keysymToKey[sym]; ok {
		ev.Key = k
		if k == KeySpace {
			ev.Rune = ' '
		}
		return
	}
	ev.Key = KeyUnknown
}

var functionKeys = [13]Key{
	0: KeyUnknown,
	1: KeyF1, 2: KeyF2, 3: KeyF3, 4: KeyF4,
	5: KeyF5, 6: KeyF6, 7: KeyF7, 8: KeyF8,
	9: KeyF9, 10: KeyF10, 11: KeyF11, 12: KeyF12,
}

func translateFunction(number int, ev *Event) {
	if number >= 1 && number <= 12 {
		ev.Key = functionKeys[number]
		return
	}
	ev.Key = KeyUnknown
}
