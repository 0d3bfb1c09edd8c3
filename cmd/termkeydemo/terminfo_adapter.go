package main

import (
	"github.com/xo/terminfo"

	"github.com/dshills/gokeys/internal/termkey"
)

// xoTerminfoSource adapts github.com/xo/terminfo's capability database to
// internal/termkey.TerminfoSource, keeping the core decoder free of any
// terminfo-parsing dependency (that database lookup is explicitly out of
// the decoder's own scope; only this adapter, compiled into the demo
// binary, knows how to read it).
type xoTerminfoSource struct{}

// keysymCaps maps the string capabilities this adapter recognizes to
// the keysym they represent, covering the cursor-key cluster the CSI
// driver also understands natively (so a terminfo-only terminal isn't
// worse off for movement keys than an xterm-family one).
var keysymCaps = map[terminfo.StringCapName]termkey.Sym{
	terminfo.KeyUp:        termkey.SymUp,
	terminfo.KeyDown:      termkey.SymDown,
	terminfo.KeyLeft:      termkey.SymLeft,
	terminfo.KeyRight:     termkey.SymRight,
	terminfo.KeyHome:      termkey.SymHome,
	terminfo.KeyEnd:       termkey.SymEnd,
	terminfo.KeyIC:        termkey.SymInsert,
	terminfo.KeyDC:        termkey.SymDelete,
	terminfo.KeyNPage:     termkey.SymPageDown,
	terminfo.KeyPPage:     termkey.SymPageUp,
	terminfo.KeyBackspace: termkey.SymBackspace,
}

// functionCaps maps F1-F12 string capabilities to their function number.
var functionCaps = map[terminfo.StringCapName]int{
	terminfo.KeyF1: 1, terminfo.KeyF2: 2, terminfo.KeyF3: 3, terminfo.KeyF4: 4,
	terminfo.KeyF5: 5, terminfo.KeyF6: 6, terminfo.KeyF7: 7, terminfo.KeyF8: 8,
	terminfo.KeyF9: 9, terminfo.KeyF10: 10, terminfo.KeyF11: 11, terminfo.KeyF12: 12,
}

// Capabilities loads term's terminfo entry and translates every
// recognized key-sequence capability into a termkey.TerminfoSeq.
func (xoTerminfoSource) Capabilities(term string) ([]termkey.TerminfoSeq, bool) {
	ti, err := terminfo.Load(term)
	if err != nil {
		return nil, false
	}

	var seqs []termkey.TerminfoSeq
	for cap, sym := range keysymCaps {
		if s := ti.GetString(cap); s != "" {
			seqs = append(seqs, termkey.TerminfoSeq{Bytes: []byte(s), Sym: sym})
		}
	}
	for cap, num := range functionCaps {
		if s := ti.GetString(cap); s != "" {
			seqs = append(seqs, termkey.TerminfoSeq{Bytes: []byte(s), IsFunction: true, Function: num})
		}
	}

	return seqs, true
}
