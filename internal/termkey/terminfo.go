package termkey

import "sort"

// TerminfoSource abstracts a terminal capability database lookup. The
// core decoder never parses terminfo itself (out of scope per spec §1's
// Non-goals); it only consumes whatever (name, bytes) pairs a source
// supplies. Production callers wire a real database (the demo binary
// uses github.com/xo/terminfo); tests use a map-backed fake.
type TerminfoSource interface {
	// Capabilities returns the key-sequence capability strings defined
	// for term, keyed by the Sym or function-key number they represent.
	// Implementations that cannot resolve term should return (nil, false).
	Capabilities(term string) (seqs []TerminfoSeq, ok bool)
}

// TerminfoSeq is one decoded entry from a terminfo database: a literal
// byte string that, if seen in full, should be reported as either a
// keysym (Sym set, Function == 0, IsFunction false) or a function key
// (IsFunction true, Function is the number).
type TerminfoSeq struct {
	Bytes      []byte
	Sym        Sym
	IsFunction bool
	Function   int
}

// terminfoDriver matches byte strings sourced from a TerminfoSource
// against the buffer head. It is tried after csiDriver, matching
// libtermkey's termkey_driver_ti.
//
// Sequences are matched longest-first so that a terminal whose Up arrow
// happens to be a prefix of some longer capability never shadows it.
type terminfoDriver struct {
	seqs []TerminfoSeq
}

// newTerminfoDriver probes source for term's capabilities. It only
// declines (returns nil) when source is non-nil and reports ok == false;
// a nil source or an empty capability set still binds a driver with no
// sequences, so construction never fails purely for lack of terminfo
// data (CSI driver covers the common case already).
func newTerminfoDriver(term string, source TerminfoSource) Driver {
	if source == nil {
		return &terminfoDriver{}
	}

	seqs, ok := source.Capabilities(term)
	if !ok {
		return nil
	}

	sorted := make([]TerminfoSeq, len(seqs))
	copy(sorted, seqs)
	sort.Slice(sorted, func(i, j int) bool {
		return len(sorted[i].Bytes) > len(sorted[j].Bytes)
	})

	return &terminfoDriver{seqs: sorted}
}

func (t *terminfoDriver) GetKey(d *Decoder, key *KeyEvent, force bool) Result {
	if d.buffer.count == 0 {
		if d.closed {
			return ResultEOF
		}
		return ResultNone
	}

	anyPrefix := false

	for _, seq := range t.seqs {
		n := len(seq.Bytes)
		if n == 0 {
			continue
		}

		matchLen := n
		if d.buffer.count < n {
			matchLen = d.buffer.count
		}

		matches := true
		for i := 0; i < matchLen; i++ {
			if d.buffer.peek(i) != seq.Bytes[i] {
				matches = false
				break
			}
		}
		if !matches {
			continue
		}

		if matchLen < n {
			// A genuine prefix of a longer known sequence: keep scanning
			// shorter candidates (one of them might be a complete, distinct
			// match), but remember we saw a prefix in case nothing else
			// matches outright.
			anyPrefix = true
			continue
		}

		if seq.IsFunction {
			key.Type = TypeFunction
			key.Number = seq.Function
			key.Modifiers = 0
		} else {
			key.Type = TypeKeySym
			key.Sym = seq.Sym
			key.Modifiers = 0
		}
		d.buffer.eat(n)
		return ResultKey
	}

	if anyPrefix && !force {
		if d.waittime > 0 {
			return ResultAgain
		}
		return ResultNone
	}

	return d.getKeySimple(key)
}
