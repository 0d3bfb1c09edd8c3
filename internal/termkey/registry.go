package termkey

// registry is the growable keysym-id-to-name table, plus the 32-entry C0
// table mapping each control byte to an optional keysym and implicit
// modifiers. Grounded on termkey_register_keyname/termkey_get_keyname and
// register_c0_full in the libtermkey reference.
type registry struct {
	names []string
	c0    [32]c0Entry
}

// c0Entry describes how a single C0 control byte (0x00-0x1F) maps to a
// keysym, and which modifier bits that mapping implies.
type c0Entry struct {
	sym          Sym
	modifierSet  Modifier
	modifierMask Modifier
}

const initialRegistryCapacity = 64

func newRegistry() *registry {
	r := &registry{names: make([]string, initialRegistryCapacity)}
	for i := range r.c0 {
		r.c0[i].sym = SymNone
	}

	// SymNone is id 0 by reservation, not by auto-allocation: set it
	// directly rather than through registerKeyname, whose sym==SymNone
	// branch means "allocate me a fresh id" for every other caller.
	r.names[SymNone] = preregisteredNames[SymNone]
	for sym := SymNone + 1; int(sym) < len(preregisteredNames); sym++ {
		r.registerKeyname(sym, preregisteredNames[sym])
	}

	r.registerC0(SymBackspace, 0x08)
	r.registerC0(SymTab, 0x09)
	r.registerC0(SymEnter, 0x0d)
	r.registerC0(SymEscape, 0x1b)

	return r
}

// registerKeyname assigns name to sym, allocating a fresh id when sym is
// SymNone (0). Growing the backing slice fills the new holes with "".
func (r *registry) registerKeyname(sym Sym, name string) Sym {
	if sym == SymNone {
		sym = Sym(len(r.names))
	}

	if int(sym) >= len(r.names) {
		grown := make([]string, sym+1)
		copy(grown, r.names)
		r.names = grown
	}

	r.names[sym] = name
	return sym
}

// keyName returns the name registered for sym, or "UNKNOWN" if sym is the
// sentinel or out of range.
func (r *registry) keyName(sym Sym) string {
	if sym == SymUnknown {
		return "UNKNOWN"
	}
	if sym < 0 || int(sym) >= len(r.names) {
		return "UNKNOWN"
	}
	if r.names[sym] == "" {
		return "UNKNOWN"
	}
	return r.names[sym]
}

// registerC0 maps ctrl (a C0 control byte) to sym with no implied
// modifiers beyond what the caller applies. It is a convenience over
// registerC0Full matching libtermkey's register_c0.
func (r *registry) registerC0(sym Sym, ctrl byte) Sym {
	return r.registerC0Full(sym, 0, 0, ctrl, "")
}

// registerC0Full maps ctrl to sym, with modifierSet/modifierMask recorded
// alongside it, optionally registering name for sym first. ctrl must be
// less than 0x20; callers passing an out-of-range ctrl get SymUnknown
// back and no mapping is recorded.
func (r *registry) registerC0Full(sym Sym, modifierSet, modifierMask Modifier, ctrl byte, name string) Sym {
	if ctrl >= 0x20 {
		return SymUnknown
	}

	if name != "" {
		sym = r.registerKeyname(sym, name)
	}

	r.c0[ctrl] = c0Entry{sym: sym, modifierSet: modifierSet, modifierMask: modifierMask}
	return sym
}
