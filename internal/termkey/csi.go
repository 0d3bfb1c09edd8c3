package termkey

// csiDriver recognizes ESC [ ... final (and its single-byte C1 form,
// 0x9B), plus the SS3 family ESC O <letter>. It owns the ESC-ambiguity
// resolution described in spec §4.4: every Decoder always has a driver
// bound, and the CSI driver is probed first, so in practice it is the
// driver that decides between a standalone Escape and the start of a
// longer sequence.
//
// Grounded on libtermkey's termkey_driver_csi and generalized, per
// spec §4.3's REDESIGN note, to decode the trailing ";<mods>" xterm
// modifier parameter that the teacher's fixed-literal trie
// (input/parser.go's SequenceNode) did not support.
type csiDriver struct{}

const (
	esc  = 0x1b
	csi1 = 0x9b // single-byte C1 CSI introducer
)

// csiTermPrefixes lists the TERM families known to speak the CSI/SS3
// dialect this driver implements. Anything else falls through to the
// terminfo driver, per spec §6: "CSI accepts most vt-family names;
// terminfo consults the capability database".
var csiTermPrefixes = []string{
	"vt100", "vt102", "vt220", "vt320", "vt400", "vt420",
	"xterm", "screen", "tmux", "rxvt", "linux", "cygwin",
	"konsole", "gnome", "alacritty", "kitty", "st", "putty",
	"ansi",
}

// newCSIDriver accepts terms matching a known vt-family prefix, or an
// empty term (so tests that leave TERM unset still get a working
// driver). Everything else declines, deferring to the terminfo driver.
func newCSIDriver(term string, _ TerminfoSource) Driver {
	if term == "" {
		return &csiDriver{}
	}
	for _, prefix := range csiTermPrefixes {
		if hasPrefixFold(term, prefix) {
			return &csiDriver{}
		}
	}
	return nil
}

func hasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		a, b := s[i], prefix[i]
		if 'A' <= a && a <= 'Z' {
			a += 'a' - 'A'
		}
		if 'A' <= b && b <= 'Z' {
			b += 'a' - 'A'
		}
		if a != b {
			return false
		}
	}
	return true
}

func (c *csiDriver) GetKey(d *Decoder, key *KeyEvent, force bool) Result {
	if d.buffer.count == 0 {
		if d.closed {
			return ResultEOF
		}
		return ResultNone
	}

	b0 := d.buffer.peek(0)

	if b0 == csi1 {
		return c.parseCSIBody(d, key, 1)
	}

	if b0 != esc {
		return d.getKeySimple(key)
	}

	// Lone ESC: the only place spec's ambiguity timeout applies.
	if d.buffer.count == 1 {
		if !force {
			if d.waittime > 0 {
				return ResultAgain
			}
			return ResultNone
		}
		d.emitCodepoint(rune(esc), key)
		d.buffer.eat(1)
		return ResultKey
	}

	b1 := d.buffer.peek(1)
	switch b1 {
	case '[':
		return c.parseCSIBody(d, key, 2)
	case 'O':
		return c.parseSS3(d, key)
	default:
		return c.fallbackEscape(d, key)
	}
}

// fallbackEscape implements spec §4.4/§4.7's unknown-prefix rule: emit a
// standalone Escape and consume only the ESC byte, leaving the rest of
// the buffer to re-enter decoding on the next call.
func (c *csiDriver) fallbackEscape(d *Decoder, key *KeyEvent) Result {
	d.emitCodepoint(rune(esc), key)
	d.buffer.eat(1)
	return ResultKey
}

// parseSS3 parses ESC O <letter> (introLen is always 2 bytes of prefix).
func (c *csiDriver) parseSS3(d *Decoder, key *KeyEvent) Result {
	if d.buffer.count < 3 {
		if d.waittime > 0 {
			return ResultAgain
		}
		return ResultNone
	}

	final := d.buffer.peek(2)
	sym, ok := ss3Syms[final]
	if !ok {
		if num, ok := ss3Functions[final]; ok {
			key.Type = TypeFunction
			key.Number = num
			key.Modifiers = 0
			d.buffer.eat(3)
			return ResultKey
		}
		return c.fallbackEscape(d, key)
	}

	key.Type = TypeKeySym
	key.Sym = sym
	key.Modifiers = 0
	d.buffer.eat(3)
	return ResultKey
}

var ss3Syms = map[byte]Sym{
	'A': SymUp,
	'B': SymDown,
	'C': SymRight,
	'D': SymLeft,
	'H': SymHome,
	'F': SymEnd,
	'E': SymBegin,
}

var ss3Functions = map[byte]int{
	'P': 1,
	'Q': 2,
	'R': 3,
	'S': 4,
}

// parseCSIBody scans a CSI sequence body starting at offset introLen
// (which already accounts for the introducer: 1 byte for 0x9B, 2 for
// "ESC ["), collecting ECMA-48 parameter bytes (0x30-0x3F), intermediate
// bytes (0x20-0x2F), and a single final byte (0x40-0x7E).
func (c *csiDriver) parseCSIBody(d *Decoder, key *KeyEvent, introLen int) Result {
	i := introLen
	for {
		if i >= d.buffer.count {
			if d.waittime > 0 {
				return ResultAgain
			}
			return ResultNone
		}
		b := d.buffer.peek(i)
		if b >= 0x30 && b <= 0x3f {
			i++
			continue
		}
		break
	}

	paramsEnd := i
	for {
		if i >= d.buffer.count {
			if d.waittime > 0 {
				return ResultAgain
			}
			return ResultNone
		}
		b := d.buffer.peek(i)
		if b >= 0x20 && b <= 0x2f {
			i++
			continue
		}
		break
	}

	if i >= d.buffer.count {
		if d.waittime > 0 {
			return ResultAgain
		}
		return ResultNone
	}

	final := d.buffer.peek(i)
	if final < 0x40 || final > 0x7e {
		// Not a valid CSI final byte: this wasn't really a CSI sequence.
		if introLen == 1 {
			// Bare C1 byte with garbage after it: treat the C1 byte itself
			// as a simple key and reprocess the rest.
			d.emitCodepoint(rune(csi1), key)
			d.buffer.eat(1)
			return ResultKey
		}
		return c.fallbackEscape(d, key)
	}

	params := parseCSIParams(d.buffer, introLen, paramsEnd)
	total := i + 1

	if ok := c.resolve(params, final, key); !ok {
		if introLen == 1 {
			d.emitCodepoint(rune(csi1), key)
			d.buffer.eat(1)
			return ResultKey
		}
		return c.fallbackEscape(d, key)
	}

	d.buffer.eat(total)
	return ResultKey
}

// parseCSIParams splits the numeric parameter bytes in
// [start, end) on ';' into integers; empty fields parse as 0 (xterm's
// "omitted" convention).
func parseCSIParams(b *byteBuffer, start, end int) []int {
	var params []int
	cur := 0
	have := false
	for i := start; i < end; i++ {
		c := b.peek(i)
		switch {
		case c >= '0' && c <= '9':
			cur = cur*10 + int(c-'0')
			have = true
		case c == ';':
			params = append(params, cur)
			cur = 0
			have = false
		}
	}
	if have || len(params) > 0 {
		params = append(params, cur)
	}
	return params
}

// csiModifier decodes xterm's modifier parameter convention: the encoded
// value is (1 + bitmask), where bit0=Shift, bit1=Alt, bit2=Ctrl.
func csiModifier(raw int) Modifier {
	if raw <= 0 {
		return 0
	}
	bits := raw - 1
	var m Modifier
	if bits&1 != 0 {
		m |= ModShift
	}
	if bits&2 != 0 {
		m |= ModAlt
	}
	if bits&4 != 0 {
		m |= ModCtrl
	}
	return m
}

var csiFinalSyms = map[byte]Sym{
	'A': SymUp,
	'B': SymDown,
	'C': SymRight,
	'D': SymLeft,
	'H': SymHome,
	'F': SymEnd,
	'E': SymBegin,
}

// csiTildeSyms maps the leading numeric parameter of a "CSI n ~"
// sequence to a keysym.
var csiTildeSyms = map[int]Sym{
	1: SymHome,
	2: SymInsert,
	3: SymDelete,
	4: SymEnd,
	5: SymPageUp,
	6: SymPageDown,
	7: SymHome,
	8: SymEnd,
}

// csiTildeFunctions maps the leading numeric parameter of a "CSI n ~"
// sequence to a function-key number.
var csiTildeFunctions = map[int]int{
	11: 1,
	12: 2,
	13: 3,
	14: 4,
	15: 5,
	17: 6,
	18: 7,
	19: 8,
	20: 9,
	21: 10,
	23: 11,
	24: 12,
}

// resolve maps (params, final) to a KeyEvent, returning false when the
// combination is not a sequence this driver recognizes.
func (c *csiDriver) resolve(params []int, final byte, key *KeyEvent) bool {
	switch final {
	case '~':
		if len(params) == 0 {
			return false
		}
		n := params[0]
		mod := Modifier(0)
		if len(params) > 1 {
			mod = csiModifier(params[1])
		}
		if sym, ok := csiTildeSyms[n]; ok {
			key.Type = TypeKeySym
			key.Sym = sym
			key.Modifiers = mod
			return true
		}
		if num, ok := csiTildeFunctions[n]; ok {
			key.Type = TypeFunction
			key.Number = num
			key.Modifiers = mod
			return true
		}
		return false

	default:
		sym, ok := csiFinalSyms[final]
		if !ok {
			return false
		}
		mod := Modifier(0)
		if len(params) > 1 {
			mod = csiModifier(params[1])
		}
		key.Type = TypeKeySym
		key.Sym = sym
		key.Modifiers = mod
		return true
	}
}
