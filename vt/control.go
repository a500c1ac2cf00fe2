package vt

// controlFor reports whether r is a control unit executed ahead of
// the parser, whatever state the parser is in. Under cons25, SO and
// SI are ordinary input.
func controlFor(m Mode, r rune) bool {
	switch r {
	case NUL, BEL, BS, LF, VT, FF, CR, TAB:
		return true
	case SO, SI:
		return !m.has(MODE_CONS25)
	}
	return false
}

// execute performs the control unit r. The parser is left alone so a
// sequence in progress carries on afterwards.
func (t *Terminal) execute(r rune) {
	switch r {
	case NUL:
	case BEL:
		t.e.Bell()
	case BS:
		t.backspace()
	case LF, VT:
		t.newline()
	case FF:
		t.newpage()
	case CR:
		t.carriageReturn()
	case TAB:
		t.tabForward(1)
	case SO:
		t.cs.shiftOut()
	case SI:
		t.cs.shiftIn()
	}
}
