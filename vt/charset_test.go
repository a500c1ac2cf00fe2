package vt

import "testing"

func TestCharsetProcess(t *testing.T) {
	cases := []struct {
		mode Mode
		g0   charsetID
		in   rune
		want rune
	}{
		{0, CS_US_ASCII, 'q', 'q'},
		{0, CS_US_ASCII, '#', '#'},
		{0, CS_UK_NATIONAL, '#', '£'},
		{0, CS_UK_NATIONAL, 'q', 'q'},
		{0, CS_SPECIAL_GRAPHICS, 'q', '─'},
		{0, CS_SPECIAL_GRAPHICS, '`', '◆'},
		{0, CS_SPECIAL_GRAPHICS, 'A', 'A'},
		{MODE_8BIT, CS_UK_NATIONAL, '#', 0x9c},
		{MODE_8BIT, CS_SPECIAL_GRAPHICS, 'q', 0xc4},
		{MODE_8BIT, CS_SPECIAL_GRAPHICS, 'l', 0xda},
		{MODE_8BIT, CS_SPECIAL_GRAPHICS, '~', 0xfa},
		// no code page 437 equivalent
		{MODE_8BIT, CS_SPECIAL_GRAPHICS, 'b', 'b'},
		{MODE_8BIT, CS_SPECIAL_GRAPHICS, '`', '`'},
	}

	for i, c := range cases {
		var cs charset
		cs.designate(0, c.g0)
		if got := cs.process(c.mode, c.in); got != c.want {
			t.Errorf("%d: Got %q (%#x), wanted %q (%#x)", i, got, got, c.want, c.want)
		}
	}
}

func TestCharsetShift(t *testing.T) {
	var cs charset
	cs.designate(1, CS_SPECIAL_GRAPHICS)
	if got := cs.process(0, 'x'); got != 'x' {
		t.Errorf("Got %q from G0, wanted 'x'", got)
	}

	cs.shiftOut()
	if got := cs.process(0, 'x'); got != '│' {
		t.Errorf("Got %q from G1, wanted '│'", got)
	}

	other := cs
	if !cs.equal(&other) {
		t.Errorf("Copies aren't equal")
	}

	cs.shiftIn()
	if cs.equal(&other) {
		t.Errorf("Shift in didn't change the active set")
	}
	cs.reset()
	if cs != (charset{}) {
		t.Errorf("Got %v after reset", cs)
	}
}
