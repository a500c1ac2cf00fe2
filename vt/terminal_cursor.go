package vt

// Cursor movement. Counts arrive already defaulted (0 means 1 where
// the sequence says so) and positions arrive 1 based. Every move
// leaves the cursor inside the window and the origin region, and
// cancels a pending wrap.

func (t *Terminal) cursorUp(n int) {
	// Inside the scroll region the top margin stops us; above it,
	// the top of the origin region does.
	top := t.originReg.begin
	if t.cur.Row >= t.scrollReg.begin {
		top = max(top, t.scrollReg.begin)
	}

	if t.cur.Row-n <= top {
		t.cur.Row = top
	} else {
		t.cur.Row -= n
	}
	t.flags.set(FLAG_WRAPPED, false)
}

func (t *Terminal) cursorDown(n int) {
	bottom := t.originReg.end
	if t.cur.Row < t.scrollReg.end {
		bottom = min(bottom, t.scrollReg.end)
	}

	if t.cur.Row+n >= bottom {
		t.cur.Row = bottom - 1
	} else {
		t.cur.Row += n
	}
	t.flags.set(FLAG_WRAPPED, false)
}

func (t *Terminal) cursorForward(n int) {
	if t.cur.Col+n >= t.winsize.Col {
		t.cur.Col = t.winsize.Col - 1
	} else {
		t.cur.Col += n
	}
	t.flags.set(FLAG_WRAPPED, false)
}

func (t *Terminal) cursorBackward(n int) {
	if n >= t.cur.Col {
		t.cur.Col = 0
	} else {
		t.cur.Col -= n
	}
	t.flags.set(FLAG_WRAPPED, false)
}

// cursorPosition is CUP/HVP. row is relative to the origin region.
func (t *Terminal) cursorPosition(row, col int) {
	t.verticalPosition(row)
	t.horizontalPosition(col)
}

func (t *Terminal) horizontalPosition(col int) {
	t.cur.Col = clampCol(col-1, t.winsize.Col)
	t.flags.set(FLAG_WRAPPED, false)
}

func (t *Terminal) verticalPosition(row int) {
	t.cur.Row = t.originReg.clamp(t.originReg.begin + row - 1)
	t.flags.set(FLAG_WRAPPED, false)
}

func (t *Terminal) carriageReturn() {
	t.cur.Col = 0
	t.flags.set(FLAG_WRAPPED, false)
}

// backspace moves left one column. The cons25 profile moves to the
// end of the previous line from column 0, stopping at the top of the
// origin region.
func (t *Terminal) backspace() {
	if t.mode.has(MODE_CONS25) {
		if t.cur.Col == 0 {
			if t.cur.Row == t.originReg.begin {
				return
			}
			t.cur.Row--
			t.cur.Col = t.winsize.Col - 1
		} else {
			t.cur.Col--
		}
		return
	}

	if t.cur.Col == 0 {
		return
	}
	t.cur.Col--
	t.flags.set(FLAG_WRAPPED, false)
}

// tabForward moves to the n'th next tab stop, or the last column.
func (t *Terminal) tabForward(n int) {
	for n > 0 && t.cur.Col < t.winsize.Col-1 {
		t.cur.Col++
		if t.tabs.isSet(t.cur.Col) {
			n--
		}
	}
}

// tabBackward moves to the n'th previous tab stop, or column 0.
func (t *Terminal) tabBackward(n int) {
	for n > 0 && t.cur.Col > 0 {
		t.cur.Col--
		if t.tabs.isSet(t.cur.Col) {
			n--
		}
	}
	t.flags.set(FLAG_WRAPPED, false)
}

// saveCursor is DECSC: position, attribute and character sets are
// saved together.
func (t *Terminal) saveCursor() {
	t.savedCur = t.cur
	t.savedAttr = t.curAttr
	t.savedCS = t.cs
}

// restoreCursor is DECRC. The margins may have changed since the save,
// so the row is clamped into the origin region.
func (t *Terminal) restoreCursor() {
	t.cur = Pos{Row: t.originReg.clamp(t.savedCur.Row), Col: t.savedCur.Col}
	t.curAttr = t.savedAttr
	t.cs = t.savedCS
	t.flags.set(FLAG_WRAPPED, false)
}

// setMargins is DECSTBM. Arguments are 1 based and inclusive; 0 or
// out of range for bottom means the last row. A region of fewer than
// two rows resets to the full window. The cursor goes home.
func (t *Terminal) setMargins(top, bottom int) {
	if top > 0 {
		top--
	}
	if bottom == 0 || bottom > t.winsize.Row {
		bottom = t.winsize.Row
	}
	if top >= bottom-1 {
		top = 0
		bottom = t.winsize.Row
	}

	t.scrollReg = newRegion(top, bottom)
	if t.flags.has(FLAG_ORIGIN) {
		t.originReg = t.scrollReg
	}
	t.cur = Pos{Row: t.originReg.begin}
	t.flags.set(FLAG_WRAPPED, false)
}
