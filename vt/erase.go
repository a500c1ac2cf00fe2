package vt

// insertChars is ICH: shift the rest of the line right by n and blank
// the gap.
func (t *Terminal) insertChars(n int) {
	row, col, cols := t.cur.Row, t.cur.Col, t.winsize.Col

	blank := Rect{Begin: t.cur, End: Pos{Row: row + 1, Col: cols}}
	if col+n < cols {
		t.e.Copy(Rect{Begin: t.cur, End: Pos{Row: row + 1, Col: cols - n}}, Pos{Row: row, Col: col + n})
		blank.End.Col = col + n
	}
	t.e.Fill(blank, BLANK, t.curAttr)
}

// deleteChars is DCH: shift the rest of the line left by n and blank
// the end of the line.
func (t *Terminal) deleteChars(n int) {
	row, col, cols := t.cur.Row, t.cur.Col, t.winsize.Col

	blank := Rect{Begin: t.cur, End: Pos{Row: row + 1, Col: cols}}
	if col+n < cols {
		t.e.Copy(Rect{Begin: Pos{Row: row, Col: col + n}, End: Pos{Row: row + 1, Col: cols}}, t.cur)
		blank.Begin.Col = cols - n
	}
	t.e.Fill(blank, BLANK, t.curAttr)
}

// eraseChars is ECH: blank n cells from the cursor without moving
// anything.
func (t *Terminal) eraseChars(n int) {
	end := Pos{Row: t.cur.Row + 1, Col: min(t.cur.Col+n, t.winsize.Col)}
	t.e.Fill(Rect{Begin: t.cur, End: end}, BLANK, t.curAttr)
}

// eraseDisplay is ED. Modes other than to-start and all erase to the
// end.
func (t *Terminal) eraseDisplay(mode int) {
	rows, cols := t.winsize.Row, t.winsize.Col

	switch mode {
	case ERASE_TO_START:
		if t.cur.Row > 0 {
			t.e.Fill(Rect{End: Pos{Row: t.cur.Row, Col: cols}}, BLANK, t.curAttr)
		}
		t.e.Fill(Rect{Begin: Pos{Row: t.cur.Row}, End: Pos{Row: t.cur.Row + 1, Col: t.cur.Col + 1}}, BLANK, t.curAttr)
	case ERASE_ALL:
		t.e.Fill(t.window(), BLANK, t.curAttr)
	default:
		if t.cur.Row+1 < rows {
			t.e.Fill(Rect{Begin: Pos{Row: t.cur.Row + 1}, End: Pos{Row: rows, Col: cols}}, BLANK, t.curAttr)
		}
		t.e.Fill(Rect{Begin: t.cur, End: Pos{Row: t.cur.Row + 1, Col: cols}}, BLANK, t.curAttr)
	}
}

// eraseLine is EL.
func (t *Terminal) eraseLine(mode int) {
	r := Rect{Begin: Pos{Row: t.cur.Row}, End: Pos{Row: t.cur.Row + 1, Col: t.winsize.Col}}

	switch mode {
	case ERASE_TO_START:
		r.End.Col = t.cur.Col + 1
	case ERASE_ALL:
	default:
		r.Begin.Col = t.cur.Col
	}
	t.e.Fill(r, BLANK, t.curAttr)
}

// newpage is FF. Outside cons25 it is a line feed; cons25 clears the
// origin region and homes the cursor.
func (t *Terminal) newpage() {
	if !t.mode.has(MODE_CONS25) {
		t.newline()
		return
	}

	r := Rect{Begin: Pos{Row: t.originReg.begin}, End: Pos{Row: t.originReg.end, Col: t.winsize.Col}}
	t.e.Fill(r, BLANK, t.curAttr)
	t.cur = Pos{Row: t.originReg.begin}
	t.flags.set(FLAG_WRAPPED, false)
}
