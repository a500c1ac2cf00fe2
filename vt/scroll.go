package vt

// BLANK is what erased and scrolled-in cells are filled with.
const BLANK = ' '

// scroll moves the contents of the scroll region up by n lines (down
// for negative n) and blanks the lines that are exposed. Content is
// moved with a Copy and cleared with a Fill; nothing is kept here.
func (t *Terminal) scroll(n int) {
	if n == 0 {
		return
	}

	sr := t.scrollReg
	cols := t.winsize.Col

	if n > 0 {
		exposed := Rect{Begin: Pos{Row: sr.begin}, End: Pos{Row: sr.end, Col: cols}}
		if sr.begin+n < sr.end {
			t.e.Copy(Rect{Begin: Pos{Row: sr.begin + n}, End: Pos{Row: sr.end, Col: cols}}, Pos{Row: sr.begin})
			exposed.Begin.Row = sr.end - n
		}
		t.e.Fill(exposed, BLANK, t.curAttr)
		return
	}

	n = -n
	exposed := Rect{Begin: Pos{Row: sr.begin}, End: Pos{Row: sr.end, Col: cols}}
	if sr.begin+n < sr.end {
		t.e.Copy(Rect{Begin: Pos{Row: sr.begin}, End: Pos{Row: sr.end - n, Col: cols}}, Pos{Row: sr.begin + n})
		exposed.End.Row = sr.begin + n
	}
	t.e.Fill(exposed, BLANK, t.curAttr)
}

// newline is LF, VT and (outside cons25) FF: move down a row,
// scrolling when leaving the bottom of the scroll region.
func (t *Terminal) newline() {
	t.index()
}

// index is IND.
func (t *Terminal) index() {
	switch {
	case t.cur.Row == t.scrollReg.end-1:
		t.scroll(1)
	case t.cur.Row < t.originReg.end-1:
		t.cur.Row++
	}
	t.flags.set(FLAG_WRAPPED, false)
}

// reverseIndex is RI: move up a row, scrolling down when leaving the
// top of the scroll region.
func (t *Terminal) reverseIndex() {
	switch {
	case t.cur.Row == t.scrollReg.begin:
		t.scroll(-1)
	case t.cur.Row > t.originReg.begin:
		t.cur.Row--
	}
	t.flags.set(FLAG_WRAPPED, false)
}

// insertLines is IL. Lines from the cursor down to the end of the
// scroll region move down by n; nothing happens outside the region.
func (t *Terminal) insertLines(n int) {
	if !t.scrollReg.contains(t.cur.Row) {
		return
	}

	cols := t.winsize.Col
	blank := Rect{Begin: Pos{Row: t.cur.Row}, End: Pos{Row: t.scrollReg.end, Col: cols}}
	if t.cur.Row+n < t.scrollReg.end {
		t.e.Copy(Rect{Begin: Pos{Row: t.cur.Row}, End: Pos{Row: t.scrollReg.end - n, Col: cols}}, Pos{Row: t.cur.Row + n})
		blank.End.Row = t.cur.Row + n
	}
	t.e.Fill(blank, BLANK, t.curAttr)
}

// deleteLines is DL, the reverse of insertLines.
func (t *Terminal) deleteLines(n int) {
	if !t.scrollReg.contains(t.cur.Row) {
		return
	}

	cols := t.winsize.Col
	blank := Rect{Begin: Pos{Row: t.cur.Row}, End: Pos{Row: t.scrollReg.end, Col: cols}}
	if t.cur.Row+n < t.scrollReg.end {
		t.e.Copy(Rect{Begin: Pos{Row: t.cur.Row + n}, End: Pos{Row: t.scrollReg.end, Col: cols}}, Pos{Row: t.cur.Row})
		blank.Begin.Row = t.scrollReg.end - n
	}
	t.e.Fill(blank, BLANK, t.curAttr)
}
