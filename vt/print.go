package vt

import (
	"github.com/mattn/go-runewidth"
)

// Glyph widths are the narrow ones whatever the locale says about East
// Asian ambiguous characters.
var widths = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// printRune writes a printable unit at the cursor and advances it,
// wrapping first if the previous glyph filled the last column and
// autowrap is on.
func (t *Terminal) printRune(r rune) {
	var width int
	if t.mode.has(MODE_8BIT) {
		// Without cons25 the low controls have no glyph.
		if !t.mode.has(MODE_CONS25) && (r <= ESC || r == DEL) {
			return
		}
		r = t.cs.process(t.mode, r)
		width = 1
	} else {
		r = t.cs.process(t.mode, r)
		width = widths.RuneWidth(r)
		if width <= 0 {
			// Combining and other zero width glyphs aren't
			// supported.
			return
		}
	}

	lastCol := t.winsize.Col - 1
	if t.cur.Col == lastCol && t.flags.has(FLAG_WRAPPED) && t.flags.has(FLAG_AUTOWRAP) {
		var p Pos
		switch {
		case t.cur.Row == t.scrollReg.end-1:
			t.scroll(1)
			p.Row = t.scrollReg.end - 1
		case t.cur.Row == t.winsize.Row-1:
			// Bottom of the screen, below the scroll region:
			// the same row starts over.
			p.Row = t.cur.Row
		default:
			p.Row = t.cur.Row + 1
		}

		t.putGlyph(p, r, width)
		t.cur = Pos{Row: p.Row, Col: min(width, lastCol)}
		t.flags.set(FLAG_WRAPPED, width > lastCol)
		return
	}

	t.putGlyph(t.cur, r, width)
	if t.cur.Col+width > lastCol {
		t.cur.Col = lastCol
		t.flags.set(FLAG_WRAPPED, true)
	} else {
		t.cur.Col += width
		t.flags.set(FLAG_WRAPPED, false)
	}
}

// putGlyph emits r at p, making room first in insert mode. A double
// width glyph also fills the cell to its right, marked FMT_CJK_RIGHT,
// when there is one.
func (t *Terminal) putGlyph(p Pos, r rune, width int) {
	cols := t.winsize.Col
	if t.flags.has(FLAG_INSERT) && p.Col < cols-width {
		t.e.Copy(Rect{Begin: p, End: Pos{Row: p.Row + 1, Col: cols - width}}, Pos{Row: p.Row, Col: p.Col + width})
	}

	t.e.PutChar(p, r, t.curAttr)

	if width == 2 && p.Col+1 < cols {
		a := t.curAttr
		a.Format |= FMT_CJK_RIGHT
		t.e.PutChar(Pos{Row: p.Row, Col: p.Col + 1}, r, a)
	}
}

// repeatLast is REP. The count is limited to one screenful.
func (t *Terminal) repeatLast(n int) {
	if t.last == 0 {
		return
	}
	n = min(n, t.winsize.Row*t.winsize.Col)
	for ; n > 0; n-- {
		t.printRune(t.last)
	}
}
