// Package render draws a screen.Buffer on a real terminal, either as
// a full frame or as the changes between two frames.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bdwalton/vtcons/screen"
	"github.com/bdwalton/vtcons/vt"
	"github.com/muesli/termenv"
)

var ErrUnknownProfile = errors.New("unknown colour profile")

var profileNames = map[string]termenv.Profile{
	"ascii":     termenv.Ascii,
	"ansi":      termenv.ANSI,
	"ansi256":   termenv.ANSI256,
	"truecolor": termenv.TrueColor,
}

// ParseProfile maps a profile name from configuration to a termenv
// profile. The empty string and "auto" return ok == false so the
// caller can detect one.
func ParseProfile(name string) (p termenv.Profile, ok bool, err error) {
	switch name {
	case "", "auto":
		return termenv.Ascii, false, nil
	}
	p, found := profileNames[strings.ToLower(name)]
	if !found {
		return termenv.Ascii, false, fmt.Errorf("%q: %w", name, ErrUnknownProfile)
	}
	return p, true, nil
}

// Renderer converts buffers to escape sequences for a terminal with
// the given colour profile. Buffers filled by a Terminal in 8-bit
// mode hold code page 437 values, which are decoded on the way out.
type Renderer struct {
	profile  termenv.Profile
	eightBit bool
}

func New(p termenv.Profile, eightBit bool) *Renderer {
	return &Renderer{profile: p, eightBit: eightBit}
}

// Full writes all of b: a cleared screen, every cell, the cursor and
// its visibility.
func (r *Renderer) Full(w io.Writer, b *screen.Buffer) error {
	f := r.newFrame()
	f.sb.WriteString(termenv.CSI + termenv.ResetSeq + "m")
	fmt.Fprintf(&f.sb, termenv.CSI+termenv.EraseDisplaySeq, 2)

	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Cols(); col++ {
			f.cell(b, row, col)
		}
	}
	f.finish(b, true)

	return f.flush(w)
}

// Diff writes what it takes to turn a display showing prev into one
// showing cur. Buffers of different sizes get a full redraw.
func (r *Renderer) Diff(w io.Writer, prev, cur *screen.Buffer) error {
	if prev == nil || prev.Rows() != cur.Rows() || prev.Cols() != cur.Cols() {
		return r.Full(w, cur)
	}

	f := r.newFrame()
	changed := false
	for row := 0; row < cur.Rows(); row++ {
		for col := 0; col < cur.Cols(); col++ {
			pc, _ := prev.Cell(row, col)
			cc, _ := cur.Cell(row, col)
			if pc == cc {
				continue
			}
			// A changed right half means redrawing the whole
			// glyph from its left half, unless that was just done.
			if cc.A.Format.Has(vt.FMT_CJK_RIGHT) && col > 0 {
				pl, _ := prev.Cell(row, col-1)
				if cl, _ := cur.Cell(row, col-1); pl == cl {
					f.cell(cur, row, col-1)
				}
			}
			f.cell(cur, row, col)
			changed = true
		}
	}

	cursorMoved := prev.Cursor() != cur.Cursor()
	shown := cursorVisible(prev) != cursorVisible(cur)
	if !changed && !cursorMoved && !shown {
		return nil
	}
	f.finish(cur, changed || shown)

	return f.flush(w)
}

// frame accumulates the output for one Full or Diff call, tracking
// where the host cursor is and which rendition is active so neither
// is sent twice.
type frame struct {
	r  *Renderer
	sb strings.Builder

	pen   vt.Attr
	penOK bool
	at    vt.Pos
	atOK  bool
}

func (r *Renderer) newFrame() *frame {
	return &frame{r: r}
}

func (f *frame) moveTo(p vt.Pos) {
	if f.atOK && f.at == p {
		return
	}
	fmt.Fprintf(&f.sb, termenv.CSI+termenv.CursorPositionSeq, p.Row+1, p.Col+1)
	f.at, f.atOK = p, true
}

// cell draws the cell at row, col of b. Right halves of wide glyphs
// are drawn by their left half.
func (f *frame) cell(b *screen.Buffer, row, col int) {
	c, err := b.Cell(row, col)
	if err != nil || c.A.Format.Has(vt.FMT_CJK_RIGHT) {
		return
	}

	width := 1
	if next, err := b.Cell(row, col+1); err == nil && next.A.Format.Has(vt.FMT_CJK_RIGHT) {
		width = 2
	}

	f.moveTo(vt.Pos{Row: row, Col: col})
	if a := c.A; !f.penOK || a != f.pen {
		f.sb.WriteString(f.r.sgr(a))
		f.pen, f.penOK = a, true
	}
	f.sb.WriteRune(f.r.glyph(c.R))

	f.at.Col += width
	// Past the last column the host cursor's position depends on
	// its wrap handling, so don't rely on it.
	if f.at.Col >= b.Cols() {
		f.atOK = false
	}
}

// finish resets the rendition, places the cursor and, if asked, sets
// its visibility.
func (f *frame) finish(b *screen.Buffer, visibility bool) {
	if f.penOK {
		f.sb.WriteString(termenv.CSI + termenv.ResetSeq + "m")
	}
	f.atOK = false
	f.moveTo(b.Cursor())

	if !visibility {
		return
	}
	if cursorVisible(b) {
		f.sb.WriteString(termenv.CSI + termenv.ShowCursorSeq)
	} else {
		f.sb.WriteString(termenv.CSI + termenv.HideCursorSeq)
	}
}

// cursorVisible reports whether b wants its cursor shown, which it
// does until the terminal says otherwise.
func cursorVisible(b *screen.Buffer) bool {
	v, ok := b.Param(vt.PARAM_SHOW_CURSOR)
	return !ok || v != 0
}

func (f *frame) flush(w io.Writer) error {
	if _, err := io.WriteString(w, f.sb.String()); err != nil {
		return fmt.Errorf("couldn't write frame: %w", err)
	}
	return nil
}

// sgr returns a complete SGR sequence for a, starting from a reset.
func (r *Renderer) sgr(a vt.Attr) string {
	seq := []string{termenv.ResetSeq}
	for _, fs := range []struct {
		f   vt.Format
		seq string
	}{
		{vt.FMT_BOLD, termenv.BoldSeq},
		{vt.FMT_UNDERLINE, termenv.UnderlineSeq},
		{vt.FMT_BLINK, termenv.BlinkSeq},
		{vt.FMT_REVERSE, termenv.ReverseSeq},
	} {
		if a.Format.Has(fs.f) {
			seq = append(seq, fs.seq)
		}
	}
	if s := r.color(a.FG).Sequence(false); s != "" {
		seq = append(seq, s)
	}
	if s := r.color(a.BG).Sequence(true); s != "" {
		seq = append(seq, s)
	}
	return termenv.CSI + strings.Join(seq, ";") + "m"
}

// color degrades a palette index to what the profile can show. The
// 8 colour reduction is the console's own, not termenv's nearest
// match.
func (r *Renderer) color(c vt.Color) termenv.Color {
	switch r.profile {
	case termenv.Ascii:
		return termenv.NoColor{}
	case termenv.ANSI:
		return termenv.ANSIColor(vt.Color256To8(c))
	}
	return termenv.ANSI256Color(c)
}

func (r *Renderer) glyph(c rune) rune {
	return vt.DisplayRune(r.eightBit, c)
}
