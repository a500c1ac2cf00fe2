// Package console is a vt.Emitter that draws straight onto a
// tcell.Screen.
package console

import (
	"log/slog"
	"sync"

	"github.com/bdwalton/vtcons/vt"
	"github.com/gdamore/tcell/v2"
)

var _ vt.Emitter = (*Console)(nil)

// Console forwards terminal output to a tcell.Screen. The screen is
// shared with whatever runs its event loop, so every access goes
// through mu.
type Console struct {
	mu       sync.Mutex
	screen   tcell.Screen
	eightBit bool

	cursor     vt.Pos
	hideCursor bool
	params     map[vt.Param]int

	// OnRespond, if set, receives a copy of every reply the
	// terminal generates.
	OnRespond func([]byte)
}

// New wraps an initialised screen. eightBit says the terminal feeding
// it runs in 8-bit mode, so runes are code page 437 values.
func New(s tcell.Screen, eightBit bool) *Console {
	return &Console{
		screen:   s,
		eightBit: eightBit,
		params:   make(map[vt.Param]int),
	}
}

// Size returns the screen dimensions as rows and columns.
func (c *Console) Size() (rows, cols int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cols, rows = c.screen.Size()
	return rows, cols
}

// Show pushes everything drawn so far to the display.
func (c *Console) Show() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.screen.Show()
}

// Sync redraws the whole display, after a resize for example.
func (c *Console) Sync() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.screen.Sync()
}

// Param returns the last value set for p.
func (c *Console) Param(p vt.Param) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.params[p]
	return v, ok
}

func (c *Console) Bell() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.screen.Beep(); err != nil {
		slog.Debug("couldn't ring bell", "err", err)
	}
}

func (c *Console) MoveCursor(p vt.Pos) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cursor = p
	c.placeCursor()
}

func (c *Console) placeCursor() {
	if c.hideCursor {
		c.screen.HideCursor()
		return
	}
	c.screen.ShowCursor(c.cursor.Col, c.cursor.Row)
}

func (c *Console) PutChar(p vt.Pos, r rune, a vt.Attr) {
	// tcell lays out both halves of a wide glyph from the left one.
	if a.Format.Has(vt.FMT_CJK_RIGHT) {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.screen.SetContent(p.Col, p.Row, c.glyph(r), nil, Style(a))
}

func (c *Console) Fill(r vt.Rect, ch rune, a vt.Attr) {
	c.mu.Lock()
	defer c.mu.Unlock()

	g, st := c.glyph(ch), Style(a)
	for row := r.Begin.Row; row < r.End.Row; row++ {
		for col := r.Begin.Col; col < r.End.Col; col++ {
			c.screen.SetContent(col, row, g, nil, st)
		}
	}
}

type cell struct {
	r  rune
	st tcell.Style
}

// Copy reads the whole source rectangle before writing any of it, so
// overlapping moves are safe.
func (c *Console) Copy(r vt.Rect, dst vt.Pos) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cells := make([]cell, 0, r.Rows()*r.Cols())
	for row := r.Begin.Row; row < r.End.Row; row++ {
		for col := r.Begin.Col; col < r.End.Col; col++ {
			mainc, _, st, _ := c.screen.GetContent(col, row) //nolint:staticcheck // GetContent is the rune level API
			cells = append(cells, cell{r: mainc, st: st})
		}
	}

	i := 0
	for row := 0; row < r.Rows(); row++ {
		for col := 0; col < r.Cols(); col++ {
			c.screen.SetContent(dst.Col+col, dst.Row+row, cells[i].r, nil, cells[i].st)
			i++
		}
	}
}

func (c *Console) SetParam(p vt.Param, v int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.params[p] = v
	switch p {
	case vt.PARAM_SHOW_CURSOR:
		c.hideCursor = v == 0
		c.placeCursor()
	case vt.PARAM_CURSOR_STYLE:
		c.screen.SetCursorStyle(tcell.CursorStyle(v))
	case vt.PARAM_MOUSE:
		if v != 0 {
			c.screen.EnableMouse()
		} else {
			c.screen.DisableMouse()
		}
	}
}

func (c *Console) Respond(b []byte) {
	if c.OnRespond == nil {
		return
	}
	c.OnRespond(append([]byte(nil), b...))
}

func (c *Console) glyph(r rune) rune {
	return vt.DisplayRune(c.eightBit, r)
}

// Style converts a terminal attribute into a tcell style using the
// 256 colour palette.
func Style(a vt.Attr) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.PaletteColor(int(a.FG))).
		Background(tcell.PaletteColor(int(a.BG))).
		Bold(a.Format.Has(vt.FMT_BOLD)).
		Underline(a.Format.Has(vt.FMT_UNDERLINE)).
		Blink(a.Format.Has(vt.FMT_BLINK)).
		Reverse(a.Format.Has(vt.FMT_REVERSE))
}
