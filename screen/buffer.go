// Package screen is an in-memory vt.Emitter: a grid of cells plus a
// record of everything else the terminal asked of its display.
package screen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bdwalton/vtcons/vt"
)

var ErrInvalidCell = errors.New("invalid screen cell")

var _ vt.Emitter = (*Buffer)(nil)

// Cell is one character position on the screen.
type Cell struct {
	R rune
	A vt.Attr
}

// DefaultCell is a blank in the default attribute.
func DefaultCell() Cell {
	return Cell{R: ' ', A: vt.DefaultAttr}
}

func (c Cell) String() string {
	return fmt.Sprintf("%q (%s)", c.R, c.A)
}

// Buffer implements vt.Emitter over a rows x cols grid of cells.
// Like the Terminal driving it, it does no locking.
type Buffer struct {
	data      [][]Cell
	cursor    vt.Pos
	bells     int
	params    map[vt.Param]int
	responses [][]byte
}

func New(rows, cols int) *Buffer {
	b := &Buffer{params: make(map[vt.Param]int)}
	b.Resize(rows, cols)
	return b
}

func newRow(cols int) []Cell {
	row := make([]Cell, cols)
	for i := range row {
		row[i] = DefaultCell()
	}
	return row
}

// Resize changes the grid dimensions, keeping whatever content still
// fits in the top left.
func (b *Buffer) Resize(rows, cols int) {
	rows, cols = max(rows, 1), max(cols, 1)
	data := make([][]Cell, rows)
	for r := range data {
		data[r] = newRow(cols)
		if r < len(b.data) {
			copy(data[r], b.data[r])
		}
	}
	b.data = data
	b.cursor = vt.Pos{Row: min(b.cursor.Row, rows-1), Col: min(b.cursor.Col, cols-1)}
}

func (b *Buffer) Rows() int {
	return len(b.data)
}

func (b *Buffer) Cols() int {
	return len(b.data[0])
}

func (b *Buffer) validPoint(row, col int) bool {
	return row >= 0 && row < b.Rows() && col >= 0 && col < b.Cols()
}

func (b *Buffer) Cell(row, col int) (Cell, error) {
	if b.validPoint(row, col) {
		return b.data[row][col], nil
	}
	return DefaultCell(), fmt.Errorf("invalid coordinates (%d, %d): %w", row, col, ErrInvalidCell)
}

// Line returns the text of row with trailing blanks removed. The right
// halves of double width glyphs are skipped.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= b.Rows() {
		return ""
	}

	var sb strings.Builder
	for _, c := range b.data[row] {
		if c.A.Format.Has(vt.FMT_CJK_RIGHT) {
			continue
		}
		sb.WriteRune(c.R)
	}
	return strings.TrimRight(sb.String(), " ")
}

func (b *Buffer) String() string {
	lines := make([]string, b.Rows())
	for r := range lines {
		lines[r] = b.Line(r)
	}
	return strings.Join(lines, "\n")
}

func (b *Buffer) Cursor() vt.Pos {
	return b.cursor
}

func (b *Buffer) Bells() int {
	return b.bells
}

// Param returns the last value set for p.
func (b *Buffer) Param(p vt.Param) (int, bool) {
	v, ok := b.params[p]
	return v, ok
}

// TakeResponses returns the replies the terminal has sent since the
// last call.
func (b *Buffer) TakeResponses() [][]byte {
	r := b.responses
	b.responses = nil
	return r
}

// Clone returns a deep copy of the cells, cursor and params. Bells
// and responses are not carried over.
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{
		data:   make([][]Cell, b.Rows()),
		cursor: b.cursor,
		params: make(map[vt.Param]int),
	}
	for r, row := range b.data {
		c.data[r] = append([]Cell(nil), row...)
	}
	for p, v := range b.params {
		c.params[p] = v
	}
	return c
}

// Equal reports whether both buffers show the same cells.
func (b *Buffer) Equal(other *Buffer) bool {
	if b.Rows() != other.Rows() || b.Cols() != other.Cols() {
		return false
	}
	for r := range b.data {
		for c := range b.data[r] {
			if b.data[r][c] != other.data[r][c] {
				return false
			}
		}
	}
	return true
}

// clip limits r to the grid, reporting whether anything is left.
func (b *Buffer) clip(r vt.Rect) (vt.Rect, bool) {
	r.Begin.Row = max(r.Begin.Row, 0)
	r.Begin.Col = max(r.Begin.Col, 0)
	r.End.Row = min(r.End.Row, b.Rows())
	r.End.Col = min(r.End.Col, b.Cols())
	return r, r.Begin.Row < r.End.Row && r.Begin.Col < r.End.Col
}

func (b *Buffer) Bell() {
	b.bells++
}

func (b *Buffer) MoveCursor(p vt.Pos) {
	if b.validPoint(p.Row, p.Col) {
		b.cursor = p
	}
}

func (b *Buffer) PutChar(p vt.Pos, r rune, a vt.Attr) {
	if b.validPoint(p.Row, p.Col) {
		b.data[p.Row][p.Col] = Cell{R: r, A: a}
	}
}

func (b *Buffer) Fill(r vt.Rect, ch rune, a vt.Attr) {
	r, ok := b.clip(r)
	if !ok {
		return
	}
	for row := r.Begin.Row; row < r.End.Row; row++ {
		for col := r.Begin.Col; col < r.End.Col; col++ {
			b.data[row][col] = Cell{R: ch, A: a}
		}
	}
}

// Copy moves the cells in r so its top left lands on dst. Source and
// destination may overlap.
func (b *Buffer) Copy(r vt.Rect, dst vt.Pos) {
	r, ok := b.clip(r)
	if !ok {
		return
	}
	nrows := min(r.Rows(), b.Rows()-dst.Row)
	ncols := min(r.Cols(), b.Cols()-dst.Col)
	if dst.Row < 0 || dst.Col < 0 || nrows <= 0 || ncols <= 0 {
		return
	}

	copyRow := func(i int) {
		copy(b.data[dst.Row+i][dst.Col:dst.Col+ncols], b.data[r.Begin.Row+i][r.Begin.Col:r.Begin.Col+ncols])
	}
	// Moving down, start from the bottom so rows aren't
	// overwritten before they are read.
	if dst.Row > r.Begin.Row {
		for i := nrows - 1; i >= 0; i-- {
			copyRow(i)
		}
		return
	}
	for i := 0; i < nrows; i++ {
		copyRow(i)
	}
}

func (b *Buffer) SetParam(p vt.Param, v int) {
	b.params[p] = v
}

// Respond keeps a copy of reply; the terminal reuses its buffer.
func (b *Buffer) Respond(reply []byte) {
	b.responses = append(b.responses, append([]byte(nil), reply...))
}
