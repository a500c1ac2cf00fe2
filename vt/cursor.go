package vt

import "fmt"

// Pos is a zero based cell address.
type Pos struct {
	Row, Col int
}

func (p Pos) equal(other Pos) bool {
	return p.Row == other.Row && p.Col == other.Col
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Rect is the half open area [Begin, End). The terminal only ever
// hands out rectangles with End strictly beyond Begin on both axes.
type Rect struct {
	Begin, End Pos
}

func (r Rect) Rows() int {
	return r.End.Row - r.Begin.Row
}

func (r Rect) Cols() int {
	return r.End.Col - r.Begin.Col
}

func (r Rect) Contains(p Pos) bool {
	return p.Row >= r.Begin.Row && p.Row < r.End.Row && p.Col >= r.Begin.Col && p.Col < r.End.Col
}

func (r Rect) String() string {
	return fmt.Sprintf("[%s, %s)", r.Begin, r.End)
}
