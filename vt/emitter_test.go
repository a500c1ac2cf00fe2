package vt

import (
	"fmt"
	"strings"
	"testing"
)

// recorder is an Emitter that logs every call as a string.
type recorder struct {
	calls []string
}

func (r *recorder) add(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) Bell() {
	r.add("bell")
}

func (r *recorder) MoveCursor(p Pos) {
	r.add("cursor %d,%d", p.Row, p.Col)
}

func (r *recorder) PutChar(p Pos, c rune, a Attr) {
	r.add("put %d,%d %q %s", p.Row, p.Col, c, a)
}

func (r *recorder) Fill(rect Rect, c rune, a Attr) {
	r.add("fill %d,%d-%d,%d %q", rect.Begin.Row, rect.Begin.Col, rect.End.Row, rect.End.Col, c)
}

func (r *recorder) Copy(rect Rect, p Pos) {
	r.add("copy %d,%d-%d,%d to %d,%d", rect.Begin.Row, rect.Begin.Col, rect.End.Row, rect.End.Col, p.Row, p.Col)
}

func (r *recorder) SetParam(p Param, v int) {
	r.add("param %s %d", p, v)
}

func (r *recorder) Respond(b []byte) {
	r.add("respond %q", b)
}

// with returns the calls that start with prefix.
func (r *recorder) with(prefix string) []string {
	var out []string
	for _, c := range r.calls {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}

func (r *recorder) reset() {
	r.calls = nil
}

func newTestTerminal() (*Terminal, *recorder) {
	rec := &recorder{}
	return New(rec), rec
}

// mustValid fails the test if the terminal's invariants don't hold.
func mustValid(t *testing.T, term *Terminal) {
	t.Helper()
	if err := term.validate(); err != nil {
		t.Fatal(err)
	}
}
