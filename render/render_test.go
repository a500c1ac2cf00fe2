package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/bdwalton/vtcons/screen"
	"github.com/bdwalton/vtcons/vt"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func put(b *screen.Buffer, row int, s string) {
	for col, r := range []rune(s) {
		b.PutChar(vt.Pos{Row: row, Col: col}, r, vt.DefaultAttr)
	}
}

func TestFull(t *testing.T) {
	b := screen.New(1, 3)
	put(b, 0, "ab")
	b.MoveCursor(vt.Pos{Col: 2})

	var out bytes.Buffer
	require.NoError(t, New(termenv.ANSI, false).Full(&out, b))
	assert.Equal(t, "\x1b[0m\x1b[2J\x1b[1;1H\x1b[0;37;40mab \x1b[0m\x1b[1;3H\x1b[?25h", out.String())
}

func TestFullRowsAreAddressed(t *testing.T) {
	b := screen.New(2, 2)
	put(b, 0, "ab")
	put(b, 1, "cd")

	var out bytes.Buffer
	require.NoError(t, New(termenv.Ascii, false).Full(&out, b))
	assert.Equal(t, "\x1b[0m\x1b[2J\x1b[1;1H\x1b[0mab\x1b[2;1Hcd\x1b[0m\x1b[1;1H\x1b[?25h", out.String())
}

func TestFullWideGlyph(t *testing.T) {
	b := screen.New(1, 3)
	right := vt.DefaultAttr
	right.Format |= vt.FMT_CJK_RIGHT
	b.PutChar(vt.Pos{}, '中', vt.DefaultAttr)
	b.PutChar(vt.Pos{Col: 1}, '中', right)

	var out bytes.Buffer
	require.NoError(t, New(termenv.ANSI, false).Full(&out, b))
	assert.Contains(t, out.String(), "\x1b[1;1H\x1b[0;37;40m中 \x1b[0m")
	assert.Equal(t, 1, strings.Count(out.String(), "中"))
}

func TestSGR(t *testing.T) {
	bold := vt.Attr{Format: vt.FMT_BOLD | vt.FMT_REVERSE, FG: 196, BG: vt.COLOR_BLUE}
	cases := []struct {
		profile termenv.Profile
		a       vt.Attr
		want    string
	}{
		{termenv.Ascii, vt.DefaultAttr, "\x1b[0m"},
		{termenv.Ascii, bold, "\x1b[0;1;7m"},
		{termenv.ANSI, vt.DefaultAttr, "\x1b[0;37;40m"},
		{termenv.ANSI, bold, "\x1b[0;1;7;31;44m"},
		{termenv.ANSI, vt.Attr{FG: vt.COLOR_LIGHT | vt.COLOR_GREEN, BG: 250}, "\x1b[0;32;47m"},
		{termenv.ANSI256, bold, "\x1b[0;1;7;38;5;196;48;5;4m"},
		{termenv.TrueColor, vt.Attr{Format: vt.FMT_UNDERLINE | vt.FMT_BLINK}, "\x1b[0;4;5;38;5;0;48;5;0m"},
	}

	for i, c := range cases {
		got := New(c.profile, false).sgr(c.a)
		assert.Equal(t, c.want, got, "%d", i)
	}
}

func TestGlyph(t *testing.T) {
	cases := []struct {
		eightBit bool
		in, want rune
	}{
		{false, 'a', 'a'},
		{false, '─', '─'},
		{false, 0x1b, ' '},
		{false, 0x7f, ' '},
		{true, 'a', 'a'},
		{true, 0xc4, '─'},
		{true, 0xb3, '│'},
		{true, 0x9c, '£'},
	}

	for i, c := range cases {
		assert.Equal(t, c.want, New(termenv.Ascii, c.eightBit).glyph(c.in), "%d", i)
	}
}

func TestDiff(t *testing.T) {
	prev := screen.New(2, 3)
	put(prev, 0, "abc")

	cases := []struct {
		name   string
		change func(b *screen.Buffer)
		want   string
	}{
		{
			name:   "nothing",
			change: func(*screen.Buffer) {},
			want:   "",
		},
		{
			name:   "one cell",
			change: func(b *screen.Buffer) { put(b, 1, "x") },
			want:   "\x1b[2;1H\x1b[0;37;40mx\x1b[0m\x1b[1;1H\x1b[?25h",
		},
		{
			name:   "adjacent cells share a move",
			change: func(b *screen.Buffer) { put(b, 0, "aXY") },
			want:   "\x1b[1;2H\x1b[0;37;40mXY\x1b[0m\x1b[1;1H\x1b[?25h",
		},
		{
			name:   "cursor only",
			change: func(b *screen.Buffer) { b.MoveCursor(vt.Pos{Row: 1, Col: 2}) },
			want:   "\x1b[2;3H",
		},
		{
			name:   "hidden cursor",
			change: func(b *screen.Buffer) { b.SetParam(vt.PARAM_SHOW_CURSOR, 0) },
			want:   "\x1b[1;1H\x1b[?25l",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cur := prev.Clone()
			c.change(cur)

			var out bytes.Buffer
			require.NoError(t, New(termenv.ANSI, false).Diff(&out, prev, cur))
			assert.Equal(t, c.want, out.String())
		})
	}
}

func TestDiffResizedIsFull(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, New(termenv.ANSI, false).Diff(&out, screen.New(2, 2), screen.New(3, 3)))
	assert.True(t, strings.HasPrefix(out.String(), "\x1b[0m\x1b[2J"))
}

func TestDiffReproducesScreen(t *testing.T) {
	b := screen.New(3, 10)
	term := vt.New(b)
	term.SetWindowSize(vt.Pos{Row: 3, Col: 10})
	prev := b.Clone()

	term.Input([]byte("hello\r\n\x1b[1;31mworld"))

	var out bytes.Buffer
	require.NoError(t, New(termenv.ANSI256, false).Diff(&out, prev, b))
	assert.Contains(t, out.String(), "hello")
	assert.Contains(t, out.String(), "\x1b[0;1;38;5;1;48;5;0mworld")
	assert.True(t, strings.HasSuffix(out.String(), "\x1b[2;6H\x1b[?25h"))
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestWriteError(t *testing.T) {
	err := New(termenv.ANSI, false).Full(failWriter{}, screen.New(1, 1))
	assert.ErrorContains(t, err, "closed")
}

func TestParseProfile(t *testing.T) {
	p, ok, err := ParseProfile("ANSI256")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, termenv.ANSI256, p)

	_, ok, err = ParseProfile("auto")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = ParseProfile("sixteen")
	assert.ErrorIs(t, err, ErrUnknownProfile)
}
