package vt

import "testing"

func TestColor256To8(t *testing.T) {
	cases := []struct {
		c, want Color
	}{
		{COLOR_RED, COLOR_RED},
		{COLOR_LIGHT | COLOR_CYAN, COLOR_CYAN},
		{16, COLOR_BLACK},
		{21, COLOR_BLUE},
		{46, COLOR_GREEN},
		{51, COLOR_CYAN},
		{196, COLOR_RED},
		{201, COLOR_MAGENTA},
		{226, COLOR_BROWN},
		{231, COLOR_WHITE},
		{102, COLOR_BLACK}, // dim gray in the cube
		{145, COLOR_WHITE}, // light gray in the cube
		{232, COLOR_BLACK},
		{240, COLOR_BLACK},
		{244, COLOR_WHITE},
		{250, COLOR_WHITE},
		{255, COLOR_WHITE},
	}

	for i, c := range cases {
		if got := Color256To8(c.c); got != c.want {
			t.Errorf("%d: Got %s for %s, wanted %s", i, got, c.c, c.want)
		}
	}
}

func TestCons25Color(t *testing.T) {
	cases := []struct {
		n    uint32
		want Color
	}{
		{0, COLOR_BLACK},
		{1, COLOR_BLUE},
		{4, COLOR_RED},
		{6, COLOR_BROWN},
		{9, COLOR_LIGHT | COLOR_BLUE},
		{15, COLOR_LIGHT | COLOR_WHITE},
	}

	for i, c := range cases {
		got := cons25Color(c.n)
		if got != c.want {
			t.Errorf("%d: Got %s, wanted %s", i, got, c.want)
		}
		// The reverse table undoes the mapping.
		if back := cons25RevColors[got%8]; back != int(c.n%8) {
			t.Errorf("%d: Got %d back, wanted %d", i, back, c.n%8)
		}
	}
}

func TestColorString(t *testing.T) {
	cases := []struct {
		c    Color
		want string
	}{
		{COLOR_BROWN, "brown"},
		{COLOR_LIGHT | COLOR_GREEN, "lightgreen"},
		{100, "color100"},
	}

	for i, c := range cases {
		if got := c.c.String(); got != c.want {
			t.Errorf("%d: Got %q, wanted %q", i, got, c.want)
		}
	}
}
