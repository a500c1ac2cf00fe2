package vt

import "strconv"

// Color is an index into the 256 entry xterm palette. The first eight
// entries are the basic colours below.
type Color uint8

const (
	COLOR_BLACK Color = iota
	COLOR_RED
	COLOR_GREEN
	COLOR_BROWN
	COLOR_BLUE
	COLOR_MAGENTA
	COLOR_CYAN
	COLOR_WHITE

	// COLOR_LIGHT is or'ed onto a basic colour to get its bright
	// variant (palette entries 8-15).
	COLOR_LIGHT Color = 8
)

var colorNames = [8]string{"black", "red", "green", "brown", "blue", "magenta", "cyan", "white"}

func (c Color) String() string {
	if c < 16 {
		n := colorNames[c%8]
		if c&COLOR_LIGHT != 0 {
			return "light" + n
		}
		return n
	}
	return "color" + strconv.Itoa(int(c))
}

// Start of the 6x6x6 colour cube and of the grayscale ramp in the 256
// colour palette.
const (
	CUBE_START  = 16
	GRAY_START  = 232
	GRAY_BRIGHT = 244
)

// Color256To8 reduces a palette index to one of the eight basic
// colours, for displays that can't do better. The mapping is fixed;
// consumers depend on it exactly.
func Color256To8(c Color) Color {
	if c < CUBE_START {
		return c % 8
	}
	if c >= GRAY_BRIGHT {
		return COLOR_WHITE
	}
	if c >= GRAY_START {
		return COLOR_BLACK
	}

	// Channel magnitudes, each in [0, 5].
	c -= CUBE_START
	b := c % 6
	g := (c / 6) % 6
	r := c / 36

	switch {
	case r < g:
		// Possibly green.
		switch {
		case g < b:
			return COLOR_BLUE
		case g > b:
			return COLOR_GREEN
		default:
			return COLOR_CYAN
		}
	case r > g:
		// Possibly red.
		switch {
		case r < b:
			return COLOR_BLUE
		case r > b:
			return COLOR_RED
		default:
			return COLOR_MAGENTA
		}
	default:
		// Possibly brown.
		switch {
		case g < b:
			return COLOR_BLUE
		case g > b:
			return COLOR_BROWN
		case r < 3:
			return COLOR_BLACK
		default:
			return COLOR_WHITE
		}
	}
}

// cons25 numbers its colours in PC/VGA order rather than ANSI order.
var (
	cons25Colors    = [8]Color{COLOR_BLACK, COLOR_BLUE, COLOR_GREEN, COLOR_CYAN, COLOR_RED, COLOR_MAGENTA, COLOR_BROWN, COLOR_WHITE}
	cons25RevColors = [8]int{0, 4, 2, 6, 1, 5, 3, 7}
)

// cons25Color converts a cons25 colour number (0-15) to a palette index.
func cons25Color(n uint32) Color {
	return cons25Colors[n%8] | Color(n&uint32(COLOR_LIGHT))
}
