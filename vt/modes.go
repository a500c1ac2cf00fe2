package vt

import "strings"

// Mode carries the sticky, per terminal profile switches. Once a bit
// is set it stays set for the life of the Terminal; resets and
// resizes never clear it.
type Mode uint8

const (
	// MODE_8BIT disables UTF-8 decoding. Every byte is a complete
	// unit, Latin-1 style.
	MODE_8BIT Mode = 1 << iota
	// MODE_CONS25 selects the legacy syscons control profile: SO
	// and SI become printable, BS and FF change meaning and the
	// legacy-only CSI entries are recognised.
	MODE_CONS25
)

func (m Mode) has(o Mode) bool {
	return m&o != 0
}

func (m Mode) String() string {
	var parts []string
	if m.has(MODE_8BIT) {
		parts = append(parts, "8bit")
	}
	if m.has(MODE_CONS25) {
		parts = append(parts, "cons25")
	}
	if len(parts) == 0 {
		return "utf8"
	}
	return strings.Join(parts, "|")
}

// Names for the DEC private modes we know about, used when logging
// the ones we accept but don't act on.
var privModeNames = map[uint32]string{
	PRIV_DECCKM:          "DECCKM",
	PRIV_DECANM:          "DECANM",
	PRIV_DECCOLM:         "DECCOLM",
	PRIV_SMOOTH_SCROLL:   "SMOOTH_SCROLL",
	PRIV_REV_VIDEO:       "REV_VIDEO",
	PRIV_ORIGIN_MODE:     "DECOM",
	PRIV_DECAWM:          "DECAWM",
	PRIV_AUTO_REPEAT:     "AUTO_REPEAT",
	PRIV_BLINK_CURSOR:    "BLINK_CURSOR",
	PRIV_SHOW_CURSOR:     "SHOW_CURSOR",
	PRIV_XTERM_80_132:    "XTERM_80_132",
	PRIV_REVERSE_WRAP:    "REV_WRAP",
	PRIV_MOUSE:           "MOUSE_XY",
	PRIV_BRACKETED_PASTE: "BRACKET_PASTE",
}

func privModeName(code uint32) string {
	if n, ok := privModeNames[code]; ok {
		return n
	}
	return "unknown"
}
