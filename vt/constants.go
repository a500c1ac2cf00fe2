package vt

import "math"

const (
	// Like it's 1975 baby!
	DEF_ROWS = 24
	DEF_COLS = 80
)

// Maximum number of numeric parameters collected for a single
// sequence. A separator that would open slot MAX_PARAMS+1 aborts the
// sequence.
const MAX_PARAMS = 8

// Digits are ignored once a parameter reaches this value. Nothing we
// address is anywhere near this large and it keeps the arithmetic on
// cursor positions from overflowing.
const PARAM_CAP = math.MaxUint32 / 100

// Control units handled ahead of the state machine.
const (
	NUL = 0x00
	BEL = 0x07 // ^G Bell
	BS  = 0x08 // ^H Backspace
	TAB = 0x09 // ^I Tab \t
	LF  = 0x0a // ^J Line feed \n
	VT  = 0x0b // ^K Vertical tab \v
	FF  = 0x0c // ^L Form feed \f
	CR  = 0x0d // ^M Carriage return \r
	SO  = 0x0e // ^N Switch to G1/alternate charset as default
	SI  = 0x0f // ^O Switch to G0 charset as default
	ESC = 0x1b
	DEL = 0x7f
)

// Bytes that follow ESC and select a new parser state rather than
// completing a sequence.
const (
	ESC_CSI  = '['
	ESC_G0   = '('
	ESC_G1   = ')'
	ESC_HASH = '#'
)

// Bytes inside a CSI sequence that select a sub-state.
const (
	CSI_PRIV = '?'
	CSI_GT   = '>'
	CSI_EQ   = '='
	CSI_SP   = ' '
	CSI_SEP  = ';'
)

// CSI final bytes
const (
	CSI_ICH      = '@' // insert blank characters
	CSI_CUU      = 'A' // cursor up
	CSI_CUD      = 'B' // cursor down
	CSI_CUF      = 'C' // cursor forward
	CSI_CUB      = 'D' // cursor back
	CSI_CNL      = 'E' // cursor next line
	CSI_CPL      = 'F' // cursor previous line
	CSI_CHA      = 'G' // cursor horizontal absolute
	CSI_CUP      = 'H' // cursor position
	CSI_CHT      = 'I' // cursor forward tabulation
	CSI_ED       = 'J' // erase in display
	CSI_EL       = 'K' // erase in line
	CSI_IL       = 'L' // insert line(s)
	CSI_DL       = 'M' // delete line(s)
	CSI_DCH      = 'P' // delete character(s)
	CSI_SU       = 'S' // scroll up
	CSI_SD       = 'T' // scroll down
	CSI_ECH      = 'X' // erase characters
	CSI_CBT      = 'Z' // cursor backward tabulation
	CSI_HPA      = '`' // character position absolute (column)
	CSI_HPR      = 'a' // character position relative (column)
	CSI_REP      = 'b' // repeat the last graphic character
	CSI_DA       = 'c' // send device attributes
	CSI_VPA      = 'd' // line position absolute (row)
	CSI_VPR      = 'e' // line position relative (row)
	CSI_HVP      = 'f' // horizontal vertical position
	CSI_TBC      = 'g' // tab stop clear
	CSI_SM       = 'h' // set mode
	CSI_RM       = 'l' // reset mode
	CSI_SGR      = 'm' // select graphic rendition
	CSI_DSR      = 'n' // device status report
	CSI_DECSCUSR = 'q' // set cursor style (after SP)
	CSI_DECSTBM  = 'r' // set top and bottom margin
	CSI_SCOSC    = 's' // save cursor
	CSI_SCORC    = 'u' // restore cursor
	CSI_C25SGR   = 'x' // cons25 graphic rendition
	CSI_C25VTSW  = 'z' // cons25 switch virtual terminal
)

// CSI SGR codes
const (
	SGR_RESET         = 0
	SGR_BOLD          = 1
	SGR_UNDERLINE     = 4
	SGR_BLINK         = 5
	SGR_REVERSE       = 7
	SGR_NORMAL        = 22
	SGR_UNDERLINE_OFF = 24
	SGR_BLINK_OFF     = 25
	SGR_REVERSE_OFF   = 27
	SGR_FG_BASE       = 30
	SGR_SET_FG        = 38
	SGR_FG_DEF        = 39
	SGR_BG_BASE       = 40
	SGR_SET_BG        = 48
	SGR_BG_DEF        = 49
	SGR_FG_BRIGHT     = 90
	SGR_BG_BRIGHT     = 100
	SGR_EXT_256       = 5
)

// ANSI mode codes (CSI h / CSI l)
const (
	MODE_IRM = 4 // insert/replace
)

// DEC private mode codes (CSI ? h / CSI ? l)
const (
	PRIV_DECCKM          = 1    // DEC application cursor keys
	PRIV_DECANM          = 2    // ANSI/VT52
	PRIV_DECCOLM         = 3    // DEC 80 (l) / 132 (h) mode DECCOLM
	PRIV_SMOOTH_SCROLL   = 4    // Smooth scroll DECSCLM
	PRIV_REV_VIDEO       = 5    // Reverse video DECSCNM
	PRIV_ORIGIN_MODE     = 6    // Origin Mode DECOM
	PRIV_DECAWM          = 7    // DEC autowrap mode
	PRIV_AUTO_REPEAT     = 8    // Auto-repeat keys DECARM
	PRIV_BLINK_CURSOR    = 12   // Start blinking cursor
	PRIV_SHOW_CURSOR     = 25   // Show cursor DECTCEM
	PRIV_XTERM_80_132    = 40   // Xterm specific to enable/disable 80/132 col reset
	PRIV_REVERSE_WRAP    = 45   // Xterm's reverse-wraparound mode
	PRIV_MOUSE           = 1000 // Send Mouse X & Y on button press and release
	PRIV_BRACKETED_PASTE = 2004 // Bracketed paste, ala xterm
)

// Modes for CSI_TBC
const (
	TBC_CUR = 0 // clear current tab stop
	TBC_ALL = 3 // clear all tab stops
)

// Modes for CSI_ED and CSI_EL
const (
	ERASE_TO_END   = 0
	ERASE_TO_START = 1
	ERASE_ALL      = 2
)

// Fixed replies sent through Emitter.Respond.
const (
	RESP_DA1        = "\x1b[?1;2c"    // VT100 with advanced video option
	RESP_DA2        = "\x1b[>0;10;0c" // VT100, firmware 10
	RESP_STATUS_OK  = "\x1b[0n"
	RESP_NO_PRINTER = "\x1b[?13n"
	RESP_UDK_LOCKED = "\x1b[?20n"
	RESP_KEYBOARD   = "\x1b[?27;1n" // North American
)

// Report requests for CSI_DSR, plain and DEC private.
const (
	DSR_STATUS   = 5
	DSR_CURSOR   = 6
	DSR_PRINTER  = 15
	DSR_UDK      = 25
	DSR_KEYBOARD = 26
)
