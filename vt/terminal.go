package vt

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
)

var errInvariant = errors.New("terminal invariant violated")

// Terminal interprets a byte stream written to a virtual console and
// drives an Emitter with the effects. It owns no cell storage: the
// Emitter does. A Terminal is not safe for concurrent use; hosts
// sharing one between goroutines must serialise calls themselves.
type Terminal struct {
	e    Emitter
	mode Mode

	dec decoder
	p   parser

	cur, savedCur      Pos
	shown              Pos // cursor position last reported to e
	curAttr, savedAttr Attr
	defAttr            Attr
	savedCS            charset

	winsize              Pos
	scrollReg, originReg region

	flags stateFlags
	cs    charset
	tabs  tabStops
	last  rune // last printed glyph, for REP

	resp [64]byte
}

// New returns a Terminal with the default 24x80 window, reset to its
// initial state, that drives e.
func New(e Emitter) *Terminal {
	t := &Terminal{
		e:       e,
		defAttr: DefaultAttr,
	}
	t.SetWindowSize(Pos{Row: DEF_ROWS, Col: DEF_COLS})
	return t
}

// Input interprets b. All effects are reported through the Emitter.
func (t *Terminal) Input(b []byte) {
	for _, c := range b {
		if r, ok := t.dec.feed(t.mode, c); ok {
			t.inputRune(r)
		}
	}
	if !t.cur.equal(t.shown) {
		t.shown = t.cur
		t.e.MoveCursor(t.cur)
	}
}

// Write makes the Terminal an io.Writer. It never fails.
func (t *Terminal) Write(b []byte) (int, error) {
	t.Input(b)
	return len(b), nil
}

func (t *Terminal) Cursor() Pos {
	return t.cur
}

// SetCursor moves the cursor without telling the Emitter; the caller
// is the one that asked. The position is clamped to the active
// region.
func (t *Terminal) SetCursor(p Pos) {
	t.cur = Pos{Row: t.originReg.clamp(p.Row), Col: clampCol(p.Col, t.winsize.Col)}
	t.shown = t.cur
	t.flags.set(FLAG_WRAPPED, false)
}

func (t *Terminal) CurrentAttr() Attr {
	return t.curAttr
}

func (t *Terminal) SetCurrentAttr(a Attr) {
	t.curAttr = a
}

func (t *Terminal) DefaultAttr() Attr {
	return t.defAttr
}

// SetDefaultAttr changes the attribute used by resets and SGR 0. The
// current and saved attributes follow it.
func (t *Terminal) SetDefaultAttr(a Attr) {
	t.defAttr = a
	t.curAttr = a
	t.savedAttr = a
}

// WindowSize returns the window dimensions as a Pos of rows and
// columns.
func (t *Terminal) WindowSize() Pos {
	return t.winsize
}

// SetWindowSize changes the window dimensions. Everything except the
// mode and the default attribute goes back to its initial state.
// Dimensions below 1 are raised to 1.
func (t *Terminal) SetWindowSize(size Pos) {
	size.Row = max(size.Row, 1)
	size.Col = max(size.Col, 1)
	if t.tabs.b == nil || !t.winsize.equal(size) {
		t.tabs = newTabStops(size.Col)
	}
	t.winsize = size
	t.reset()
}

// Enable8Bit turns off UTF-8 decoding for the life of the Terminal.
func (t *Terminal) Enable8Bit() {
	t.mode |= MODE_8BIT
	t.dec.reset()
}

// EnableCons25 switches to the syscons cons25 control profile for the
// life of the Terminal.
func (t *Terminal) EnableCons25() {
	t.mode |= MODE_CONS25
}

func (t *Terminal) Mode() Mode {
	return t.mode
}

// Cons25DefaultColors reports the default foreground and background
// in cons25 colour numbering. A bold default foreground is reported
// as its light variant.
func (t *Terminal) Cons25DefaultColors() (fg, bg int) {
	fg = cons25RevColors[Color256To8(t.defAttr.FG)]
	if t.defAttr.Format.Has(FMT_BOLD) {
		fg += int(COLOR_LIGHT)
	}
	bg = cons25RevColors[Color256To8(t.defAttr.BG)]
	return fg, bg
}

func (t *Terminal) String() string {
	return fmt.Sprintf("cursor: %s; size: %s; scroll: %s; origin: %s; mode: %s; attr: %s",
		t.cur, t.winsize, t.scrollReg, t.originReg, t.mode, t.curAttr)
}

// reset restores the initial state for the current window size.
func (t *Terminal) reset() {
	t.curAttr = t.defAttr
	t.cur = Pos{}
	t.shown = Pos{}
	t.savedCur = Pos{}
	t.savedAttr = t.defAttr
	t.flags = FLAG_AUTOWRAP
	t.scrollReg = newRegion(0, t.winsize.Row)
	t.originReg = t.scrollReg
	t.cs.reset()
	t.savedCS.reset()
	t.tabs.setDefault()
	t.last = 0
	t.p.enter(STATE_GROUND)
}

func (t *Terminal) inputRune(r rune) {
	switch {
	case t.flags.has(FLAG_INSTRING) && r == BEL:
		// Ends an OSC or DCS string without ringing.
		t.flags.set(FLAG_INSTRING, false)
	case controlFor(t.mode, r):
		t.execute(r)
	case t.flags.has(FLAG_INSTRING) && t.stringUnit(r):
		// Swallowed by an OSC or DCS string.
	default:
		t.step(r)
	}

	if err := t.validate(); err != nil {
		slog.Error("after input", "r", r, "err", err, "terminal", t)
	}
}

// stringUnit handles a non-control r while an OSC or DCS string is
// being skipped. It reports whether r was consumed.
func (t *Terminal) stringUnit(r rune) bool {
	if r == ESC {
		t.flags.set(FLAG_INSTRING, false)
		return false
	}
	return true
}

// step runs r through the parser and performs whatever it completes.
func (t *Terminal) step(r rune) {
	seq := t.p.advance(t.mode, r)
	switch seq.op {
	case OP_NONE:
		return
	case OP_PRINT:
		t.last = r
		t.printRune(r)
		return
	}
	t.dispatch(seq)
	t.p.finish()
}

// dispatch performs a completed sequence using the parser's
// parameters.
func (t *Terminal) dispatch(seq sequence) {
	p := &t.p.params
	n := func(i int) int {
		return int(p.arg(i, seq.args))
	}

	switch seq.op {
	case OP_CUU:
		t.cursorUp(n(0))
	case OP_CUD:
		t.cursorDown(n(0))
	case OP_CUF:
		t.cursorForward(n(0))
	case OP_CUB:
		t.cursorBackward(n(0))
	case OP_CNL:
		t.cur.Col = 0
		t.cursorDown(n(0))
	case OP_CPL:
		t.cur.Col = 0
		t.cursorUp(n(0))
	case OP_CUP:
		t.cursorPosition(n(0), n(1))
	case OP_HPA:
		t.horizontalPosition(n(0))
	case OP_VPA:
		t.verticalPosition(n(0))
	case OP_CHT:
		t.tabForward(n(0))
	case OP_CBT:
		t.tabBackward(n(0))
	case OP_IND:
		t.index()
	case OP_NEL:
		t.cur.Col = 0
		t.newline()
	case OP_RI:
		t.reverseIndex()
	case OP_DECSC:
		t.saveCursor()
	case OP_DECRC:
		t.restoreCursor()

	case OP_ICH:
		t.insertChars(n(0))
	case OP_DCH:
		t.deleteChars(n(0))
	case OP_IL:
		t.insertLines(n(0))
	case OP_DL:
		t.deleteLines(n(0))
	case OP_ECH:
		t.eraseChars(n(0))
	case OP_ED:
		t.eraseDisplay(n(0))
	case OP_EL:
		t.eraseLine(n(0))
	case OP_SU:
		t.scroll(n(0))
	case OP_SD:
		t.scroll(-n(0))
	case OP_REP:
		t.repeatLast(n(0))

	case OP_HTS:
		t.tabs.set(t.cur.Col)
	case OP_TBC:
		switch n(0) {
		case TBC_CUR:
			t.tabs.clear(t.cur.Col)
		case TBC_ALL:
			t.tabs.clearAll()
		}

	case OP_SGR:
		t.curAttr = applySGR(t.curAttr, t.defAttr, p)
	case OP_SM, OP_RM:
		for _, m := range p.items() {
			t.setMode(m, seq.op == OP_SM)
		}
	case OP_DECSM, OP_DECRM:
		for _, m := range p.items() {
			t.setPrivMode(m, seq.op == OP_DECSM)
		}
	case OP_DECSTBM:
		t.setMargins(n(0), n(1))
	case OP_DECKPAM:
		t.e.SetParam(PARAM_KEYPAD_APP, 1)
	case OP_DECKPNM:
		t.e.SetParam(PARAM_KEYPAD_APP, 0)
	case OP_DECSCUSR:
		t.e.SetParam(PARAM_CURSOR_STYLE, n(0))
	case OP_RIS:
		t.resetToInitialState()
	case OP_DECALN:
		t.e.Fill(t.window(), 'E', t.defAttr)
	case OP_DECDHL_TOP, OP_DECDHL_BOTTOM, OP_DECSWL, OP_DECDWL:
		// Line sizes other than single width aren't supported.

	case OP_G0SCS_ASCII:
		t.cs.designate(0, CS_US_ASCII)
	case OP_G0SCS_UK:
		t.cs.designate(0, CS_UK_NATIONAL)
	case OP_G0SCS_GRAPHICS:
		t.cs.designate(0, CS_SPECIAL_GRAPHICS)
	case OP_G1SCS_ASCII:
		t.cs.designate(1, CS_US_ASCII)
	case OP_G1SCS_UK:
		t.cs.designate(1, CS_UK_NATIONAL)
	case OP_G1SCS_GRAPHICS:
		t.cs.designate(1, CS_SPECIAL_GRAPHICS)

	case OP_DA1:
		if n(0) == 0 {
			t.e.Respond(append(t.resp[:0], RESP_DA1...))
		}
	case OP_DA2:
		if n(0) == 0 {
			t.e.Respond(append(t.resp[:0], RESP_DA2...))
		}
	case OP_CPR:
		t.statusReport(n(0))
	case OP_DSR:
		t.decStatusReport(n(0))

	case OP_OSC, OP_DCS:
		t.flags.set(FLAG_INSTRING, true)
	case OP_ST:
		// Only meaningful as the end of a string we already skipped.

	case OP_C25BORD:
		t.e.SetParam(PARAM_BORDER, n(0))
	case OP_C25BLPD:
		t.e.SetParam(PARAM_BELL_PITCH_DURATION, n(0)<<16|n(1)&0xffff)
	case OP_C25GCS:
		t.e.SetParam(PARAM_GLOBAL_CURSOR, packCursorShape(p.items()))
	case OP_C25LCT:
		t.e.SetParam(PARAM_LOCAL_CURSOR, n(0))
	case OP_C25DFG:
		c := cons25Color(p.get(0))
		t.defAttr.FG = c
		t.curAttr.FG = c
	case OP_C25DBG:
		c := cons25Color(p.get(0))
		t.defAttr.BG = c
		t.curAttr.BG = c
	case OP_C25MODE:
		// The profile is fixed when the Terminal is set up.
		slog.Debug("ignoring cons25 terminal mode switch", "mode", n(0))
	case OP_C25SGR:
		if n(0) == 0 {
			t.curAttr = t.defAttr
		} else {
			slog.Debug("unsupported cons25 attribute", "cmd", n(0), "param", n(1))
		}
	case OP_C25VTSW:
		t.e.SetParam(PARAM_SWITCH_VT, n(0))

	default:
		slog.Debug("unhandled operation", "op", seq.op)
	}
}

// packCursorShape folds up to three cursor shape values into one
// SetParam argument, a byte each, lowest first, with the number of
// values given in the top byte.
func packCursorShape(vals []uint32) int {
	n := min(len(vals), 3)
	v := n << 24
	for i := 0; i < n; i++ {
		v |= int(vals[i]&0xff) << (8 * i)
	}
	return v
}

func (t *Terminal) setMode(m uint32, on bool) {
	switch m {
	case MODE_IRM:
		t.flags.set(FLAG_INSERT, on)
	default:
		slog.Debug("unsupported mode", "mode", m, "set", on)
	}
}

func (t *Terminal) setPrivMode(m uint32, on bool) {
	v := 0
	if on {
		v = 1
	}

	switch m {
	case PRIV_DECCKM:
		t.flags.set(FLAG_CURSORKEYS, on)
		t.e.SetParam(PARAM_CURSOR_KEYS, v)
	case PRIV_DECCOLM:
		t.e.SetParam(PARAM_132_COLS, v)
		t.resetToInitialState()
	case PRIV_ORIGIN_MODE:
		t.flags.set(FLAG_ORIGIN, on)
		if on {
			t.originReg = t.scrollReg
		} else {
			t.originReg = newRegion(0, t.winsize.Row)
		}
		t.cur = Pos{Row: t.originReg.begin}
		t.flags.set(FLAG_WRAPPED, false)
	case PRIV_DECAWM:
		t.flags.set(FLAG_AUTOWRAP, on)
		if !on {
			t.flags.set(FLAG_WRAPPED, false)
		}
	case PRIV_AUTO_REPEAT:
		t.e.SetParam(PARAM_AUTO_REPEAT, v)
	case PRIV_SHOW_CURSOR:
		t.e.SetParam(PARAM_SHOW_CURSOR, v)
	case PRIV_MOUSE:
		t.e.SetParam(PARAM_MOUSE, v)
	case PRIV_DECANM, PRIV_SMOOTH_SCROLL, PRIV_REV_VIDEO, PRIV_BLINK_CURSOR,
		PRIV_XTERM_80_132, PRIV_REVERSE_WRAP, PRIV_BRACKETED_PASTE:
		slog.Debug("ignoring private mode", "mode", privModeName(m), "set", on)
	default:
		slog.Debug("unknown private mode", "mode", m, "set", on)
	}
}

// resetToInitialState is RIS: a reset plus a cleared screen and a
// visible cursor.
func (t *Terminal) resetToInitialState() {
	t.reset()
	t.e.Fill(t.window(), ' ', t.curAttr)
	t.e.SetParam(PARAM_SHOW_CURSOR, 1)
	// Force the host cursor home even if it thinks it's there.
	t.shown = Pos{Row: -1}
}

func (t *Terminal) statusReport(cmd int) {
	switch cmd {
	case DSR_STATUS:
		t.e.Respond(append(t.resp[:0], RESP_STATUS_OK...))
	case DSR_CURSOR:
		t.respondCursor("\x1b[")
	default:
		slog.Debug("unsupported status report", "cmd", cmd)
	}
}

func (t *Terminal) decStatusReport(cmd int) {
	switch cmd {
	case DSR_CURSOR:
		t.respondCursor("\x1b[?")
	case DSR_PRINTER:
		t.e.Respond(append(t.resp[:0], RESP_NO_PRINTER...))
	case DSR_UDK:
		t.e.Respond(append(t.resp[:0], RESP_UDK_LOCKED...))
	case DSR_KEYBOARD:
		t.e.Respond(append(t.resp[:0], RESP_KEYBOARD...))
	default:
		slog.Debug("unsupported DEC status report", "cmd", cmd)
	}
}

// respondCursor reports the cursor, 1 based and relative to the
// origin region, as prefix row;col R.
func (t *Terminal) respondCursor(prefix string) {
	b := append(t.resp[:0], prefix...)
	b = strconv.AppendInt(b, int64(t.cur.Row-t.originReg.begin+1), 10)
	b = append(b, CSI_SEP)
	b = strconv.AppendInt(b, int64(t.cur.Col+1), 10)
	b = append(b, 'R')
	t.e.Respond(b)
}

// window is the whole screen as a Rect.
func (t *Terminal) window() Rect {
	return Rect{End: t.winsize}
}

// validate checks the state invariants that must hold between units.
func (t *Terminal) validate() error {
	switch {
	case !t.originReg.contains(t.cur.Row):
		return fmt.Errorf("%w: cursor row %d outside origin region %s", errInvariant, t.cur.Row, t.originReg)
	case t.cur.Col < 0 || t.cur.Col >= t.winsize.Col:
		return fmt.Errorf("%w: cursor column %d outside window width %d", errInvariant, t.cur.Col, t.winsize.Col)
	case t.scrollReg.begin < 0 || t.scrollReg.begin >= t.scrollReg.end || t.scrollReg.end > t.winsize.Row:
		return fmt.Errorf("%w: scroll region %s for %d rows", errInvariant, t.scrollReg, t.winsize.Row)
	case !t.originReg.equal(t.scrollReg) && !t.originReg.equal(region{0, t.winsize.Row}):
		return fmt.Errorf("%w: origin region %s is neither scroll region %s nor the window", errInvariant, t.originReg, t.scrollReg)
	case t.savedCur.Row < 0 || t.savedCur.Row >= t.winsize.Row || t.savedCur.Col < 0 || t.savedCur.Col >= t.winsize.Col:
		return fmt.Errorf("%w: saved cursor %s outside window %s", errInvariant, t.savedCur, t.winsize)
	case t.p.params.count() > MAX_PARAMS:
		return fmt.Errorf("%w: %d parameters", errInvariant, t.p.params.count())
	}
	return nil
}

func clampCol(col, cols int) int {
	switch {
	case col < 0:
		return 0
	case col >= cols:
		return cols - 1
	}
	return col
}
