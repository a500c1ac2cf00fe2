package vt

// Param names a host level setting changed through Emitter.SetParam.
type Param uint8

const (
	PARAM_SHOW_CURSOR         Param = iota // 0 hides, 1 shows
	PARAM_KEYPAD_APP                       // keypad application mode on/off
	PARAM_AUTO_REPEAT                      // keyboard auto repeat on/off
	PARAM_SWITCH_VT                        // switch to virtual terminal n
	PARAM_132_COLS                         // 1 requests 132 columns, 0 requests 80
	PARAM_BELL_PITCH_DURATION              // pitch<<16 | duration
	PARAM_MOUSE                            // mouse reporting on/off
	PARAM_BORDER                           // border colour
	PARAM_LOCAL_CURSOR                     // cursor type for this terminal
	PARAM_GLOBAL_CURSOR                    // packed cursor shape for all terminals
	PARAM_CURSOR_KEYS                      // application cursor keys on/off
	PARAM_CURSOR_STYLE                     // DECSCUSR style
)

var paramNames = map[Param]string{
	PARAM_SHOW_CURSOR:         "show_cursor",
	PARAM_KEYPAD_APP:          "keypad_app",
	PARAM_AUTO_REPEAT:         "auto_repeat",
	PARAM_SWITCH_VT:           "switch_vt",
	PARAM_132_COLS:            "132_cols",
	PARAM_BELL_PITCH_DURATION: "bell_pitch_duration",
	PARAM_MOUSE:               "mouse",
	PARAM_BORDER:              "border",
	PARAM_LOCAL_CURSOR:        "local_cursor",
	PARAM_GLOBAL_CURSOR:       "global_cursor",
	PARAM_CURSOR_KEYS:         "cursor_keys",
	PARAM_CURSOR_STYLE:        "cursor_style",
}

func (p Param) String() string {
	if n, ok := paramNames[p]; ok {
		return n
	}
	return "unknown"
}

// Emitter is everything the terminal needs from the display it drives.
//
// Every Pos and Rect passed in has already been clamped to the
// current window. Copy must behave like memmove when source and
// destination overlap. None of these may call back into the
// Terminal's Input or Write; they run synchronously on the caller's
// stack.
//
// The slice given to Respond is owned by the Terminal and is only
// valid until Respond returns.
type Emitter interface {
	Bell()
	MoveCursor(Pos)
	PutChar(Pos, rune, Attr)
	Fill(Rect, rune, Attr)
	Copy(Rect, Pos)
	SetParam(Param, int)
	Respond([]byte)
}
