package vt

// stateFlags are the mutable mode bits of a Terminal. Unlike Mode they
// are cleared by a reset.
type stateFlags uint16

const (
	FLAG_WRAPPED    stateFlags = 1 << iota // a glyph was written in the last column; the next one wraps
	FLAG_AUTOWRAP                          // DECAWM
	FLAG_INSERT                            // IRM
	FLAG_ORIGIN                            // DECOM
	FLAG_CURSORKEYS                        // DECCKM
	FLAG_INSTRING                          // discarding an OSC or DCS string
)

func (f stateFlags) has(o stateFlags) bool {
	return f&o != 0
}

func (f *stateFlags) set(o stateFlags, val bool) {
	if val {
		*f |= o
	} else {
		*f &^= o
	}
}
