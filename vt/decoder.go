package vt

// decoder assembles UTF-8 sequences one byte at a time. It never
// fails: malformed input is dropped and the next lead byte starts
// over.
type decoder struct {
	left    uint8 // continuation bytes still expected
	partial rune  // bits collected so far
}

// feed consumes b and reports the unit it completes, if any.
func (d *decoder) feed(m Mode, b byte) (rune, bool) {
	if m.has(MODE_8BIT) {
		return rune(b), true
	}

	switch {
	case b&0x80 == 0x00:
		// One byte sequence. Anything incomplete is abandoned.
		d.left = 0
		return rune(b), true
	case b&0xe0 == 0xc0:
		d.left = 1
		d.partial = rune(b & 0x1f)
	case b&0xf0 == 0xe0:
		d.left = 2
		d.partial = rune(b & 0x0f)
	case b&0xf8 == 0xf0:
		d.left = 3
		d.partial = rune(b & 0x07)
	case b&0xc0 == 0x80:
		if d.left == 0 {
			// Stray continuation byte.
			return 0, false
		}
		d.left--
		d.partial = d.partial<<6 | rune(b&0x3f)
		if d.left == 0 {
			return d.partial, true
		}
	default:
		// 0xf8-0xff can't start anything we decode; pass them
		// through as a unit of their own.
		d.left = 0
		return rune(b), true
	}

	return 0, false
}

func (d *decoder) reset() {
	*d = decoder{}
}
