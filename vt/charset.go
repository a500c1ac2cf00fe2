package vt

import (
	"golang.org/x/text/encoding/charmap"
)

// charsetID names the glyph mapping loaded into a G register.
type charsetID uint8

const (
	CS_US_ASCII charsetID = iota
	CS_UK_NATIONAL
	CS_SPECIAL_GRAPHICS
)

func (c charsetID) String() string {
	switch c {
	case CS_UK_NATIONAL:
		return "uk"
	case CS_SPECIAL_GRAPHICS:
		return "graphics"
	}
	return "ascii"
}

// charset holds the two designated character sets (G0, G1) and which
// of them is active. SO selects G1, SI selects G0.
type charset struct {
	set uint8        // index into g
	g   [2]charsetID // designations for G0 and G1
}

func (c *charset) equal(other *charset) bool {
	return c.set == other.set && c.g[0] == other.g[0] && c.g[1] == other.g[1]
}

func (c *charset) shiftIn() {
	c.set = 0
}

func (c *charset) shiftOut() {
	c.set = 1
}

func (c *charset) designate(gset int, id charsetID) {
	c.g[gset] = id
}

func (c *charset) reset() {
	*c = charset{}
}

// process translates r through the active character set. In 8-bit
// mode glyphs come out as code page 437 values, since that is what
// 8-bit consoles load into their fonts.
func (c *charset) process(m Mode, r rune) rune {
	switch c.g[c.set] {
	case CS_UK_NATIONAL:
		if r == '#' {
			if m.has(MODE_8BIT) {
				return poundCP437
			}
			return '£'
		}
	case CS_SPECIAL_GRAPHICS:
		if m.has(MODE_8BIT) {
			if rr, ok := acs8bit[r]; ok {
				return rr
			}
		} else if rr, ok := acs[r]; ok {
			return rr
		}
	}
	return r
}

// DEC special graphics, mapped into Unicode.
var acs = map[rune]rune{
	'_': ' ',
	'`': '◆',
	'a': '▒',
	'b': '␉',
	'c': '␌',
	'd': '␍',
	'e': '␊',
	'f': '°',
	'g': '±',
	'h': '␤',
	'i': '␋',
	'j': '┘',
	'k': '┐',
	'l': '┌',
	'm': '└',
	'n': '┼',
	'o': '⎺',
	'p': '⎻',
	'q': '─',
	'r': '⎼',
	's': '⎽',
	't': '├',
	'u': '┤',
	'v': '┴',
	'w': '┬',
	'x': '│',
	'y': '≤',
	'z': '≥',
	'{': 'π',
	'|': '≠',
	'}': '£',
	'~': '·',
}

// Stand-ins for special graphics glyphs code page 437 lacks.
var cp437Substitutes = map[rune]rune{
	'◆': '♦',
	'⎺': '─',
	'⎻': '─',
	'⎼': '─',
	'⎽': '_',
}

var (
	acs8bit    = buildACS8Bit()
	poundCP437 = cp437('£', '#')
)

// buildACS8Bit derives the 8-bit special graphics table from acs.
// Glyphs with no code page 437 equivalent map to themselves.
func buildACS8Bit() map[rune]rune {
	m := make(map[rune]rune, len(acs))
	for from, to := range acs {
		if sub, ok := cp437Substitutes[to]; ok {
			to = sub
		}
		m[from] = cp437(to, from)
	}
	return m
}

func cp437(r, fallback rune) rune {
	if b, ok := charmap.CodePage437.EncodeRune(r); ok {
		return rune(b)
	}
	return fallback
}

// DisplayRune returns the Unicode glyph a display should show for a
// rune the terminal emitted. In 8-bit mode emitted runes are code
// page 437 values. Control characters come back as blanks.
func DisplayRune(eightBit bool, r rune) rune {
	if eightBit && r >= 0 && r < 0x100 {
		r = charmap.CodePage437.DecodeByte(byte(r))
	}
	if r < ' ' || r == 0x7f {
		return ' '
	}
	return r
}
