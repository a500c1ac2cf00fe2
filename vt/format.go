package vt

import (
	"fmt"
	"log/slog"
	"strings"
)

// Format is a bitmap of rendition flags.
type Format uint8

const (
	FMT_BOLD Format = 1 << iota
	FMT_UNDERLINE
	FMT_BLINK
	FMT_REVERSE
	// FMT_CJK_RIGHT marks the right hand cell of a double width
	// glyph. The rune passed with it is the same as the left half.
	FMT_CJK_RIGHT
)

var formatNames = []struct {
	f    Format
	name string
}{
	{FMT_BOLD, "bold"},
	{FMT_UNDERLINE, "underline"},
	{FMT_BLINK, "blink"},
	{FMT_REVERSE, "reverse"},
	{FMT_CJK_RIGHT, "cjk_right"},
}

func (f Format) Has(o Format) bool {
	return f&o != 0
}

func (f Format) String() string {
	var parts []string
	for _, fn := range formatNames {
		if f.Has(fn.f) {
			parts = append(parts, fn.name)
		}
	}
	return strings.Join(parts, "|")
}

// Attr is the rendition attached to every cell the terminal writes.
type Attr struct {
	Format Format
	FG, BG Color
}

// DefaultAttr is white on black with no formatting.
var DefaultAttr = Attr{FG: COLOR_WHITE, BG: COLOR_BLACK}

func (a Attr) String() string {
	return fmt.Sprintf("fg: %s; bg: %s; format: %s", a.FG, a.BG, a.Format)
}

// applySGR returns cur updated by the SGR parameters in p. def is the
// attribute that reset (0) and the default colour codes restore.
func applySGR(cur, def Attr, p *params) Attr {
	n := p.count()
	if n == 0 {
		return def
	}

	for i := 0; i < n; i++ {
		item := p.get(i)
		switch {
		case item == SGR_RESET:
			cur = def
		case item == SGR_BOLD:
			cur.Format |= FMT_BOLD
		case item == SGR_UNDERLINE:
			cur.Format |= FMT_UNDERLINE
		case item == SGR_BLINK:
			cur.Format |= FMT_BLINK
		case item == SGR_REVERSE:
			cur.Format |= FMT_REVERSE
		case item == SGR_NORMAL:
			cur.Format &^= FMT_BOLD
		case item == SGR_UNDERLINE_OFF:
			cur.Format &^= FMT_UNDERLINE
		case item == SGR_BLINK_OFF:
			cur.Format &^= FMT_BLINK
		case item == SGR_REVERSE_OFF:
			cur.Format &^= FMT_REVERSE
		case item >= SGR_FG_BASE && item <= SGR_FG_BASE+7:
			cur.FG = Color(item - SGR_FG_BASE)
		case item == SGR_SET_FG:
			// Only the 256 colour form (38;5;n) is understood.
			if i+2 >= n || p.get(i+1) != SGR_EXT_256 {
				continue
			}
			cur.FG = Color(p.get(i + 2))
			i += 2
		case item == SGR_FG_DEF:
			cur.FG = def.FG
		case item >= SGR_BG_BASE && item <= SGR_BG_BASE+7:
			cur.BG = Color(item - SGR_BG_BASE)
		case item == SGR_SET_BG:
			if i+2 >= n || p.get(i+1) != SGR_EXT_256 {
				continue
			}
			cur.BG = Color(p.get(i + 2))
			i += 2
		case item == SGR_BG_DEF:
			cur.BG = def.BG
		case item >= SGR_FG_BRIGHT && item <= SGR_FG_BRIGHT+7:
			cur.FG = Color(item-SGR_FG_BRIGHT) | COLOR_LIGHT
		case item >= SGR_BG_BRIGHT && item <= SGR_BG_BRIGHT+7:
			cur.BG = Color(item-SGR_BG_BRIGHT) | COLOR_LIGHT
		default:
			slog.Debug("unimplemented SGR attribute", "param", item)
		}
	}

	return cur
}
