package vt

import (
	"github.com/bits-and-blooms/bitset"
)

const TAB_WIDTH = 8

// tabStops records which columns carry a horizontal tab stop.
type tabStops struct {
	b *bitset.BitSet
}

// newTabStops returns stops every TAB_WIDTH columns, not including
// column 0.
func newTabStops(cols int) tabStops {
	ts := tabStops{b: bitset.New(uint(cols))}
	ts.setDefault()
	return ts
}

func (ts tabStops) setDefault() {
	ts.b.ClearAll()
	for i := uint(TAB_WIDTH); i < ts.b.Len(); i += TAB_WIDTH {
		ts.b.Set(i)
	}
}

func (ts tabStops) isSet(col int) bool {
	return col >= 0 && ts.b.Test(uint(col))
}

func (ts tabStops) set(col int) {
	if col >= 0 && uint(col) < ts.b.Len() {
		ts.b.Set(uint(col))
	}
}

func (ts tabStops) clear(col int) {
	if col >= 0 && uint(col) < ts.b.Len() {
		ts.b.Clear(uint(col))
	}
}

func (ts tabStops) clearAll() {
	ts.b.ClearAll()
}

func (ts tabStops) String() string {
	return ts.b.String()
}
