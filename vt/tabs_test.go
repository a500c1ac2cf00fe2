package vt

import "testing"

func TestTabStops(t *testing.T) {
	ts := newTabStops(20)
	for col, want := range map[int]bool{0: false, 7: false, 8: true, 16: true, 19: false, 20: false, -1: false} {
		if got := ts.isSet(col); got != want {
			t.Errorf("Got %t for column %d, wanted %t", got, col, want)
		}
	}

	ts.set(3)
	ts.clear(8)
	ts.set(25) // out of range, ignored
	if !ts.isSet(3) || ts.isSet(8) || ts.isSet(25) {
		t.Errorf("Got %s after set and clear", ts)
	}

	ts.clearAll()
	for col := 0; col < 20; col++ {
		if ts.isSet(col) {
			t.Errorf("Column %d still set after clearAll", col)
		}
	}

	ts.setDefault()
	if !ts.isSet(8) || ts.isSet(3) {
		t.Errorf("Got %s after setDefault", ts)
	}
}
