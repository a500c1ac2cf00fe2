package vt

import (
	"slices"
	"testing"
)

func feedAll(d *decoder, m Mode, in []byte) []rune {
	got := []rune{}
	for _, b := range in {
		if r, ok := d.feed(m, b); ok {
			got = append(got, r)
		}
	}
	return got
}

func TestDecoderUTF8(t *testing.T) {
	cases := []struct {
		in   []byte
		want []rune
	}{
		{[]byte("abc"), []rune{'a', 'b', 'c'}},
		{[]byte("é"), []rune{'é'}},
		{[]byte("€"), []rune{'€'}},
		{[]byte("𝄞"), []rune{'𝄞'}},
		{[]byte("a€b"), []rune{'a', '€', 'b'}},
		// truncated euro, then a letter
		{[]byte{0xe2, 0x82, 'A'}, []rune{'A'}},
		// stray continuation bytes are dropped
		{[]byte{0x82, 0xac, 'x'}, []rune{'x'}},
		// a new lead byte abandons the old sequence
		{[]byte{0xe2, 0x82, 0xc3, 0xa9}, []rune{'é'}},
		// too many continuation bytes; the extra one is stray
		{[]byte{0xc3, 0xa9, 0xa9}, []rune{'é'}},
		// 5 and 6 byte leads are units of their own
		{[]byte{0xf8, 'a'}, []rune{0xf8, 'a'}},
		{[]byte{0xe2, 0xfc, 0x82, 0xac}, []rune{0xfc}},
	}

	for i, c := range cases {
		d := &decoder{}
		if got := feedAll(d, 0, c.in); !slices.Equal(got, c.want) {
			t.Errorf("%d: Got %q, wanted %q", i, got, c.want)
		}
	}
}

func TestDecoder8Bit(t *testing.T) {
	d := &decoder{}
	in := []byte{'a', 0xe2, 0x82, 0xac, 0xff}
	want := []rune{'a', 0xe2, 0x82, 0xac, 0xff}
	if got := feedAll(d, MODE_8BIT, in); !slices.Equal(got, want) {
		t.Errorf("Got %q, wanted %q", got, want)
	}
}

func TestDecoderSplitAcrossCalls(t *testing.T) {
	d := &decoder{}
	euro := []byte("€")
	if got := feedAll(d, 0, euro[:1]); len(got) != 0 {
		t.Fatalf("Got %q from a partial sequence, wanted nothing", got)
	}
	if got := feedAll(d, 0, euro[1:]); !slices.Equal(got, []rune{'€'}) {
		t.Errorf("Got %q, wanted %q", got, []rune{'€'})
	}
}
