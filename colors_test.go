package allcolors

import (
	"image/color"
	"testing"

	"github.com/tdewolff/test"
)

func TestColorRGB(t *testing.T) {
	c := FromRGB(0x12, 0x34, 0x56)
	test.T(t, c, Color(0x123456))

	r, g, b := c.RGB()
	test.T(t, r, uint8(0x12))
	test.T(t, g, uint8(0x34))
	test.T(t, b, uint8(0x56))
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := Color(0xff8000).RGBA()
	test.T(t, r, uint32(0xffff))
	test.T(t, g, uint32(0x8080))
	test.T(t, b, uint32(0))
	test.T(t, a, uint32(0xffff))

	// agrees with the standard library
	want := color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff}
	wr, wg, wb, wa := want.RGBA()
	r, g, b, a = FromRGB(0x12, 0x34, 0x56).RGBA()
	test.T(t, []uint32{r, g, b, a}, []uint32{wr, wg, wb, wa})
}

func TestRGB24Model(t *testing.T) {
	test.T(t, RGB24Model.Convert(Color(0xabcdef)), color.Color(Color(0xabcdef)))
	test.T(t, RGB24Model.Convert(color.RGBA{R: 1, G: 2, B: 3, A: 0xff}), color.Color(Color(0x010203)))
	test.T(t, RGB24Model.Convert(color.Gray{Y: 0x80}), color.Color(Color(0x808080)))
	test.T(t, RGB24Model.Convert(color.NRGBA{R: 0xff, A: 0xff}), color.Color(Color(0xff0000)))
}

func TestColors(t *testing.T) {
	n := 0
	prev := Color(0)
	for c := range Colors() {
		if c != Color(n) {
			t.Fatalf("color %d: got %#06x", n, c)
		}
		prev = c
		n++
	}
	test.T(t, n, NumColors)
	test.T(t, prev, Color(0xffffff))
	test.T(t, Width*Height, NumColors)
}

func TestColorsRestart(t *testing.T) {
	seq := Colors()
	for range 2 {
		var got []Color
		for c := range seq {
			got = append(got, c)
			if len(got) == 3 {
				break
			}
		}
		test.T(t, got, []Color{0, 1, 2})
	}
}
