// Package allcolors paints the whole 24-bit color space onto a single image.
package allcolors

import (
	"image/color"
	"iter"
)

const (
	// NumColors is the size of the 24-bit color space.
	NumColors = 1 << 24

	Width  = 4096
	Height = 4096
)

// Color is a packed 24-bit RGB value laid out as 0xRRGGBB.
type Color uint32

// RGB24Model converts any color to a Color, dropping alpha.
var RGB24Model color.Model = color.ModelFunc(rgb24Model)

func FromRGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c>>16) & 0xff
	r |= r << 8
	g = uint32(c>>8) & 0xff
	g |= g << 8
	b = uint32(c) & 0xff
	b |= b << 8
	return r, g, b, 0xffff
}

func rgb24Model(c color.Color) color.Color {
	if _, ok := c.(Color); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return FromRGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// Colors yields every Color in ascending order. Each range over the returned
// sequence starts again from black.
func Colors() iter.Seq[Color] {
	return func(yield func(Color) bool) {
		for c := range Color(NumColors) {
			if !yield(c) {
				return
			}
		}
	}
}
