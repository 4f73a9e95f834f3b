package allcolors

import (
	"errors"
	"image"
	"image/color"
	"iter"
)

var (
	// ErrShortSequence is returned by Place when the sequence ends before
	// every pixel is written.
	ErrShortSequence = errors.New("color sequence shorter than canvas")

	// ErrLongSequence is returned by Place when the sequence has colors left
	// after the last pixel.
	ErrLongSequence = errors.New("color sequence longer than canvas")
)

// Canvas is an opaque 24-bit RGB image, three bytes per pixel.
type Canvas struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix holds the pixels as R, G, B byte triples in row-major order.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

// NewCanvas returns a black Width×Height canvas, large enough to hold every
// color exactly once.
func NewCanvas() *Canvas {
	return newCanvas(Width, Height)
}

func newCanvas(w, h int) *Canvas {
	return &Canvas{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, 3*w*h),
		Stride: 3 * w,
	}
}

func (p *Canvas) ColorModel() color.Model {
	return RGB24Model
}

func (p *Canvas) Bounds() image.Rectangle {
	return p.Rect
}

// Opaque reports true; a canvas has no alpha channel.
func (p *Canvas) Opaque() bool {
	return true
}

// ToRGBA copies the canvas into an *image.RGBA with opaque alpha, the layout
// the standard encoders write at 8 bits per channel.
func (p *Canvas) ToRGBA() *image.RGBA {
	w, h := p.Rect.Dx(), p.Rect.Dy()
	dst := image.NewRGBA(p.Rect)
	for y := range h {
		src := p.Pix[y*p.Stride : y*p.Stride+3*w]
		row := dst.Pix[y*dst.Stride : y*dst.Stride+4*w]
		for x := range w {
			row[4*x], row[4*x+1], row[4*x+2], row[4*x+3] = src[3*x], src[3*x+1], src[3*x+2], 0xff
		}
	}
	return dst
}

func (p *Canvas) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}

func (p *Canvas) At(x, y int) color.Color {
	return p.ColorAt(x, y)
}

func (p *Canvas) ColorAt(x, y int) Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return 0
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3]
	return FromRGB(s[0], s[1], s[2])
}

func (p *Canvas) Set(x, y int, c color.Color) {
	p.SetColor(x, y, rgb24Model(c).(Color))
}

func (p *Canvas) SetColor(x, y int, c Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3]
	s[0], s[1], s[2] = c.RGB()
}

// Place writes seq onto the canvas in raster order, left to right within a
// row and rows top to bottom. The sequence must hold exactly one color per
// pixel.
func (p *Canvas) Place(seq iter.Seq[Color]) error {
	next, stop := iter.Pull(seq)
	defer stop()

	w, h := p.Rect.Dx(), p.Rect.Dy()
	for y := range h {
		row := p.Pix[y*p.Stride : y*p.Stride+3*w]
		for x := range w {
			c, ok := next()
			if !ok {
				return ErrShortSequence
			}
			row[3*x], row[3*x+1], row[3*x+2] = c.RGB()
		}
	}
	if _, ok := next(); ok {
		return ErrLongSequence
	}
	return nil
}
