package allcolors

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// Format is an output image encoding.
type Format int

const (
	PNG Format = iota
	TIFF
	BMP
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case TIFF:
		return "tiff"
	case BMP:
		return "bmp"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatOf picks the encoding from the file extension. Unknown or missing
// extensions get PNG.
func FormatOf(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".tif", ".tiff":
		return TIFF
	case ".bmp":
		return BMP
	}
	return PNG
}

// Encode writes img to w. Images are first converted to 8-bit RGBA so that
// PNG and BMP store opaque images as 24-bit RGB. TIFF keeps an alpha sample,
// which is always fully opaque for a Canvas.
func Encode(w io.Writer, img image.Image, f Format) error {
	img = to8Bit(img)
	switch f {
	case PNG:
		return png.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case BMP:
		return bmp.Encode(w, img)
	}
	return fmt.Errorf("unknown format: %v", f)
}

// WriteFile encodes img into filename in the format given by its extension.
// A file that fails to encode is removed.
func WriteFile(filename string, img image.Image) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}

	if err := Encode(f, img, FormatOf(filename)); err != nil {
		f.Close()
		os.Remove(filename)
		return fmt.Errorf("could not encode %s: %w", filename, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(filename)
		return fmt.Errorf("could not write %s: %w", filename, err)
	}
	return nil
}

func to8Bit(img image.Image) image.Image {
	switch m := img.(type) {
	case *image.RGBA, *image.NRGBA:
		return m
	case *Canvas:
		return m.ToRGBA()
	}
	b := img.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, img, b.Min, draw.Src)
	return dst
}
