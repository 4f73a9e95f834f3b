package scorer

import "math"

// Score returns the ordering key of the color (r, g, b) under p. Scores are
// only meaningful relative to other scores of the same pattern.
//
// BitOrder scores a color by its packed value, so sorting by score
// reproduces the natural order. Score panics on an invalid pattern.
func (p Pattern) Score(r, g, b uint8) float64 {
	switch p {
	case BitOrder:
		return float64(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
	case Luminance:
		return luminance(r, g, b)
	case AERT:
		return aert(r, g, b)
	case HSP:
		return hsp(r, g, b)
	case WCAG2:
		return wcag2(r, g, b)
	case VofHSV:
		return vOfHSV(r, g, b)
	case IofHSI:
		return iOfHSI(r, g, b)
	case LofHSL:
		return lOfHSL(r, g, b)
	}
	panic("scorer: invalid pattern " + p.String())
}

// Products are converted to float64 before summing so the compiler cannot
// fuse them into multiply-adds. Scores must be bit-identical on every
// architecture.

// https://en.wikipedia.org/wiki/Relative_luminance
func luminance(r, g, b uint8) float64 {
	return float64(0.2126*float64(r)) + float64(0.7152*float64(g)) + float64(0.0722*float64(b))
}

// http://www.w3.org/TR/AERT#color-contrast
func aert(r, g, b uint8) float64 {
	return float64(0.299*float64(r)) + float64(0.587*float64(g)) + float64(0.114*float64(b))
}

// http://alienryderflex.com/hsp.html
func hsp(r, g, b uint8) float64 {
	fr, fg, fb := float64(r), float64(g), float64(b)
	return math.Sqrt(float64(0.299*fr*fr) + float64(0.587*fg*fg) + float64(0.114*fb*fb))
}

// http://www.w3.org/TR/WCAG20/#relativeluminancedef
func wcag2(r, g, b uint8) float64 {
	return float64(0.2126*wcag2Linear(r)) + float64(0.7152*wcag2Linear(g)) + float64(0.0722*wcag2Linear(b))
}

// wcag2Linear maps an sRGB channel to linear light. The 0.03928 threshold is
// the one printed in WCAG 2.0, not the 0.04045 of the sRGB standard.
func wcag2Linear(c uint8) float64 {
	v := float64(c) / 255.0
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func vOfHSV(r, g, b uint8) float64 {
	return float64(max(r, g, b))
}

// iOfHSI weights blue alone by a third. This is not the HSI intensity
// (r+g+b)/3; existing renders depend on the formula as written.
func iOfHSI(r, g, b uint8) float64 {
	return float64(r) + float64(g) + float64(b)/3.0
}

// lOfHSL halves only the minimum. This is not the HSL lightness
// (max+min)/2; existing renders depend on the formula as written.
func lOfHSL(r, g, b uint8) float64 {
	return float64(max(r, g, b)) + float64(min(r, g, b))/2.0
}
