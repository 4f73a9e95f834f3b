// Package scorer maps colors to the scalar keys used to order the color
// space.
package scorer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownPattern is returned for pattern names or codes that do not
// identify one of the built-in patterns.
var ErrUnknownPattern = errors.New("unknown pattern")

// Pattern selects the rule used to order the color space. The numeric values
// are the codes accepted on the command line.
type Pattern int

const (
	BitOrder Pattern = iota + 1
	Luminance
	AERT
	HSP
	WCAG2
	VofHSV
	IofHSI
	LofHSL
)

var patternNames = [...]string{
	BitOrder:  "BitOrder",
	Luminance: "Luminance",
	AERT:      "AERT",
	HSP:       "HSP",
	WCAG2:     "WCAG2",
	VofHSV:    "VofHSV",
	IofHSI:    "IofHSI",
	LofHSL:    "LofHSL",
}

// Patterns returns every valid pattern in code order.
func Patterns() []Pattern {
	ps := make([]Pattern, 0, len(patternNames)-1)
	for p := BitOrder; p <= LofHSL; p++ {
		ps = append(ps, p)
	}
	return ps
}

func (p Pattern) Valid() bool {
	return BitOrder <= p && p <= LofHSL
}

// Sorted reports whether p orders colors by score rather than passing the
// natural order through.
func (p Pattern) Sorted() bool {
	return p.Valid() && p != BitOrder
}

func (p Pattern) String() string {
	if !p.Valid() {
		return "Pattern(" + strconv.Itoa(int(p)) + ")"
	}
	return patternNames[p]
}

// ParsePattern resolves a pattern from its name, matched case-insensitively,
// or from its numeric code.
func ParsePattern(s string) (Pattern, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if p := Pattern(n); p.Valid() {
			return p, nil
		}
		return 0, fmt.Errorf("%w: code %d", ErrUnknownPattern, n)
	}
	for _, p := range Patterns() {
		if strings.EqualFold(s, patternNames[p]) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPattern, s)
}
