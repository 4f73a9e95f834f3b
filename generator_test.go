package allcolors

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/tdewolff/test"

	"allcolors/scorer"
)

func TestGenerateInvalidPattern(t *testing.T) {
	img, err := Generate(Config{Pattern: scorer.Pattern(12)})
	test.That(t, errors.Is(err, scorer.ErrUnknownPattern), err)
	test.That(t, img == nil)
}

func TestGenerateDefault(t *testing.T) {
	var buf bytes.Buffer
	img, err := Generate(Config{Logger: slog.New(slog.NewTextHandler(&buf, nil))})
	test.Error(t, err)

	test.T(t, img.ColorAt(0, 0), Color(0))
	test.T(t, img.ColorAt(Width-1, 0), Color(Width-1))
	test.T(t, img.ColorAt(0, 1), Color(Width))
	test.T(t, img.ColorAt(17, 300), Color(17+300*Width))
	test.T(t, img.ColorAt(Width-1, Height-1), Color(0xffffff))

	logs := buf.String()
	test.That(t, strings.Contains(logs, "msg=drawing"), logs)
	test.That(t, strings.Contains(logs, "pattern=BitOrder"), logs)
	test.That(t, strings.Contains(logs, "msg=done"), logs)
	test.That(t, !strings.Contains(logs, "msg=sorting"), logs)
}

func TestGenerateSorted(t *testing.T) {
	if testing.Short() {
		t.Skip("sorts the full color space")
	}
	var buf bytes.Buffer
	img, err := Generate(Config{Pattern: scorer.VofHSV, Logger: slog.New(slog.NewTextHandler(&buf, nil))})
	test.Error(t, err)
	test.That(t, strings.Contains(buf.String(), "msg=sorting"), buf.String())

	// VofHSV has exactly one color scoring 0 and the brightest bucket fills
	// the tail of the canvas.
	test.T(t, img.ColorAt(0, 0), Color(0))
	r, g, b := img.ColorAt(Width-1, Height-1).RGB()
	test.T(t, max(r, g, b), uint8(255))

	seen := make([]bool, NumColors)
	prev := -1.0
	for y := range Height {
		for x := range Width {
			c := img.ColorAt(x, y)
			if seen[c] {
				t.Fatalf("pixel (%d,%d): duplicate color %#06x", x, y, c)
			}
			seen[c] = true
			s := scorer.VofHSV.Score(c.RGB())
			if s < prev {
				t.Fatalf("pixel (%d,%d): score %v after %v", x, y, s, prev)
			}
			prev = s
		}
	}
}
