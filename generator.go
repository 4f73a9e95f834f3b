package allcolors

import (
	"fmt"
	"log/slog"
	"time"

	"allcolors/scorer"
)

// Config holds the resolved settings of one run.
type Config struct {
	// Pattern selects the color ordering. The zero value means BitOrder.
	Pattern scorer.Pattern

	// Logger receives progress messages. A nil Logger discards them.
	Logger *slog.Logger
}

// Generate paints every 24-bit color exactly once onto a new canvas, ordered
// by cfg.Pattern.
func Generate(cfg Config) (*Canvas, error) {
	p := cfg.Pattern
	if p == 0 {
		p = scorer.BitOrder
	}
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %v", scorer.ErrUnknownPattern, p)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	start := time.Now()
	seq, err := Sequence(p, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("drawing", "pattern", p, "width", Width, "height", Height)
	img := NewCanvas()
	if err := img.Place(seq); err != nil {
		return nil, fmt.Errorf("placing %v: %w", p, err)
	}
	logger.Info("done", "pattern", p, "elapsed", time.Since(start).Round(time.Millisecond))
	return img, nil
}
