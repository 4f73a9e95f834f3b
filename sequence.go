package allcolors

import (
	"cmp"
	"fmt"
	"iter"
	"log/slog"
	"runtime"
	"slices"
	"sort"
	"sync"

	"allcolors/scorer"
)

// Sequence returns the color space arranged by p. BitOrder streams the
// natural order; every other pattern sorts the whole space before the
// sequence is returned.
func Sequence(p scorer.Pattern, logger *slog.Logger) (iter.Seq[Color], error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %v", scorer.ErrUnknownPattern, p)
	}
	if !p.Sorted() {
		return Colors(), nil
	}
	colors, err := Order(p, logger)
	if err != nil {
		return nil, err
	}
	return slices.Values(colors), nil
}

// Order returns every color in the order defined by p. Colors with equal
// scores come out in no particular order.
func Order(p scorer.Pattern, logger *slog.Logger) ([]Color, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %v", scorer.ErrUnknownPattern, p)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	colors := slices.Collect(Colors())
	if !p.Sorted() {
		return colors, nil
	}

	logger.Info("sorting", "pattern", p, "colors", len(colors))
	sortColors(colors, p)
	return colors, nil
}

// sortColors sorts colors in place by ascending score under p.
func sortColors(colors []Color, p scorer.Pattern) {
	sort.Sort(&byScore{
		colors: colors,
		scores: scoreColors(colors, p),
	})
}

// scoreColors scores every color once, splitting the work in contiguous
// chunks across GOMAXPROCS workers.
func scoreColors(colors []Color, p scorer.Pattern) []float64 {
	scores := make([]float64, len(colors))

	nw := min(runtime.GOMAXPROCS(0), max(len(colors)/4096, 1))
	chunk := (len(colors) + nw - 1) / nw

	var wg sync.WaitGroup
	for lo := 0; lo < len(colors); lo += chunk {
		hi := min(lo+chunk, len(colors))
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				scores[i] = p.Score(colors[i].RGB())
			}
		}()
	}
	wg.Wait()
	return scores
}

// byScore sorts colors and their precomputed scores together.
type byScore struct {
	colors []Color
	scores []float64
}

func (s *byScore) Len() int {
	return len(s.colors)
}

// compare is negative, zero or positive as the score at i is less than,
// equal to or greater than the score at j.
func (s *byScore) compare(i, j int) int {
	return cmp.Compare(s.scores[i], s.scores[j])
}

func (s *byScore) Less(i, j int) bool {
	return s.compare(i, j) < 0
}

func (s *byScore) Swap(i, j int) {
	s.colors[i], s.colors[j] = s.colors[j], s.colors[i]
	s.scores[i], s.scores[j] = s.scores[j], s.scores[i]
}
