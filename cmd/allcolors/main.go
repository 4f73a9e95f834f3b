package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/tdewolff/argp"

	"allcolors"
	"allcolors/scorer"
)

type Options struct {
	Pattern string `short:"p" default:"BitOrder" desc:"Pattern name or number"`
	Verbose bool   `short:"v" desc:"Show progress"`
	Output  string `index:"0" desc:"Output image file"`
}

func main() {
	root := argp.NewCmd(&Options{}, "Paint every 24-bit color exactly once into a 4096x4096 image\n\nPatterns:\n"+patternList())
	root.Parse()
	root.PrintHelp()
}

func (cmd *Options) Run() error {
	cfg, err := cmd.Config(os.Stderr)
	if err != nil {
		return err
	}

	img, err := allcolors.Generate(cfg)
	if err != nil {
		return err
	}
	return allcolors.WriteFile(cmd.Output, img)
}

// Config validates the options and resolves them into a run configuration.
// Errors and, when verbose, progress are written to w, or to stderr if w is
// nil.
func (cmd *Options) Config(w io.Writer) (allcolors.Config, error) {
	if w == nil {
		w = os.Stderr
	}
	if strings.TrimSpace(cmd.Output) == "" {
		fmt.Fprintln(w, "ERROR: an output filename must be provided")
		return allcolors.Config{}, argp.ShowUsage
	}

	p, err := scorer.ParsePattern(cmd.Pattern)
	if err != nil {
		return allcolors.Config{}, fmt.Errorf("bad pattern: %w", err)
	}

	handler := slog.DiscardHandler
	if cmd.Verbose {
		handler = slog.NewTextHandler(w, nil)
	}
	return allcolors.Config{
		Pattern: p,
		Logger:  slog.New(handler),
	}, nil
}

func patternList() string {
	var sb strings.Builder
	for _, p := range scorer.Patterns() {
		fmt.Fprintf(&sb, "  %d %v\n", int(p), p)
	}
	return sb.String()
}
