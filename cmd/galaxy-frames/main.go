// Command galaxy-frames renders the galaxy headlessly along a scripted pointer path
// and prints a timing report.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/plus3/galaxy/internal/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "galaxy-frames:", err)
		os.Exit(1)
	}
}

func run() error {
	var opts cli.Options
	opts.Register(flag.CommandLine)

	var cfg Config
	flag.IntVar(&cfg.Frames, "frames", 600, "Number of frames to render.")
	flag.IntVar(&cfg.Width, "width", 1280, "Viewport width.")
	flag.IntVar(&cfg.Height, "height", 720, "Viewport height.")
	flag.StringVar(&cfg.OutDir, "out", "", "Directory to save PNG frames into. Empty saves nothing.")
	flag.IntVar(&cfg.Every, "every", 60, "Save every n-th frame when -out is set.")
	flag.BoolVar(&cfg.GCPauseMetrics, "gc-pause-metrics", false, "Include GC pause totals in the report.")
	flag.Parse()

	logger, err := opts.SetupLogging(os.Stderr)
	if err != nil {
		return err
	}
	cfg.Loop, err = opts.LoopOptions()
	if err != nil {
		return err
	}
	cfg.Profile = opts.Profile

	logger.Info("rendering frames", "frames", cfg.Frames, "width", cfg.Width, "height", cfg.Height, "out", cfg.OutDir)
	report, err := Render(cfg)
	if err != nil {
		return err
	}
	logger.Info("rendering finished", "saved", len(report.Saved))

	if err := report.Generate(os.Stdout); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
