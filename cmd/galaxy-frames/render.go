package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/plus3/galaxy/canvas/raster"
	"github.com/plus3/galaxy/galaxy"
)

// pointerOrbit is the radius of the scripted pointer circle, as a fraction of the
// viewport.
const pointerOrbit = 0.4

// Config describes one headless run.
type Config struct {
	Profile        string
	Frames         int
	Width, Height  int
	OutDir         string
	Every          int
	GCPauseMetrics bool
	Loop           []galaxy.Option
}

// PointerAt is the scripted pointer position for frame i of n: one full circle
// around the viewport center over the run.
func PointerAt(i, n int, width, height float64) (x, y float64) {
	angle := 2 * math.Pi * float64(i) / float64(max(n, 1))
	return width/2 + math.Cos(angle)*width*pointerOrbit,
		height/2 + math.Sin(angle)*height*pointerOrbit
}

// Render runs the loop for cfg.Frames ticks on a raster canvas.
func Render(cfg Config) (*Report, error) {
	if cfg.Frames <= 0 {
		return nil, fmt.Errorf("frames must be positive, got %d", cfg.Frames)
	}
	if cfg.OutDir != "" {
		if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}
	every := max(cfg.Every, 1)

	canvas := raster.New(cfg.Width, cfg.Height)
	loop := galaxy.New(canvas, append(cfg.Loop, galaxy.WithViewport(cfg.Width, cfg.Height))...)

	report := &Report{
		Profile:        loop.Profile().Name,
		Frames:         cfg.Frames,
		Width:          cfg.Width,
		Height:         cfg.Height,
		GCPauseMetrics: cfg.GCPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	start := time.Now()
	w, h := float64(cfg.Width), float64(cfg.Height)
	for i := range cfg.Frames {
		loop.PointerMove(PointerAt(i, cfg.Frames, w, h))

		tickStart := time.Now()
		loop.Tick(1.0 / 60.0)
		report.FrameTime.Samples = append(report.FrameTime.Samples, time.Since(tickStart))

		if cfg.OutDir != "" && i%every == 0 {
			path := filepath.Join(cfg.OutDir, fmt.Sprintf("frame_%05d.png", i))
			if err := canvas.SavePNG(path); err != nil {
				return nil, err
			}
			report.Saved = append(report.Saved, path)
		}
	}

	report.TotalTime = time.Since(start)
	report.FrameTime.Finalize()
	report.Systems = loop.Stats().Systems
	report.Visible = len(loop.Snapshot())
	report.Rotation = loop.Rotation()
	runtime.ReadMemStats(&report.MemStatsEnd)
	return report, nil
}
