// Command galaxy shows the glycan galaxy in a resizable window.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/galaxy/canvas/raster"
	"github.com/plus3/galaxy/ecs"
	"github.com/plus3/galaxy/ecs/debugui"
	debugui_ebiten "github.com/plus3/galaxy/ecs/debugui/ebiten"
	"github.com/plus3/galaxy/galaxy"
	"github.com/plus3/galaxy/internal/cli"
)

const title = "Glycan Galaxy"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "galaxy:", err)
		os.Exit(1)
	}
}

func run() error {
	var opts cli.Options
	opts.Register(flag.CommandLine)
	width := flag.Int("width", 1280, "Initial window width.")
	height := flag.Int("height", 720, "Initial window height.")
	debug := flag.Bool("debug", false, "Show the ImGui inspector.")
	flag.Parse()

	logger, err := opts.SetupLogging(os.Stderr)
	if err != nil {
		return err
	}
	loopOpts, err := opts.LoopOptions()
	if err != nil {
		return err
	}

	canvas := raster.New(*width, *height)
	loop := galaxy.New(canvas, append(loopOpts, galaxy.WithViewport(*width, *height))...)

	game := &Game{loop: loop, canvas: canvas}

	if *debug {
		game.imgui = debugui_ebiten.NewImguiBackend(title, *width, *height)
		game.ui = debugui.NewStorage()
		game.uiScheduler = ecs.NewScheduler(game.ui)
		game.uiScheduler.Register(&debugui.ImguiSystem{})
		game.input = ecs.NewSingleton[debugui.ImguiInputState](game.ui)
		spawnGalaxyWindow(game.ui, loop)
		debugui.SpawnInspector(game.ui, loop.Storage(), loop.Scheduler())
	} else {
		ebiten.SetWindowSize(*width, *height)
		ebiten.SetWindowTitle(title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Info("window starting", "width", *width, "height", *height, "debug", *debug)
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
