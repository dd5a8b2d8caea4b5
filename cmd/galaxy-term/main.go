// Command galaxy-term shows the glycan galaxy in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/galaxy/internal/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "galaxy-term:", err)
		os.Exit(1)
	}
}

func run() error {
	var opts cli.Options
	opts.Register(flag.CommandLine)
	cellWidth := flag.Int("cell-width", 8, "Viewport pixels per terminal column.")
	cellHeight := flag.Int("cell-height", 16, "Viewport pixels per terminal row.")
	logFile := flag.String("log-file", "", "Write logs here; the terminal itself is busy drawing.")
	flag.Parse()

	var logOut io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	if _, err := opts.SetupLogging(logOut); err != nil {
		return err
	}
	loopOpts, err := opts.LoopOptions()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	app := newApp(screen, *cellWidth, *cellHeight, loopOpts...)
	app.run(16 * time.Millisecond)
	return nil
}
