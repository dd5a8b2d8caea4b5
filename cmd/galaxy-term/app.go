package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/galaxy/canvas/term"
	"github.com/plus3/galaxy/galaxy"
)

type app struct {
	screen tcell.Screen
	canvas *term.Canvas
	loop   *galaxy.Loop
}

func newApp(screen tcell.Screen, cellWidth, cellHeight int, opts ...galaxy.Option) *app {
	canvas := term.New(screen, cellWidth, cellHeight)
	cols, rows := screen.Size()
	w, h := canvas.Viewport(cols, rows)
	loop := galaxy.New(canvas, append(opts, galaxy.WithViewport(w, h))...)
	return &app{screen: screen, canvas: canvas, loop: loop}
}

// handle applies one terminal event. It returns false when the user asked to quit.
func (a *app) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		cw, ch := a.canvas.CellSize()
		a.loop.PointerMove((float64(col)+0.5)*float64(cw), (float64(row)+0.5)*float64(ch))

	case *tcell.EventResize:
		cols, rows := ev.Size()
		a.loop.Resize(a.canvas.Viewport(cols, rows))
		a.screen.Sync()
	}
	return true
}

func (a *app) frame(dt float64) {
	a.loop.Tick(dt)
	a.canvas.Present()
}

func (a *app) run(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !a.handle(ev) {
				return
			}

		case now := <-ticker.C:
			a.frame(now.Sub(last).Seconds())
			last = now
		}
	}
}
