package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/galaxy/canvas/raster"
	"github.com/plus3/galaxy/ecs"
	"github.com/plus3/galaxy/ecs/debugui"
	debugui_ebiten "github.com/plus3/galaxy/ecs/debugui/ebiten"
	"github.com/plus3/galaxy/galaxy"
)

// background is the page color the transparent galaxy is composited on.
var background = color.RGBA{R: 0x03, G: 0x07, B: 0x12, A: 0xff}

// Game implements ebiten.Game around a galaxy loop.
type Game struct {
	loop   *galaxy.Loop
	canvas *raster.Canvas
	frame  *ebiten.Image

	width, height int
	cursorX       int
	cursorY       int

	// set with -debug
	imgui       *debugui_ebiten.ImguiBackend
	ui          *ecs.Storage
	uiScheduler *ecs.Scheduler
	input       *ecs.Singleton[debugui.ImguiInputState]
}

func (g *Game) pointerCaptured() bool {
	return g.input != nil && g.input.Get().WantCaptureMouse
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	if (x != g.cursorX || y != g.cursorY) && !g.pointerCaptured() {
		g.cursorX, g.cursorY = x, y
		g.loop.PointerMove(float64(x), float64(y))
	}

	dt := 1.0 / float64(ebiten.TPS())
	g.loop.Tick(dt)

	if g.imgui != nil {
		g.imgui.Frame(func() {
			g.uiScheduler.Once(dt)
		})
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	pixels := g.canvas.Frame()
	if size := pixels.Bounds().Size(); size.X > 0 && size.Y > 0 {
		if g.frame == nil || g.frame.Bounds().Size() != size {
			if g.frame != nil {
				g.frame.Deallocate()
			}
			g.frame = ebiten.NewImage(size.X, size.Y)
		}
		g.frame.WritePixels(pixels.Pix)
		screen.DrawImage(g.frame, nil)
	}

	if g.imgui != nil {
		g.imgui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.loop.Resize(outsideWidth, outsideHeight)
	}
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
