// Package term paints galaxy frames into the cells of a tcell screen. Each cell
// stands for a block of viewport pixels.
package term

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/plus3/galaxy/galaxy"
)

const (
	runeEmpty  = ' '
	runeStar   = '·'
	runeBright = '•'
	runeLine   = '·'
	runeCircle = '●'
	runeSquare = '■'

	// brightStar is the star radius in pixels above which a star gets a heavier dot.
	brightStar = 1.5
	// haloAlpha is how strongly a glyph tints its own cell's background.
	haloAlpha = 0.3
	// frostDim is how far frost pulls foreground colors toward the glass tint.
	frostDim = 0.5
)

type cell struct {
	r  rune
	fg colorful.Color
	bg colorful.Color
}

// Canvas implements galaxy.Canvas on a tcell screen. Paint calls only touch an
// internal cell buffer; Present copies it to the screen.
type Canvas struct {
	screen     tcell.Screen
	cellWidth  float64
	cellHeight float64

	cols, rows int
	cells      []cell
}

var _ galaxy.Canvas = (*Canvas)(nil)

// New creates a canvas on screen where each cell covers cellWidth×cellHeight
// viewport pixels.
func New(screen tcell.Screen, cellWidth, cellHeight int) *Canvas {
	return &Canvas{
		screen:     screen,
		cellWidth:  float64(max(cellWidth, 1)),
		cellHeight: float64(max(cellHeight, 1)),
	}
}

// CellSize returns the pixel block one cell covers.
func (c *Canvas) CellSize() (width, height int) {
	return int(c.cellWidth), int(c.cellHeight)
}

// Viewport returns the pixel viewport matching a screen of cols×rows cells.
func (c *Canvas) Viewport(cols, rows int) (width, height int) {
	return cols * int(c.cellWidth), rows * int(c.cellHeight)
}

// Resize reallocates the cell buffer for a width×height pixel viewport.
func (c *Canvas) Resize(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("resize canvas: negative size %dx%d", width, height)
	}
	c.cols = int(float64(width) / c.cellWidth)
	c.rows = int(float64(height) / c.cellHeight)
	c.cells = make([]cell, c.cols*c.rows)
	c.Clear()
	return nil
}

// Size returns the canvas dimensions in cells.
func (c *Canvas) Size() (cols, rows int) {
	return c.cols, c.rows
}

func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{r: runeEmpty}
	}
}

func (c *Canvas) at(x, y float64) *cell {
	col := int(math.Floor(x / c.cellWidth))
	row := int(math.Floor(y / c.cellHeight))
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return nil
	}
	return &c.cells[row*c.cols+col]
}

// center returns the pixel position of a cell's center.
func (c *Canvas) center(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * c.cellWidth, (float64(row) + 0.5) * c.cellHeight
}

// ink sets a cell's rune with a foreground blended over the cell background.
func ink(dst *cell, r rune, tint galaxy.Tint) {
	dst.r = r
	dst.fg = dst.bg.BlendRgb(tint.Color, tint.Alpha).Clamped()
}

func (c *Canvas) Glow(g galaxy.Glow) {
	if len(g.Stops) == 0 || g.Radius <= 0 {
		return
	}
	for row := range c.rows {
		for col := range c.cols {
			x, y := c.center(col, row)
			t := math.Hypot(x-g.X, y-g.Y) / g.Radius
			tint := sampleStops(g.Stops, t)
			dst := &c.cells[row*c.cols+col]
			dst.bg = dst.bg.BlendRgb(tint.Color, tint.Alpha).Clamped()
		}
	}
}

// sampleStops interpolates the gradient at offset t, padding beyond either end.
func sampleStops(stops []galaxy.GlowStop, t float64) galaxy.Tint {
	if t <= stops[0].Offset {
		return stops[0].Tint
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t > b.Offset {
			continue
		}
		f := (t - a.Offset) / (b.Offset - a.Offset)
		return galaxy.Tint{
			Color: a.Tint.Color.BlendRgb(b.Tint.Color, f),
			Alpha: a.Tint.Alpha + (b.Tint.Alpha-a.Tint.Alpha)*f,
		}
	}
	return stops[len(stops)-1].Tint
}

func (c *Canvas) Dot(x, y, radius float64, tint galaxy.Tint) {
	dst := c.at(x, y)
	if dst == nil || radius <= 0 {
		return
	}
	r := runeStar
	if radius > brightStar {
		r = runeBright
	}
	ink(dst, r, tint)
}

func (c *Canvas) Line(x1, y1, x2, y2, width float64, tint galaxy.Tint) {
	step := min(c.cellWidth, c.cellHeight) / 2
	n := max(1, int(math.Ceil(math.Hypot(x2-x1, y2-y1)/step)))
	for i := 0; i <= n; i++ {
		f := float64(i) / float64(n)
		dst := c.at(x1+(x2-x1)*f, y1+(y2-y1)*f)
		if dst == nil || dst.r == runeCircle || dst.r == runeSquare {
			continue
		}
		ink(dst, runeLine, tint)
	}
}

func (c *Canvas) Glyph(shape galaxy.Shape, x, y, size, glow float64, tint galaxy.Tint) {
	dst := c.at(x, y)
	if dst == nil {
		return
	}
	if glow > 0 {
		dst.bg = dst.bg.BlendRgb(tint.Color, tint.Alpha*haloAlpha).Clamped()
	}
	r := runeCircle
	if shape == galaxy.ShapeSquare {
		r = runeSquare
	}
	ink(dst, r, tint)
}

// Frost darkens the covered cells toward the glass tint, fading out past the
// style's fade start.
func (c *Canvas) Frost(style galaxy.GlassStyle) {
	panel := float64(c.cols) * c.cellWidth * style.Coverage
	if panel <= 0 {
		return
	}
	solid := panel * style.FadeStart
	for col := range c.cols {
		x, _ := c.center(col, 0)
		if x >= panel {
			break
		}
		m := 1.0
		if x > solid {
			m = 1 - (x-solid)/(panel-solid)
		}
		for row := range c.rows {
			dst := &c.cells[row*c.cols+col]
			dst.bg = dst.bg.BlendRgb(style.Tint.Color, style.Tint.Alpha*m).Clamped()
			dst.fg = dst.fg.BlendRgb(style.Tint.Color, frostDim*m).Clamped()
		}
	}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Present copies the cell buffer to the screen and shows it.
func (c *Canvas) Present() {
	for row := range c.rows {
		for col := range c.cols {
			cl := c.cells[row*c.cols+col]
			style := tcell.StyleDefault.Background(toTcell(cl.bg)).Foreground(toTcell(cl.fg))
			c.screen.SetContent(col, row, cl.r, nil, style)
		}
	}
	c.screen.Show()
}
