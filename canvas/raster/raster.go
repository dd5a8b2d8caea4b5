// Package raster paints galaxy frames into an RGBA pixel buffer with gogpu/gg.
package raster

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"
	"github.com/plus3/galaxy/galaxy"
	"golang.org/x/image/draw"
)

// haloAlpha is the opacity of a glyph's halo at the glyph edge.
const haloAlpha = 0.6

// Canvas implements galaxy.Canvas on a software gg context. Paint calls are
// no-ops while the surface has no area.
type Canvas struct {
	dc     *gg.Context
	width  int
	height int

	frosted *image.RGBA
}

var _ galaxy.Canvas = (*Canvas)(nil)

// New creates a canvas of the given size.
func New(width, height int) *Canvas {
	c := &Canvas{}
	// a non-positive size leaves the canvas empty until the next Resize
	_ = c.Resize(width, height)
	return c
}

// Resize reallocates the pixel buffer. A zero or negative dimension empties the
// canvas.
func (c *Canvas) Resize(width, height int) error {
	c.frosted = nil
	if width <= 0 || height <= 0 {
		c.width, c.height = 0, 0
		return nil
	}
	if c.dc == nil {
		c.dc = gg.NewContext(width, height)
	} else if err := c.dc.Resize(width, height); err != nil {
		return fmt.Errorf("resize canvas: %w", err)
	}
	c.width, c.height = width, height
	return nil
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

func (c *Canvas) empty() bool {
	return c.width == 0 || c.height == 0
}

func (c *Canvas) Clear() {
	c.frosted = nil
	if c.empty() {
		return
	}
	c.dc.Clear()
}

func rgba(t galaxy.Tint) gg.RGBA {
	r, g, b, a := t.Floats()
	return gg.RGBA{R: r, G: g, B: b, A: a}
}

func (c *Canvas) fill(what string) {
	if err := c.dc.Fill(); err != nil {
		galaxy.Logger().Debug("raster fill failed", "shape", what, "error", err)
	}
}

func (c *Canvas) stroke(what string) {
	if err := c.dc.Stroke(); err != nil {
		galaxy.Logger().Debug("raster stroke failed", "shape", what, "error", err)
	}
}

func (c *Canvas) Glow(g galaxy.Glow) {
	if c.empty() {
		return
	}
	brush := gg.NewRadialGradientBrush(g.X, g.Y, 0, g.Radius)
	for _, stop := range g.Stops {
		brush.AddColorStop(stop.Offset, rgba(stop.Tint))
	}
	c.dc.SetFillBrush(brush)
	c.dc.DrawRectangle(0, 0, float64(c.width), float64(c.height))
	c.fill("glow")
}

func (c *Canvas) Dot(x, y, radius float64, tint galaxy.Tint) {
	if c.empty() || radius <= 0 {
		return
	}
	c.dc.SetColor(rgba(tint).Color())
	c.dc.DrawCircle(x, y, radius)
	c.fill("dot")
}

func (c *Canvas) Line(x1, y1, x2, y2, width float64, tint galaxy.Tint) {
	if c.empty() || width <= 0 {
		return
	}
	r, g, b, a := tint.Floats()
	c.dc.SetRGBA(r, g, b, a)
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(x1, y1, x2, y2)
	c.stroke("line")
}

func (c *Canvas) Glyph(shape galaxy.Shape, x, y, size, glow float64, tint galaxy.Tint) {
	if c.empty() || size <= 0 {
		return
	}

	if glow > 0 {
		halo := tint
		halo.Alpha *= haloAlpha
		faded := tint
		faded.Alpha = 0
		c.dc.SetFillBrush(gg.NewRadialGradientBrush(x, y, size, size+glow).
			AddColorStop(0, rgba(halo)).
			AddColorStop(1, rgba(faded)))
		c.dc.DrawCircle(x, y, size+glow)
		c.fill("halo")
	}

	c.dc.SetFillBrush(gg.Solid(rgba(tint)))
	switch shape {
	case galaxy.ShapeSquare:
		c.dc.DrawRectangle(x-size, y-size, 2*size, 2*size)
	default:
		c.dc.DrawCircle(x, y, size)
	}
	c.fill(shape.String())
}

// Frost applies the glass panel to the frame painted so far. The result is what
// Frame returns until the next Clear.
func (c *Canvas) Frost(style galaxy.GlassStyle) {
	if c.empty() {
		return
	}
	c.frosted = frost(c.snapshot(), style)
}

func (c *Canvas) snapshot() *image.RGBA {
	img := c.dc.Image()
	if frame, ok := img.(*image.RGBA); ok {
		return frame
	}
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out
}

// Frame returns the current frame. The image is a copy; painting afterwards does
// not change it. An empty canvas yields a zero-size image.
func (c *Canvas) Frame() *image.RGBA {
	if c.empty() {
		return image.NewRGBA(image.Rectangle{})
	}
	if c.frosted != nil {
		out := image.NewRGBA(c.frosted.Bounds())
		copy(out.Pix, c.frosted.Pix)
		return out
	}
	return c.snapshot()
}

// SavePNG writes the current frame to path.
func (c *Canvas) SavePNG(path string) error {
	if c.empty() {
		return fmt.Errorf("save %s: canvas is empty", path)
	}
	if c.frosted == nil {
		if err := c.dc.SavePNG(path); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
		return nil
	}
	return savePNG(path, c.frosted)
}

// scaledSize divides n by factor, never going below one pixel.
func scaledSize(n, factor int) int {
	return max(1, int(math.Round(float64(n)/float64(factor))))
}
