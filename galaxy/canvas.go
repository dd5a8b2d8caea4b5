package galaxy

// Shape is the glyph drawn at a branch node.
type Shape uint8

const (
	ShapeCircle Shape = iota
	ShapeSquare
)

func (s Shape) String() string {
	if s == ShapeSquare {
		return "square"
	}
	return "circle"
}

// GlowStop is one color stop of a radial glow.
type GlowStop struct {
	Offset float64
	Tint   Tint
}

// Glow is a radial gradient centered at (X, Y) that fades out at Radius.
// It is painted over the whole viewport.
type Glow struct {
	X, Y   float64
	Radius float64
	Stops  []GlowStop
}

// GlassStyle describes the frosted panel laid over the left side of the viewport.
type GlassStyle struct {
	// Coverage is the panel width as a fraction of the viewport width.
	Coverage float64
	// FadeStart is the fraction of the panel width after which the frost fades
	// linearly to nothing at the panel's right edge.
	FadeStart float64
	// Blur is the backdrop blur strength; raster canvases downscale by this factor.
	Blur int
	Tint Tint
}

// Canvas is the drawing surface a Loop paints each frame on. Coordinates are
// viewport pixels with the origin at the top left.
type Canvas interface {
	// Resize changes the surface dimensions.
	Resize(width, height int) error
	// Clear erases the whole surface to transparent.
	Clear()
	// Glow fills the surface with a radial gradient.
	Glow(g Glow)
	// Dot fills a circle.
	Dot(x, y, radius float64, tint Tint)
	// Line strokes a segment.
	Line(x1, y1, x2, y2, width float64, tint Tint)
	// Glyph fills a circle of radius size, or a square of half-side size, centered at
	// (x, y) with a soft halo of radius glow around it.
	Glyph(shape Shape, x, y, size, glow float64, tint Tint)
	// Frost blurs, tints and fades the region described by style.
	Frost(style GlassStyle)
}
