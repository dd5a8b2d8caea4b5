package galaxy

import "github.com/lucasb-eyer/go-colorful"

// Tint is a color with an opacity in [0, 1].
type Tint struct {
	colorful.Color
	Alpha float64
}

// Opaque returns c at full opacity.
func Opaque(c colorful.Color) Tint {
	return Tint{Color: c, Alpha: 1}
}

// Floats returns the tint as straight (non-premultiplied) components in [0, 1].
func (t Tint) Floats() (r, g, b, a float64) {
	c := t.Clamped()
	return c.R, c.G, c.B, t.Alpha
}

// Palette is the fixed set of colors ornament nodes are painted with.
type Palette []colorful.Color

// DefaultPalette holds the theme colors: cyan, purple, blue, pink.
var DefaultPalette = Palette{
	mustHex("#5eead4"),
	mustHex("#a855f7"),
	mustHex("#3b82f6"),
	mustHex("#f472b6"),
}

// Pick draws one palette entry with a single uniform sample.
func (p Palette) Pick(rng Random) colorful.Color {
	i := int(rng.Float64() * float64(len(p)))
	return p[min(i, len(p)-1)]
}

var (
	starColor  = colorful.Color{R: 1, G: 1, B: 1}
	coreInner  = Tint{Color: mustHex("#a855f7"), Alpha: 0.15}
	coreMiddle = Tint{Color: mustHex("#5eead4"), Alpha: 0.05}
	coreOuter  = Tint{Color: colorful.Color{}, Alpha: 0}
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
