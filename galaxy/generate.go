package galaxy

import "math"

const (
	maxBranchDepth   = 3
	branchPruneDepth = 0.2

	minOrbitRadius    = 150.0
	orbitRadiusSpread = 400.0
	minOrbitSpeed     = 0.002
	orbitSpeedSpread  = 0.005
	innerOrbitLimit   = 250.0
	innerSpeedFactor  = 1.2
	outerSpeedFactor  = 0.7
	verticalScatter   = 150.0
	minSizeScale      = 0.5
	sizeScaleSpread   = 0.5

	starFarDepth     = 2000.0
	starSpreadFactor = 3.0
	maxStarSize      = 1.5
)

// NewBranch grows a branch tree. Each node draws its shape and color, and a node at
// depth d below maxBranchDepth sprouts one or two children unless a uniform sample
// falls at or under 0.2·d, so trees thin out as they deepen.
func NewBranch(rng Random, palette Palette) Branch {
	var b Branch
	b.grow(rng, palette, 0)
	return b
}

func (b *Branch) grow(rng Random, palette Palette, depth int) int {
	shape := ShapeSquare
	if rng.Float64() > 0.5 {
		shape = ShapeCircle
	}

	index := len(b.Nodes)
	b.Nodes = append(b.Nodes, BranchNode{
		Shape: shape,
		Color: palette.Pick(rng),
		Depth: depth,
	})

	if depth < maxBranchDepth && rng.Float64() > branchPruneDepth*float64(depth) {
		count := int(rng.Float64()*2) + 1
		for range count {
			child := b.grow(rng, palette, depth+1)
			b.Nodes[index].Children = append(b.Nodes[index].Children, child)
		}
	}
	return index
}

// MaxDepth returns the deepest node depth, or -1 for an empty tree.
func (b Branch) MaxDepth() int {
	depth := -1
	for _, n := range b.Nodes {
		depth = max(depth, n.Depth)
	}
	return depth
}

// OrbitalSpeed scales a base angular speed by orbit radius: inner orbits, up to and
// including innerOrbitLimit, turn faster than outer ones.
func OrbitalSpeed(base, radius float64) float64 {
	if radius > innerOrbitLimit {
		return base * outerSpeedFactor
	}
	return base * innerSpeedFactor
}

// NewOrnament draws a new ornament. Samples are taken in a fixed order (angle,
// radius, speed, vertical offset, branch tree, size) so a seeded source always
// yields the same galaxy.
func NewOrnament(rng Random, palette Palette) Ornament {
	var o Ornament
	o.Angle = rng.Float64() * 2 * math.Pi
	o.Radius = minOrbitRadius + rng.Float64()*orbitRadiusSpread
	o.Speed = OrbitalSpeed(minOrbitSpeed+rng.Float64()*orbitSpeedSpread, o.Radius)
	o.YOffset = (rng.Float64() - 0.5) * verticalScatter
	o.Branch = NewBranch(rng, palette)
	o.SizeScale = minSizeScale + rng.Float64()*sizeScaleSpread
	return o
}

// NewStar places a star at a random depth within the field.
func NewStar(rng Random, vp Viewport) Star {
	var s Star
	s.Reset(rng, vp)
	s.Z = rng.Float64() * starFarDepth
	return s
}

// Reset sends the star back to the far plane at a new lateral offset.
func (s *Star) Reset(rng Random, vp Viewport) {
	s.X = (rng.Float64() - 0.5) * vp.Width * starSpreadFactor
	s.Y = (rng.Float64() - 0.5) * vp.Height * starSpreadFactor
	s.Z = starFarDepth
	s.Size = rng.Float64() * maxStarSize
	s.Opacity = rng.Float64()
}

// Advance moves the star speed units toward the viewer, resetting it once it
// crosses the viewer plane.
func (s *Star) Advance(speed float64, rng Random, vp Viewport) {
	s.Z -= speed
	if s.Z <= 0 {
		s.Reset(rng, vp)
	}
}
