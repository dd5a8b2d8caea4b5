package galaxy

import "math"

const (
	rootBranchAngle  = -math.Pi / 2
	rootBranchLength = 20.0
	branchFalloff    = 0.8
	branchSpread     = math.Pi / 4
	glyphSize        = 6.0
	branchLineWidth  = 2.0
	glyphGlow        = 10.0
)

// drawOrnament paints an ornament's branch tree rooted at its projected position,
// growing upward.
func drawOrnament(c Canvas, o *Ornament, p *Projection) {
	if len(o.Branch.Nodes) == 0 {
		return
	}
	b := branchPainter{canvas: c, branch: &o.Branch, sizeScale: o.SizeScale, scale: p.Scale}
	b.paint(0, p.X, p.Y, rootBranchAngle, rootBranchLength*o.SizeScale*p.Scale)
}

type branchPainter struct {
	canvas    Canvas
	branch    *Branch
	sizeScale float64
	scale     float64
}

// paint draws node's subtree depth first: each connecting line goes down before the
// child's own subtree, and the node's glyph goes last so it covers incoming lines.
func (b *branchPainter) paint(index int, x, y, angle, length float64) {
	node := &b.branch.Nodes[index]

	for i, child := range node.Children {
		dir := angle
		if len(node.Children) > 1 {
			if i == 0 {
				dir -= branchSpread
			} else {
				dir += branchSpread
			}
		}

		nx := x + math.Cos(dir)*length
		ny := y + math.Sin(dir)*length
		b.canvas.Line(x, y, nx, ny, branchLineWidth*b.scale, Opaque(node.Color))
		b.paint(child, nx, ny, dir, length*branchFalloff)
	}

	b.canvas.Glyph(node.Shape, x, y, glyphSize*b.sizeScale*b.scale, glyphGlow*b.scale, Opaque(node.Color))
}
