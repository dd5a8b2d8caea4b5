package galaxy_test

import "github.com/plus3/galaxy/galaxy"

type op struct {
	Kind  string
	Shape galaxy.Shape
	X, Y  float64
	X2    float64
	Y2    float64
	Size  float64
	Glow  float64
	Tint  galaxy.Tint
}

// recorder is a Canvas that records every paint call of the current frame.
type recorder struct {
	Width, Height int
	Resizes       int
	Frames        int
	Ops           []op
	Frosted       []galaxy.GlassStyle
	Glows         []galaxy.Glow
	ResizeErr     error
}

func (r *recorder) Resize(width, height int) error {
	r.Resizes++
	if r.ResizeErr != nil {
		return r.ResizeErr
	}
	r.Width, r.Height = width, height
	return nil
}

func (r *recorder) Clear() {
	r.Frames++
	r.Ops = append(r.Ops[:0], op{Kind: "clear"})
}

func (r *recorder) Glow(g galaxy.Glow) {
	r.Glows = append(r.Glows, g)
	r.Ops = append(r.Ops, op{Kind: "glow", X: g.X, Y: g.Y, Size: g.Radius})
}

func (r *recorder) Dot(x, y, radius float64, tint galaxy.Tint) {
	r.Ops = append(r.Ops, op{Kind: "dot", X: x, Y: y, Size: radius, Tint: tint})
}

func (r *recorder) Line(x1, y1, x2, y2, width float64, tint galaxy.Tint) {
	r.Ops = append(r.Ops, op{Kind: "line", X: x1, Y: y1, X2: x2, Y2: y2, Size: width, Tint: tint})
}

func (r *recorder) Glyph(shape galaxy.Shape, x, y, size, glow float64, tint galaxy.Tint) {
	r.Ops = append(r.Ops, op{Kind: "glyph", Shape: shape, X: x, Y: y, Size: size, Glow: glow, Tint: tint})
}

func (r *recorder) Frost(style galaxy.GlassStyle) {
	r.Frosted = append(r.Frosted, style)
	r.Ops = append(r.Ops, op{Kind: "frost"})
}

func (r *recorder) kinds() []string {
	out := make([]string, len(r.Ops))
	for i, o := range r.Ops {
		out[i] = o.Kind
	}
	return out
}

func (r *recorder) count(kind string) int {
	n := 0
	for _, o := range r.Ops {
		if o.Kind == kind {
			n++
		}
	}
	return n
}

// sequence is a Random replaying fixed values in a cycle.
type sequence struct {
	values []float64
	next   int
}

func (s *sequence) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}
