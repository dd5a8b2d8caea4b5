package galaxy

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/plus3/galaxy/ecs"
)

// Viewport is the drawing surface size in pixels.
type Viewport struct {
	Width, Height float64
}

// Axis2 is a pair of values on the horizontal and vertical pointer axes.
type Axis2 struct {
	X, Y float64
}

// Pointer is the cursor position normalized to [-1, 1] on both axes.
type Pointer Axis2

// Rotation eases Current toward Target once per frame.
type Rotation struct {
	Target  Axis2
	Current Axis2
}

// Pitch is the tilt about the X axis, driven by the vertical pointer axis.
func (r Rotation) Pitch() float64 {
	return r.Current.Y * tiltFactor
}

// Yaw is the pan about the Y axis, driven by the horizontal pointer axis.
func (r Rotation) Yaw() float64 {
	return r.Current.X * tiltFactor
}

// BranchNode is one node of an ornament's branch tree.
type BranchNode struct {
	Shape    Shape
	Color    colorful.Color
	Depth    int
	Children []int
}

// Branch is an arena-backed tree; Nodes[0] is the root and children always follow
// their parent in depth-first order.
type Branch struct {
	Nodes []BranchNode
}

// Ornament is one glycan orbiting the galaxy core.
type Ornament struct {
	Angle     float64
	Radius    float64
	Speed     float64
	YOffset   float64
	SizeScale float64
	Branch    Branch
}

// Placement is an ornament's rotated 3D position for the current frame.
type Placement struct {
	X, Y, Z float64
}

// Projection is an ornament's screen position for the current frame.
type Projection struct {
	X, Y    float64
	Scale   float64
	Visible bool
}

// Star is a background star flying toward the viewer.
type Star struct {
	X, Y, Z float64
	Size    float64
	Opacity float64
}

// Surface holds the canvas frames are painted on.
type Surface struct {
	Canvas Canvas
}

// Settings holds the active profile.
type Settings struct {
	Profile Profile
}

// GlassOverlay records whether the frosted panel is attached.
type GlassOverlay struct {
	Attached bool
	Style    GlassStyle
}

// Clock counts ticks.
type Clock struct {
	Frame   uint64
	Elapsed float64
}

// Drawable is one depth-sorted entry of the DrawList.
type Drawable struct {
	Id         ecs.EntityId
	Ornament   *Ornament
	Placement  *Placement
	Projection *Projection
}

// DrawList is the per-frame paint order of ornaments.
type DrawList struct {
	Items []Drawable
}

// Projected is a read-only view of a drawn ornament.
type Projected struct {
	Id    ecs.EntityId
	X, Y  float64
	Scale float64
	Z     float64
}

func registerComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Ornament](registry)
	ecs.RegisterComponent[Placement](registry)
	ecs.RegisterComponent[Projection](registry)
	ecs.RegisterComponent[Star](registry)
}
