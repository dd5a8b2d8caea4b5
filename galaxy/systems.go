package galaxy

import (
	"cmp"
	"slices"

	"github.com/plus3/galaxy/ecs"
)

// ClockSystem counts frames.
type ClockSystem struct {
	Clock ecs.Singleton[Clock]
}

func (s *ClockSystem) Execute(frame *ecs.UpdateFrame) {
	clock := s.Clock.Get()
	clock.Frame++
	clock.Elapsed += frame.DeltaTime
}

// RotationSystem copies the pointer into the rotation target and eases the current
// rotation toward it. With a fixed target the distance shrinks geometrically by
// (1 - Damping) each frame and never changes sign.
type RotationSystem struct {
	Pointer  ecs.Singleton[Pointer]
	Rotation ecs.Singleton[Rotation]
	Settings ecs.Singleton[Settings]
}

func (s *RotationSystem) Execute(frame *ecs.UpdateFrame) {
	rot := s.Rotation.Get()
	damping := s.Settings.Get().Profile.Damping

	rot.Target = Axis2(*s.Pointer.Get())
	rot.Current.X += (rot.Target.X - rot.Current.X) * damping
	rot.Current.Y += (rot.Target.Y - rot.Current.Y) * damping
}

// StarSystem flies the background stars toward the viewer.
type StarSystem struct {
	Stars    ecs.Query[struct{ *Star }]
	Viewport ecs.Singleton[Viewport]
	Settings ecs.Singleton[Settings]

	rng Random
}

func (s *StarSystem) Execute(frame *ecs.UpdateFrame) {
	vp := *s.Viewport.Get()
	speed := s.Settings.Get().Profile.StarSpeed
	for star := range s.Stars.Values() {
		star.Star.Advance(speed, s.rng, vp)
	}
}

// OrbitSystem advances every ornament along its orbit and applies the pointer
// rotation.
type OrbitSystem struct {
	Ornaments ecs.Query[struct {
		*Ornament
		*Placement
	}]
	Rotation ecs.Singleton[Rotation]
}

func (s *OrbitSystem) Execute(frame *ecs.UpdateFrame) {
	rot := *s.Rotation.Get()
	pitch, yaw := rot.Pitch(), rot.Yaw()

	for item := range s.Ornaments.Values() {
		o := item.Ornament
		o.Angle += o.Speed

		p := Rotate(OrbitPoint(o.Angle, o.Radius, o.YOffset), pitch, yaw)
		*item.Placement = Placement{X: p.X(), Y: p.Y(), Z: p.Z()}
	}
}

// DepthSortSystem rebuilds the draw list ordered by rotated z in the profile's
// direction. Ties keep spawn order.
type DepthSortSystem struct {
	Ornaments ecs.Query[struct {
		ecs.EntityId
		*Ornament
		*Placement
		*Projection
	}]
	DrawList ecs.Singleton[DrawList]
	Settings ecs.Singleton[Settings]
}

func (s *DepthSortSystem) Execute(frame *ecs.UpdateFrame) {
	list := s.DrawList.Get()
	list.Items = list.Items[:0]
	for item := range s.Ornaments.Values() {
		list.Items = append(list.Items, Drawable{
			Id:         item.EntityId,
			Ornament:   item.Ornament,
			Placement:  item.Placement,
			Projection: item.Projection,
		})
	}

	order := s.Settings.Get().Profile.Sort
	slices.SortStableFunc(list.Items, func(a, b Drawable) int {
		if order == ZAscending {
			return cmp.Compare(a.Placement.Z, b.Placement.Z)
		}
		return cmp.Compare(b.Placement.Z, a.Placement.Z)
	})
}

// ProjectionSystem projects every drawable to screen space.
type ProjectionSystem struct {
	DrawList ecs.Singleton[DrawList]
	Viewport ecs.Singleton[Viewport]
	Settings ecs.Singleton[Settings]
}

func (s *ProjectionSystem) Execute(frame *ecs.UpdateFrame) {
	vp := *s.Viewport.Get()
	profile := s.Settings.Get().Profile
	for _, d := range s.DrawList.Get().Items {
		*d.Projection = Project(*d.Placement, vp, profile)
	}
}

// RenderSystem paints the frame: clear, stars, core glow, then ornaments in draw
// list order.
type RenderSystem struct {
	Surface  ecs.Singleton[Surface]
	Viewport ecs.Singleton[Viewport]
	Settings ecs.Singleton[Settings]
	DrawList ecs.Singleton[DrawList]
	Stars    ecs.Query[struct{ *Star }]
}

func (s *RenderSystem) Execute(frame *ecs.UpdateFrame) {
	canvas := s.Surface.Get().Canvas
	if canvas == nil {
		return
	}
	vp := *s.Viewport.Get()
	profile := s.Settings.Get().Profile

	canvas.Clear()

	for star := range s.Stars.Values() {
		x, y, r, ok := ProjectStar(*star.Star, vp)
		if ok {
			canvas.Dot(x, y, r, Tint{Color: starColor, Alpha: star.Star.Opacity})
		}
	}

	canvas.Glow(CoreGlow(vp, profile.MobileBreakpoint))

	for _, d := range s.DrawList.Get().Items {
		if d.Projection.Visible {
			drawOrnament(canvas, d.Ornament, d.Projection)
		}
	}
}

// GlassSystem frosts the finished frame when the glass overlay is attached.
type GlassSystem struct {
	Surface ecs.Singleton[Surface]
	Glass   ecs.Singleton[GlassOverlay]
}

func (s *GlassSystem) Execute(frame *ecs.UpdateFrame) {
	glass := s.Glass.Get()
	canvas := s.Surface.Get().Canvas
	if !glass.Attached || canvas == nil {
		return
	}
	canvas.Frost(glass.Style)
}
