package galaxy

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	tiltFactor = 0.5

	starFieldOfView = 300.0
	starSizeFactor  = 2.0

	wideCenterFraction   = 0.75
	narrowCenterFraction = 0.5

	cullMargin = 50.0

	coreGlowRadius = 300.0
)

// GalaxyCenter is the screen point the galaxy orbits: three quarters across wide
// viewports, centered on viewports narrower than breakpoint.
func GalaxyCenter(vp Viewport, breakpoint float64) (x, y float64) {
	fraction := wideCenterFraction
	if vp.Width < breakpoint {
		fraction = narrowCenterFraction
	}
	return vp.Width * fraction, vp.Height * 0.5
}

// OrbitPoint returns an orbit position in galaxy coordinates; the orbit lies in
// the XZ plane lifted by yOffset.
func OrbitPoint(angle, radius, yOffset float64) mgl64.Vec3 {
	return mgl64.Vec3{math.Cos(angle) * radius, yOffset, math.Sin(angle) * radius}
}

// Rotate tilts p about the X axis by pitch, then pans the result about the Y axis by
// yaw. The pan turns +X toward +Z, hence the negated angle for mgl64's convention.
func Rotate(p mgl64.Vec3, pitch, yaw float64) mgl64.Vec3 {
	tilt := mgl64.Rotate3DX(pitch)
	pan := mgl64.Rotate3DY(-yaw)
	return pan.Mul3(tilt).Mul3x1(p)
}

// Perspective is the screen scale of a point at depth z.
func Perspective(fov, z float64) float64 {
	return fov / (fov + z)
}

// Project maps a rotated placement to the screen. The result is visible when it is in
// front of the viewer and within cullMargin pixels of the viewport.
func Project(p Placement, vp Viewport, profile Profile) Projection {
	cx, cy := GalaxyCenter(vp, profile.MobileBreakpoint)
	scale := Perspective(profile.FieldOfView, p.Z)

	proj := Projection{
		X:     cx + p.X*scale,
		Y:     cy + p.Y*scale,
		Scale: scale,
	}
	proj.Visible = scale > 0 &&
		proj.X > -cullMargin && proj.X < vp.Width+cullMargin &&
		proj.Y > -cullMargin && proj.Y < vp.Height+cullMargin
	return proj
}

// ProjectStar maps a star to the screen, reporting whether it lands strictly inside
// the viewport.
func ProjectStar(s Star, vp Viewport) (x, y, radius float64, ok bool) {
	p := Perspective(starFieldOfView, s.Z)
	x = vp.Width/2 + s.X*p
	y = vp.Height/2 + s.Y*p
	radius = s.Size * p * starSizeFactor
	ok = x > 0 && x < vp.Width && y > 0 && y < vp.Height
	return x, y, radius, ok
}

// CoreGlow is the radial glow painted at the galaxy center.
func CoreGlow(vp Viewport, breakpoint float64) Glow {
	cx, cy := GalaxyCenter(vp, breakpoint)
	return Glow{
		X:      cx,
		Y:      cy,
		Radius: coreGlowRadius,
		Stops: []GlowStop{
			{Offset: 0, Tint: coreInner},
			{Offset: 0.5, Tint: coreMiddle},
			{Offset: 1, Tint: coreOuter},
		},
	}
}
