package galaxy_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/galaxy/galaxy"
	"github.com/stretchr/testify/assert"
)

func assertVec(t *testing.T, want, got mgl64.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9, "component %d of %v", i, got)
	}
}

func TestGalaxyCenter(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		wantX, wantY  float64
	}{
		{"wide", 1600, 900, 1200, 450},
		{"at breakpoint", 768, 1000, 576, 500},
		{"just below breakpoint", 767, 1000, 383.5, 500},
		{"phone", 390, 844, 195, 422},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := galaxy.GalaxyCenter(galaxy.Viewport{Width: tt.width, Height: tt.height}, 768)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}

func TestOrbitPoint(t *testing.T) {
	assertVec(t, mgl64.Vec3{200, -30, 0}, galaxy.OrbitPoint(0, 200, -30))
	assertVec(t, mgl64.Vec3{0, 10, 300}, galaxy.OrbitPoint(math.Pi/2, 300, 10))
}

func TestRotate(t *testing.T) {
	p := mgl64.Vec3{3, -4, 5}
	assertVec(t, p, galaxy.Rotate(p, 0, 0))

	// pitch tilts +Z up toward -Y
	assertVec(t, mgl64.Vec3{0, -1, 0}, galaxy.Rotate(mgl64.Vec3{0, 0, 1}, math.Pi/2, 0))
	// yaw pans +X into +Z
	assertVec(t, mgl64.Vec3{0, 0, 1}, galaxy.Rotate(mgl64.Vec3{1, 0, 0}, 0, math.Pi/2))

	// pitch is applied before yaw
	assertVec(t, mgl64.Vec3{-1, 0, 0}, galaxy.Rotate(mgl64.Vec3{0, 1, 0}, math.Pi/2, math.Pi/2))

	assert.InDelta(t, p.Len(), galaxy.Rotate(p, 0.3, -0.4).Len(), 1e-9)
}

func TestPerspective(t *testing.T) {
	assert.Equal(t, 1.0, galaxy.Perspective(400, 0))
	assert.Equal(t, 0.5, galaxy.Perspective(400, 400))
	assert.Equal(t, 2.0, galaxy.Perspective(400, -200))
	assert.Less(t, galaxy.Perspective(400, -500), 0.0)
}

func TestProject(t *testing.T) {
	vp := galaxy.Viewport{Width: 1000, Height: 800}

	tests := []struct {
		name    string
		p       galaxy.Placement
		wantX   float64
		wantY   float64
		visible bool
	}{
		{"center", galaxy.Placement{}, 750, 400, true},
		{"far and scaled", galaxy.Placement{X: 200, Y: -100, Z: 400}, 850, 350, true},
		{"inside cull margin", galaxy.Placement{X: 290}, 1040, 400, true},
		{"outside cull margin", galaxy.Placement{X: 300}, 1050, 400, false},
		{"behind the viewer", galaxy.Placement{Z: -500}, 750, 400, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proj := galaxy.Project(tt.p, vp, galaxy.Hero)
			assert.InDelta(t, tt.wantX, proj.X, 1e-9)
			assert.InDelta(t, tt.wantY, proj.Y, 1e-9)
			assert.Equal(t, tt.visible, proj.Visible)
		})
	}
}

func TestProjectStar(t *testing.T) {
	vp := galaxy.Viewport{Width: 1000, Height: 800}

	x, y, r, ok := galaxy.ProjectStar(galaxy.Star{X: 300, Y: -150, Z: 300, Size: 1}, vp)
	assert.True(t, ok)
	assert.InDelta(t, 650, x, 1e-9)
	assert.InDelta(t, 325, y, 1e-9)
	assert.InDelta(t, 1, r, 1e-9)

	// exactly on the edge is outside
	_, _, _, ok = galaxy.ProjectStar(galaxy.Star{X: -500, Z: 0}, vp)
	assert.False(t, ok)
}

func TestCoreGlow(t *testing.T) {
	g := galaxy.CoreGlow(galaxy.Viewport{Width: 1000, Height: 800}, 768)
	assert.Equal(t, 750.0, g.X)
	assert.Equal(t, 400.0, g.Y)
	assert.Equal(t, 300.0, g.Radius)
	if assert.Len(t, g.Stops, 3) {
		assert.Equal(t, []float64{0, 0.5, 1}, []float64{g.Stops[0].Offset, g.Stops[1].Offset, g.Stops[2].Offset})
		assert.Equal(t, 0.15, g.Stops[0].Tint.Alpha)
		assert.Equal(t, 0.05, g.Stops[1].Tint.Alpha)
		assert.Equal(t, 0.0, g.Stops[2].Tint.Alpha)
	}
}
