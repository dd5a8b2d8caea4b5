package galaxy_test

import (
	"math"
	"testing"

	"github.com/plus3/galaxy/galaxy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBranch(t *testing.T) {
	t.Run("depth never exceeds three", func(t *testing.T) {
		for seed := range uint64(300) {
			b := galaxy.NewBranch(galaxy.NewRandom(seed), galaxy.DefaultPalette)
			require.NotEmpty(t, b.Nodes)
			assert.LessOrEqual(t, b.MaxDepth(), 3, "seed %d", seed)
		}
	})

	t.Run("children follow their parent", func(t *testing.T) {
		for seed := range uint64(100) {
			b := galaxy.NewBranch(galaxy.NewRandom(seed), galaxy.DefaultPalette)
			assert.Equal(t, 0, b.Nodes[0].Depth)
			for i, n := range b.Nodes {
				assert.LessOrEqual(t, len(n.Children), 2)
				if n.Depth == 3 {
					assert.Empty(t, n.Children)
				}
				for _, c := range n.Children {
					assert.Greater(t, c, i)
					assert.Equal(t, n.Depth+1, b.Nodes[c].Depth)
				}
			}
		}
	})

	t.Run("root without children", func(t *testing.T) {
		// shape, color, then a zero sample fails the child check at depth 0
		rng := &sequence{values: []float64{0.9, 0.3, 0}}
		b := galaxy.NewBranch(rng, galaxy.DefaultPalette)
		require.Len(t, b.Nodes, 1)
		assert.Equal(t, galaxy.ShapeCircle, b.Nodes[0].Shape)
		assert.Equal(t, galaxy.DefaultPalette[1], b.Nodes[0].Color)
		assert.Equal(t, 0, b.MaxDepth())
	})

	t.Run("two children generated depth first", func(t *testing.T) {
		rng := &sequence{values: []float64{
			0.1, 0.0, 0.5, 0.9, // root: square, cyan, grows, two children
			0.6, 0.3, 0.1, // first child: circle, purple, 0.1 <= 0.2 stops
			0.6, 0.6, 0.1, // second child: circle, blue, stops
		}}
		b := galaxy.NewBranch(rng, galaxy.DefaultPalette)
		require.Len(t, b.Nodes, 3)
		assert.Equal(t, galaxy.ShapeSquare, b.Nodes[0].Shape)
		assert.Equal(t, []int{1, 2}, b.Nodes[0].Children)
		assert.Equal(t, galaxy.DefaultPalette[1], b.Nodes[1].Color)
		assert.Equal(t, galaxy.DefaultPalette[2], b.Nodes[2].Color)
	})

	t.Run("empty tree depth", func(t *testing.T) {
		assert.Equal(t, -1, galaxy.Branch{}.MaxDepth())
	})
}

func TestOrbitalSpeed(t *testing.T) {
	tests := []struct {
		radius float64
		want   float64
	}{
		{150, 0.0048},
		{250, 0.0048},
		{250.01, 0.0028},
		{549, 0.0028},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, galaxy.OrbitalSpeed(0.004, tt.radius), 1e-12, "radius %v", tt.radius)
	}

	assert.Greater(t, galaxy.OrbitalSpeed(0.003, 200), galaxy.OrbitalSpeed(0.003, 400))
}

func TestNewOrnament(t *testing.T) {
	t.Run("sample order", func(t *testing.T) {
		rng := &sequence{values: []float64{
			0.25,          // angle
			0.5,           // radius
			0.5,           // speed
			0.0,           // vertical offset
			0.9, 0.3, 0.0, // branch: circle, purple, no children
			0.6, // size scale
		}}
		o := galaxy.NewOrnament(rng, galaxy.DefaultPalette)

		assert.InDelta(t, math.Pi/2, o.Angle, 1e-12)
		assert.InDelta(t, 350, o.Radius, 1e-12)
		assert.InDelta(t, 0.0045*0.7, o.Speed, 1e-12)
		assert.InDelta(t, -75, o.YOffset, 1e-12)
		assert.InDelta(t, 0.8, o.SizeScale, 1e-12)
		require.Len(t, o.Branch.Nodes, 1)
		assert.Equal(t, galaxy.DefaultPalette[1], o.Branch.Nodes[0].Color)
	})

	t.Run("ranges", func(t *testing.T) {
		rng := galaxy.NewRandom(7)
		for range 500 {
			o := galaxy.NewOrnament(rng, galaxy.DefaultPalette)
			assert.GreaterOrEqual(t, o.Angle, 0.0)
			assert.Less(t, o.Angle, 2*math.Pi)
			assert.GreaterOrEqual(t, o.Radius, 150.0)
			assert.Less(t, o.Radius, 550.0)
			assert.GreaterOrEqual(t, o.YOffset, -75.0)
			assert.Less(t, o.YOffset, 75.0)
			assert.GreaterOrEqual(t, o.SizeScale, 0.5)
			assert.Less(t, o.SizeScale, 1.0)
			if o.Radius <= 250 {
				assert.GreaterOrEqual(t, o.Speed, 0.002*1.2)
			} else {
				assert.Less(t, o.Speed, 0.007*0.7)
			}
		}
	})
}

func TestStar(t *testing.T) {
	vp := galaxy.Viewport{Width: 1000, Height: 600}

	t.Run("new star", func(t *testing.T) {
		rng := &sequence{values: []float64{0.5, 1, 0.2, 0.9, 0.25}}
		s := galaxy.NewStar(rng, vp)
		assert.InDelta(t, 0, s.X, 1e-12)
		assert.InDelta(t, 900, s.Y, 1e-12)
		assert.InDelta(t, 0.3, s.Size, 1e-12)
		assert.InDelta(t, 0.9, s.Opacity, 1e-12)
		assert.InDelta(t, 500, s.Z, 1e-12)
	})

	t.Run("advances toward the viewer", func(t *testing.T) {
		s := galaxy.Star{Z: 10}
		s.Advance(2, &sequence{values: []float64{0.5}}, vp)
		assert.Equal(t, 8.0, s.Z)
	})

	t.Run("resets at the far plane", func(t *testing.T) {
		s := galaxy.Star{X: 40, Y: 40, Z: 2}
		s.Advance(2, &sequence{values: []float64{0, 1, 0.5, 0.5}}, vp)
		assert.Equal(t, 2000.0, s.Z)
		assert.InDelta(t, -1500, s.X, 1e-12)
		assert.InDelta(t, 900, s.Y, 1e-12)
		assert.InDelta(t, 0.75, s.Size, 1e-12)
		assert.InDelta(t, 0.5, s.Opacity, 1e-12)
	})
}
