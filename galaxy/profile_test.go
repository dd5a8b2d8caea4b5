package galaxy_test

import (
	"image/color"
	"testing"

	"github.com/plus3/galaxy/galaxy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileByName(t *testing.T) {
	p, err := galaxy.ProfileByName("HERO")
	require.NoError(t, err)
	assert.Equal(t, galaxy.Hero.Name, p.Name)
	assert.Equal(t, 150, p.Stars)
	assert.Equal(t, galaxy.ZAscending, p.Sort)
	assert.Nil(t, p.Glass)

	p, err = galaxy.ProfileByName("glass")
	require.NoError(t, err)
	assert.Equal(t, 0, p.Stars)
	assert.Equal(t, galaxy.ZDescending, p.Sort)
	require.NotNil(t, p.Glass)
	assert.Equal(t, 0.65, p.Glass.Coverage)

	_, err = galaxy.ProfileByName("nebula")
	assert.ErrorContains(t, err, "glass, hero")
}

func TestPalettePick(t *testing.T) {
	p := galaxy.DefaultPalette
	assert.Equal(t, p[0], p.Pick(&sequence{values: []float64{0}}))
	assert.Equal(t, p[1], p.Pick(&sequence{values: []float64{0.25}}))
	assert.Equal(t, p[3], p.Pick(&sequence{values: []float64{0.999}}))
	assert.Equal(t, p[3], p.Pick(&sequence{values: []float64{1}}))
}

func TestTintFloats(t *testing.T) {
	r, g, b, a := galaxy.DefaultGlass.Tint.Floats()
	assert.InDelta(t, 3.0/255, r, 1e-9)
	assert.InDelta(t, 7.0/255, g, 1e-9)
	assert.InDelta(t, 18.0/255, b, 1e-9)
	assert.Equal(t, 0.35, a)
}

func TestDefaultPaletteHex(t *testing.T) {
	want := []string{"#5eead4", "#a855f7", "#3b82f6", "#f472b6"}
	require.Len(t, galaxy.DefaultPalette, len(want))
	for i, hex := range want {
		assert.Equal(t, hex, galaxy.DefaultPalette[i].Hex())
	}
	assert.Equal(t, "#030712", galaxy.DefaultGlass.Tint.Hex())
}

func TestTintIsColor(t *testing.T) {
	var c color.Color = galaxy.Opaque(galaxy.DefaultPalette[0])
	r, g, b, a := c.RGBA()
	assert.Equal(t, uint32(0x5e5e), r)
	assert.Equal(t, uint32(0xeaea), g)
	assert.Equal(t, uint32(0xd4d4), b)
	assert.Equal(t, uint32(0xffff), a)
}
