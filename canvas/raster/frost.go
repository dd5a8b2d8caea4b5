package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/plus3/galaxy/galaxy"
	"golang.org/x/image/draw"
)

// frost blurs and tints the left panel of frame in place and returns it. The glass
// is laid over the frame through a fade mask, so it melts back into the frame.
// The blur is a downscale by style.Blur followed by a bilinear upscale.
func frost(frame *image.RGBA, style galaxy.GlassStyle) *image.RGBA {
	bounds := frame.Bounds()
	panelWidth := int(float64(bounds.Dx()) * style.Coverage)
	if panelWidth <= 0 {
		return frame
	}
	panel := image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Min.X+panelWidth, bounds.Max.Y)
	local := image.Rect(0, 0, panel.Dx(), panel.Dy())

	glass := image.NewRGBA(local)
	if factor := max(style.Blur, 1); factor > 1 {
		small := image.NewRGBA(image.Rect(0, 0, scaledSize(panel.Dx(), factor), scaledSize(panel.Dy(), factor)))
		draw.ApproxBiLinear.Scale(small, small.Bounds(), frame, panel, draw.Src, nil)
		draw.BiLinear.Scale(glass, local, small, small.Bounds(), draw.Src, nil)
	} else {
		draw.Draw(glass, local, frame, panel.Min, draw.Src)
	}

	r, g, b, a := style.Tint.Floats()
	tint := color.NRGBA{R: to8(r), G: to8(g), B: to8(b), A: to8(a)}
	draw.Draw(glass, local, image.NewUniform(tint), image.Point{}, draw.Over)

	draw.DrawMask(frame, panel, glass, image.Point{}, fadeMask(panel.Dx(), panel.Dy(), style.FadeStart), image.Point{}, draw.Over)
	return frame
}

// fadeMask is opaque up to fadeStart of the width, then fades linearly to nothing
// at the right edge.
func fadeMask(width, height int, fadeStart float64) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	solid := int(float64(width) * fadeStart)
	row := mask.Pix[:width]
	for x := range row {
		if x < solid {
			row[x] = 0xff
			continue
		}
		row[x] = to8(1 - float64(x-solid)/float64(width-solid))
	}
	for y := 1; y < height; y++ {
		copy(mask.Pix[y*mask.Stride:y*mask.Stride+width], row)
	}
	return mask
}

func to8(v float64) uint8 {
	return uint8(min(max(v, 0), 1)*255 + 0.5)
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("save %s: %w", path, err)
	}
	return f.Close()
}
