package export

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/san-kum/spirosim/internal/spiro"
)

// RenderPNG rasterizes the trail oldest first on a black background, with an
// optional caption in the bottom-left corner.
func RenderPNG(verts []spiro.Vertex, width, height int, dotRadius float64, caption string) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("image size must be positive, got %dx%d", width, height)
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(color.Black)
	dc.Clear()

	for i := len(verts) - 1; i >= 0; i-- {
		v := verts[i]
		x, y := toPixel(v.X, v.Y, width, height)
		dc.SetRGB(float64(v.R), float64(v.G), float64(v.B))
		dc.DrawCircle(x, y, dotRadius)
		dc.Fill()
	}

	if caption != "" {
		ttfFont, err := truetype.Parse(gomono.TTF)
		if err != nil {
			return nil, fmt.Errorf("failed to parse font: %w", err)
		}
		face := truetype.NewFace(ttfFont, &truetype.Options{
			Size:    12,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		dc.SetFontFace(face)
		dc.SetRGB(0.55, 0.55, 0.55)
		dc.DrawString(caption, 8, float64(height)-8)
	}

	return dc.Image(), nil
}

// SavePNG renders the trail and writes it to path.
func SavePNG(path string, verts []spiro.Vertex, width, height int, dotRadius float64, caption string) error {
	img, err := RenderPNG(verts, width, height, dotRadius, caption)
	if err != nil {
		return err
	}
	return gg.SavePNG(path, img)
}
