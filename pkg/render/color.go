// pkg/render/color.go
package render

import "image/color"

// TileColors holds the colors and stroke widths needed to draw terrain tiles.
type TileColors struct {
	OutlineColor    color.RGBA
	HighlightFill   color.RGBA
	HighlightStroke color.RGBA
	WallShade       float64 // множитель яркости боковой стенки
	OutlineWidth    float32
	EdgeWidth       float32
	HighlightWidth  float32
}

// Shade scales the brightness of a color by factor, keeping alpha.
func Shade(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
