// pkg/hexmap/footprint.go
package hexmap

import (
	"image"
	"sync"

	"golang.org/x/image/vector"
)

// Размер "кирпичного" гекса до выдавливания.
const (
	FootprintWidth  = 65
	FootprintHeight = 32
)

// maskThreshold matches an alpha-derived sprite mask: a pixel is solid above half coverage.
const maskThreshold = 127

// CapPoints is the top face of every tile in image-local coordinates, clockwise
// from the upper-left corner.
var CapPoints = [6]Point{
	{X: 8, Y: 4}, {X: 45, Y: 0}, {X: 64, Y: 10},
	{X: 57, Y: 27}, {X: 20, Y: 31}, {X: 0, Y: 22},
}

// ImageSize возвращает размер картинки тайла с высотой стенки h.
func ImageSize(h int) (w, ht int) {
	return FootprintWidth, FootprintHeight + h
}

// WallPolygon is the extruded side: the two outermost lower cap corners plus the lower
// rim shifted down by h.
func WallPolygon(h int) []Point {
	wall := []Point{CapPoints[5], CapPoints[2]}
	for _, p := range CapPoints[2:] {
		wall = append(wall, p.Add(Pt(0, h)))
	}
	return wall
}

// WallEdges возвращает вертикальные рёбра стенки: от нижних углов крышки вниз на h.
func WallEdges(h int) [][2]Point {
	edges := make([][2]Point, 0, len(CapPoints)-2)
	for _, p := range CapPoints[2:] {
		edges = append(edges, [2]Point{p, p.Add(Pt(0, h))})
	}
	return edges
}

// WallRim — нижний контур стенки (ломаная, не замкнутая).
func WallRim(h int) []Point {
	return WallPolygon(h)[2:]
}

// CapCentroid — среднее вершин крышки.
func CapCentroid() Point {
	var sum Point
	for _, p := range CapPoints {
		sum = sum.Add(p)
	}
	return Point{X: sum.X / len(CapPoints), Y: sum.Y / len(CapPoints)}
}

// Mask is a solid/empty bitmap in image-local coordinates.
type Mask struct {
	W, H int
	bits []bool
}

// Contains reports whether local pixel (x, y) is solid. Points outside the mask are empty.
func (m *Mask) Contains(x, y int) bool {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return false
	}
	return m.bits[y*m.W+x]
}

// Count — число заполненных пикселей.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

var capMask = sync.OnceValue(func() *Mask {
	return RasterizeMask(CapPoints[:], FootprintWidth, FootprintHeight)
})

// CapMask returns the collision mask shared by all tiles. It covers the cap only,
// never the wall, so it does not depend on biome height.
func CapMask() *Mask {
	return capMask()
}

// RasterizeMask заполняет многоугольник в альфа-буфере w×h и
// переводит покрытие в маску по порогу.
func RasterizeMask(poly []Point, w, h int) *Mask {
	m := &Mask{W: w, H: h, bits: make([]bool, w*h)}
	if len(poly) < 3 || w <= 0 || h <= 0 {
		return m
	}

	z := vector.NewRasterizer(w, h)
	z.MoveTo(float32(poly[0].X), float32(poly[0].Y))
	for _, p := range poly[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()

	alpha := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(alpha, alpha.Bounds(), image.Opaque, image.Point{})

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.bits[y*w+x] = alpha.AlphaAt(x, y).A > maskThreshold
		}
	}
	return m
}
