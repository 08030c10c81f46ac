// internal/component/tile.go
package component

import (
	"image"
	"image/color"

	"go-hex-terrain/internal/defs"
	"go-hex-terrain/pkg/hexmap"
)

// DepthKey orders tiles back to front: Bottom first, then Left.
type DepthKey struct {
	Bottom int
	Left   int
}

// Less — true, если k рисуется раньше o.
func (k DepthKey) Less(o DepthKey) bool {
	if k.Bottom != o.Bottom {
		return k.Bottom < o.Bottom
	}
	return k.Left < o.Left
}

// Tile — один выдавленный гекс карты.
type Tile struct {
	Cell   hexmap.Cell
	Biome  defs.Biome
	Color  color.RGBA
	Height int          // высота стенки
	Anchor hexmap.Point // левый нижний угол картинки на экране
}

func NewTile(cell hexmap.Cell, def defs.BiomeDefinition, anchor hexmap.Point) *Tile {
	return &Tile{
		Cell:   cell,
		Biome:  def.ID,
		Color:  def.Color,
		Height: def.Height,
		Anchor: anchor,
	}
}

// TopLeft is where the tile image is drawn.
func (t *Tile) TopLeft() hexmap.Point {
	_, h := hexmap.ImageSize(t.Height)
	return hexmap.Point{X: t.Anchor.X, Y: t.Anchor.Y - h}
}

// Bounds — прямоугольник картинки в экранных координатах.
func (t *Tile) Bounds() image.Rectangle {
	w, h := hexmap.ImageSize(t.Height)
	tl := t.TopLeft()
	return image.Rect(tl.X, tl.Y, tl.X+w, tl.Y+h)
}

// Depth returns the tile's screen bottom edge (and left edge as a secondary key).
func (t *Tile) Depth() DepthKey {
	return DepthKey{Bottom: t.Anchor.Y, Left: t.Anchor.X}
}

// Contains tests p against the cap mask only; the wall never collides.
func (t *Tile) Contains(p hexmap.Point) bool {
	local := p.Subtract(t.TopLeft())
	return hexmap.CapMask().Contains(local.X, local.Y)
}
