// internal/component/cursor.go
package component

import (
	"go-hex-terrain/internal/defs"
	"go-hex-terrain/pkg/hexmap"
)

// CursorState is the per-frame pick result. The zero value means "no hit".
type CursorState struct {
	Hit     bool
	Cell    hexmap.Cell
	Biome   defs.Biome
	Anchor  hexmap.Point // левый нижний угол тайла
	TopLeft hexmap.Point // куда рисовать подсветку
}

// CursorFor builds the hit state for t.
func CursorFor(t *Tile) CursorState {
	return CursorState{
		Hit:     true,
		Cell:    t.Cell,
		Biome:   t.Biome,
		Anchor:  t.Anchor,
		TopLeft: t.TopLeft(),
	}
}
