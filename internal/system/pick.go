// internal/system/pick.go
package system

import (
	"iter"

	"go-hex-terrain/internal/component"
	"go-hex-terrain/internal/entity"
	"go-hex-terrain/pkg/hexmap"
)

// PickSystem находит тайл под курсором
type PickSystem struct {
	tiles *entity.TileSet
}

func NewPickSystem(tiles *entity.TileSet) *PickSystem {
	return &PickSystem{tiles: tiles}
}

// Update re-evaluates the pick for this frame's pointer position.
func (s *PickSystem) Update(pointer hexmap.Point) component.CursorState {
	return Pick(pointer, s.tiles.All())
}

// Pick returns the candidate with the greatest depth key among tiles whose cap mask
// contains p. Among equal keys the one yielded last wins, which for draw order is
// the one painted on top.
func Pick(p hexmap.Point, tiles iter.Seq[*component.Tile]) component.CursorState {
	var best *component.Tile
	for t := range tiles {
		if !t.Contains(p) {
			continue
		}
		if best == nil || !t.Depth().Less(best.Depth()) {
			best = t
		}
	}
	if best == nil {
		return component.CursorState{}
	}
	return component.CursorFor(best)
}
