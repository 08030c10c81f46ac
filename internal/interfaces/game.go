// internal/interfaces/game.go
package interfaces

import (
	"iter"

	"go-hex-terrain/internal/component"
	"go-hex-terrain/pkg/hexmap"
)

// MapSession — то, что состояние просмотра требует от сессии карты.
type MapSession interface {
	Regenerate() error
	Update(pointer hexmap.Point) component.CursorState
	TilesInDrawOrder() iter.Seq[*component.Tile]
	CurrentMap() *hexmap.TerrainMap
	CurrentCursor() component.CursorState
	NoiseKind() hexmap.NoiseKind
}
