// internal/system/stack.go
package system

import "go-hex-terrain/internal/entity"

// StackSystem keeps the tile set in depth order every frame.
type StackSystem struct {
	tiles *entity.TileSet
}

func NewStackSystem(tiles *entity.TileSet) *StackSystem {
	return &StackSystem{tiles: tiles}
}

// Update возвращает число переставленных тайлов
func (s *StackSystem) Update() int {
	return s.tiles.Restack()
}
