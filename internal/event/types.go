// internal/event/types.go
package event

import (
	"go-hex-terrain/internal/component"
	"go-hex-terrain/pkg/hexmap"
)

const (
	MapGenerated  EventType = "MapGenerated"  // построена новая карта
	CursorChanged EventType = "CursorChanged" // курсор перешёл на другой тайл или ушёл с карты
)

// MapInfo is the payload of MapGenerated.
type MapInfo struct {
	Width, Height int
	Seed          int64
	Frequency     int
	Noise         hexmap.NoiseKind
	Tiles         int
}

// CursorMove is the payload of CursorChanged.
type CursorMove struct {
	From, To component.CursorState
}
