// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 500
	TPS          = 60
	MaxDeltaTime = 0.06

	MapWidth  = 15
	MapHeight = 20

	// Смещение начала карты от середины верхнего края экрана
	OriginOffsetX = -100
	OriginOffsetY = 100

	// Шаг по осям сетки: i уходит влево-вниз, j вправо-вниз
	RowOffsetX = -45
	RowOffsetY = 22
	ColOffsetX = 57
	ColOffsetY = 5

	WallShade        = 0.5 // затемнение боковой стенки
	OutlineWidth     = 2.0
	EdgeWidth        = 1.0
	HighlightWidth   = 2.0
	LabelFontSize    = 18
	LabelOutline     = 2
	LabelOffsetY     = 6
	SeedRange        = 1 << 32
	MinFrequency     = 5
	MaxFrequency     = 9 // включительно
	DefaultNoiseKind = "simplex"
)

var (
	BackgroundColor   = color.RGBA{47, 79, 79, 255} // darkslategray
	OutlineColor      = color.RGBA{0, 0, 0, 255}
	HighlightFill     = color.RGBA{255, 255, 255, 70}
	HighlightStroke   = color.RGBA{255, 255, 0, 255}
	LabelColor        = color.RGBA{255, 255, 255, 255}
	LabelOutlineColor = color.RGBA{0, 0, 0, 255}
)

// Origin returns the screen point grid cell (0,0) is anchored to.
func Origin() (x, y int) {
	return ScreenWidth/2 + OriginOffsetX, OriginOffsetY
}
