// internal/defs/types.go
package defs

import (
	"image/color"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Biome — метка типа местности.
type Biome string

const (
	BiomeWater    Biome = "water"
	BiomeBeach    Biome = "beach"
	BiomeDesert   Biome = "desert"
	BiomeJungle   Biome = "jungle"
	BiomeSavannah Biome = "savannah"
	BiomeForest   Biome = "forest"
	BiomeSnow     Biome = "snow"
)

// Title — подпись биома для показа игроку.
func (b Biome) Title() string {
	return cases.Title(language.English).String(string(b))
}

// BiomeDefinition holds the static render data of a biome.
type BiomeDefinition struct {
	ID     Biome
	Color  color.RGBA
	Height int // высота выдавливания стенки в пикселях
}

// Threshold — верхняя (исключающая) граница шума для биома.
type Threshold struct {
	Biome Biome
	Upper float64
}
