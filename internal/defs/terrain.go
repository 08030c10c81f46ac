// internal/defs/terrain.go
package defs

import (
	"fmt"
	"image/color"

	"github.com/zyedidia/generic/mapset"
)

// DefaultBiomes — цвета и высоты встроенных биомов.
var DefaultBiomes = []BiomeDefinition{
	{ID: BiomeWater, Color: color.RGBA{154, 192, 205, 255}, Height: 5},
	{ID: BiomeBeach, Color: color.RGBA{210, 180, 140, 255}, Height: 15},
	{ID: BiomeDesert, Color: color.RGBA{255, 215, 0, 255}, Height: 25},
	{ID: BiomeJungle, Color: color.RGBA{0, 100, 0, 255}, Height: 30},
	{ID: BiomeSavannah, Color: color.RGBA{160, 82, 45, 255}, Height: 40},
	{ID: BiomeForest, Color: color.RGBA{34, 139, 34, 255}, Height: 20},
	{ID: BiomeSnow, Color: color.RGBA{255, 255, 255, 255}, Height: 50},
}

// DefaultThresholds is the built-in classification order. First match wins.
var DefaultThresholds = []Threshold{
	{Biome: BiomeWater, Upper: 0.2},
	{Biome: BiomeBeach, Upper: 0.3},
	{Biome: BiomeDesert, Upper: 0.4},
	{Biome: BiomeJungle, Upper: 0.5},
	{Biome: BiomeSavannah, Upper: 0.65},
	{Biome: BiomeForest, Upper: 0.8},
	{Biome: BiomeSnow, Upper: 1},
}

// TerrainTable maps noise values in [0,1] to biomes. A table is validated when it is
// built and is read-only afterwards.
type TerrainTable struct {
	thresholds []Threshold
	biomes     map[Biome]BiomeDefinition
}

// NewTerrainTable проверяет таблицу и возвращает ошибку конфигурации,
// если пороги не покрывают [0,1] или биому не хватает атрибутов.
func NewTerrainTable(biomes []BiomeDefinition, thresholds []Threshold) (*TerrainTable, error) {
	if len(thresholds) == 0 {
		return nil, ErrEmptyTable
	}

	defined := make(map[Biome]BiomeDefinition, len(biomes))
	for i, def := range biomes {
		if def.ID == "" {
			return nil, fmt.Errorf("biome %d has no id: %w", i, ErrUnknownBiome)
		}
		if _, exists := defined[def.ID]; exists {
			return nil, fmt.Errorf("biome %q: %w", def.ID, ErrDuplicateBiome)
		}
		if def.Height < 0 {
			return nil, fmt.Errorf("biome %q: %w", def.ID, ErrInvalidHeight)
		}
		defined[def.ID] = def
	}

	seen := mapset.New[Biome]()
	prev := 0.0
	for i, th := range thresholds {
		if _, ok := defined[th.Biome]; !ok {
			return nil, fmt.Errorf("threshold %d (%q): %w", i, th.Biome, ErrUnknownBiome)
		}
		if seen.Has(th.Biome) {
			return nil, fmt.Errorf("threshold %d (%q): %w", i, th.Biome, ErrDuplicateBiome)
		}
		seen.Put(th.Biome)
		if th.Upper <= prev {
			return nil, fmt.Errorf("threshold %d (%q) = %v after %v: %w", i, th.Biome, th.Upper, prev, ErrThresholdOrder)
		}
		prev = th.Upper
	}
	if last := thresholds[len(thresholds)-1]; last.Upper != 1 {
		return nil, fmt.Errorf("last threshold %q = %v: %w", last.Biome, last.Upper, ErrMissingTerminal)
	}

	return &TerrainTable{
		thresholds: append([]Threshold(nil), thresholds...),
		biomes:     defined,
	}, nil
}

// DefaultTerrain возвращает встроенную таблицу.
func DefaultTerrain() *TerrainTable {
	table, err := NewTerrainTable(DefaultBiomes, DefaultThresholds)
	if err != nil {
		panic(err)
	}
	return table
}

// Classify returns the first biome whose upper bound exceeds v.
// The last entry catches everything else, including 1.0.
func (t *TerrainTable) Classify(v float64) Biome {
	for _, th := range t.thresholds {
		if v < th.Upper {
			return th.Biome
		}
	}
	return t.thresholds[len(t.thresholds)-1].Biome
}

// Definition возвращает цвет и высоту биома.
func (t *TerrainTable) Definition(b Biome) (BiomeDefinition, bool) {
	def, ok := t.biomes[b]
	return def, ok
}

// Biomes returns the classified biomes in table order.
func (t *TerrainTable) Biomes() []Biome {
	out := make([]Biome, len(t.thresholds))
	for i, th := range t.thresholds {
		out[i] = th.Biome
	}
	return out
}

func (t *TerrainTable) Thresholds() []Threshold {
	return append([]Threshold(nil), t.thresholds...)
}
