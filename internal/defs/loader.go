// internal/defs/loader.go
package defs

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type terrainFile struct {
	Biomes []struct {
		ID     string `yaml:"id"`
		Color  string `yaml:"color"`
		Height int    `yaml:"height"`
	} `yaml:"biomes"`
	Thresholds []struct {
		Biome string  `yaml:"biome"`
		Upper float64 `yaml:"upper"`
	} `yaml:"thresholds"`
}

// LoadTerrainTable reads a YAML terrain table and validates it.
func LoadTerrainTable(path string) (*TerrainTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read terrain table file: %w", err)
	}

	table, err := ParseTerrainTable(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Printf("Loaded %d biome thresholds from %s", len(table.thresholds), path)
	return table, nil
}

// ParseTerrainTable разбирает YAML без обращения к файловой системе.
func ParseTerrainTable(data []byte) (*TerrainTable, error) {
	var file terrainFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal terrain table: %w", err)
	}

	biomes := make([]BiomeDefinition, 0, len(file.Biomes))
	for _, b := range file.Biomes {
		c, err := ParseColor(b.Color)
		if err != nil {
			return nil, fmt.Errorf("biome %q: %w", b.ID, err)
		}
		biomes = append(biomes, BiomeDefinition{ID: Biome(b.ID), Color: c, Height: b.Height})
	}

	thresholds := make([]Threshold, 0, len(file.Thresholds))
	for _, th := range file.Thresholds {
		thresholds = append(thresholds, Threshold{Biome: Biome(th.Biome), Upper: th.Upper})
	}

	return NewTerrainTable(biomes, thresholds)
}

// ParseColor принимает "#rrggbb" или "#rrggbbaa".
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("%q: %w", s, ErrInvalidColor)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%q: %w", s, ErrInvalidColor)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
