// pkg/hexmap/terrain.go
package hexmap

import (
	"runtime"

	"go-hex-terrain/internal/defs"

	"golang.org/x/sync/errgroup"
)

// TerrainMap is a Width×Height grid of biomes stored row-major: Cells[y][x].
// It is read-only after Generate.
type TerrainMap struct {
	Width     int
	Height    int
	Seed      int64
	Frequency int
	Cells     [][]defs.Biome
}

// Generate семплирует шум в каждой клетке (x против Width, y против Height)
// и сохраняет биом в Cells[y][x]. Строки считаются параллельно, каждая
// горутина пишет только в свою строку.
func Generate(width, height int, field NoiseField, table *defs.TerrainTable) *TerrainMap {
	m := &TerrainMap{
		Width:     max(width, 0),
		Height:    max(height, 0),
		Seed:      field.Seed(),
		Frequency: field.Frequency(),
	}
	if m.Width == 0 || m.Height == 0 {
		m.Width, m.Height = 0, 0
		return m
	}

	m.Cells = make([][]defs.Biome, m.Height)
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for y := 0; y < m.Height; y++ {
		row := make([]defs.Biome, m.Width)
		m.Cells[y] = row
		g.Go(func() error {
			for x := range row {
				nx, ny := Normalize(x, y, m.Width, m.Height)
				row[x] = table.Classify(field.Sample(nx, ny))
			}
			return nil
		})
	}
	_ = g.Wait() // воркеры не возвращают ошибок

	return m
}

// At returns the biome of grid cell (i, j), i in [0,Width), j in [0,Height).
func (m *TerrainMap) At(i, j int) (defs.Biome, bool) {
	if !m.Contains(Cell{I: i, J: j}) {
		return "", false
	}
	return m.Cells[j][i], true
}

func (m *TerrainMap) Contains(c Cell) bool {
	return c.I >= 0 && c.I < m.Width && c.J >= 0 && c.J < m.Height
}

// Len — количество клеток.
func (m *TerrainMap) Len() int {
	return m.Width * m.Height
}

// Equal reports whether both maps hold the same biome in every cell.
func (m *TerrainMap) Equal(other *TerrainMap) bool {
	if other == nil || m.Width != other.Width || m.Height != other.Height {
		return false
	}
	for y := range m.Cells {
		for x := range m.Cells[y] {
			if m.Cells[y][x] != other.Cells[y][x] {
				return false
			}
		}
	}
	return true
}
