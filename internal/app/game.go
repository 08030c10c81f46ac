// internal/app/game.go
package app

import (
	"fmt"
	"iter"

	"go-hex-terrain/internal/component"
	"go-hex-terrain/internal/config"
	"go-hex-terrain/internal/defs"
	"go-hex-terrain/internal/entity"
	"go-hex-terrain/internal/event"
	"go-hex-terrain/internal/system"
	"go-hex-terrain/internal/utils"
	"go-hex-terrain/pkg/hexmap"
)

// Options configures a map session.
type Options struct {
	Width, Height int
	Seed          int64 // < 0 — случайный сид для каждой карты
	Frequency     int   // 0 — случайная частота для каждой карты
	Noise         hexmap.NoiseKind
	Terrain       *defs.TerrainTable // nil — встроенная таблица
	RandSeed      int64              // сид генератора сидов, 0 — текущее время
}

// DefaultOptions — карта 15×20, случайные сид и частота, simplex.
func DefaultOptions() Options {
	return Options{
		Width:     config.MapWidth,
		Height:    config.MapHeight,
		Seed:      -1,
		Frequency: 0,
		Noise:     config.DefaultNoiseKind,
	}
}

// Game holds the current map, its tiles and the per-frame cursor.
type Game struct {
	Map        *hexmap.TerrainMap
	Tiles      *entity.TileSet
	Layout     hexmap.Layout
	Cursor     component.CursorState
	Dispatcher *event.Dispatcher

	opts    Options
	terrain *defs.TerrainTable
	rng     *utils.PRNGService
	picker  *system.PickSystem
	stack   *system.StackSystem
}

// DefaultLayout anchors cell (0,0) below the middle of the top screen edge.
func DefaultLayout() hexmap.Layout {
	ox, oy := config.Origin()
	return hexmap.Layout{
		Origin:    hexmap.Pt(ox, oy),
		RowOffset: hexmap.Pt(config.RowOffsetX, config.RowOffsetY),
		ColOffset: hexmap.Pt(config.ColOffsetX, config.ColOffsetY),
	}
}

// NewGame builds the session and generates its first map.
func NewGame(opts Options, dispatcher *event.Dispatcher) (*Game, error) {
	if _, err := hexmap.NewNoiseField(opts.Noise, 0, 1); err != nil {
		return nil, err
	}
	terrain := opts.Terrain
	if terrain == nil {
		terrain = defs.DefaultTerrain()
	}

	tiles := entity.NewTileSet()
	g := &Game{
		Tiles:      tiles,
		Layout:     DefaultLayout(),
		Dispatcher: dispatcher,
		opts:       opts,
		terrain:    terrain,
		rng:        utils.NewPRNGService(opts.RandSeed),
		picker:     system.NewPickSystem(tiles),
		stack:      system.NewStackSystem(tiles),
	}

	if err := g.Regenerate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Regenerate replaces the map using the session options: fixed seed/frequency
// where given, fresh random values otherwise.
func (g *Game) Regenerate() error {
	seed, freq := g.opts.Seed, g.opts.Frequency
	if seed < 0 {
		seed = g.rng.Int63n(config.SeedRange)
	}
	if freq == 0 {
		freq = g.rng.IntRange(config.MinFrequency, config.MaxFrequency)
	}
	_, err := g.GenerateMap(g.opts.Width, g.opts.Height, seed, freq)
	return err
}

// NewMap генерирует карту со случайными сидом и частотой.
func (g *Game) NewMap(width, height int) (*hexmap.TerrainMap, error) {
	seed := g.rng.Int63n(config.SeedRange)
	freq := g.rng.IntRange(config.MinFrequency, config.MaxFrequency)
	return g.GenerateMap(width, height, seed, freq)
}

// GenerateMap builds a reproducible map and lays out its tiles. The previous map
// and its tiles are dropped.
func (g *Game) GenerateMap(width, height int, seed int64, freq int) (*hexmap.TerrainMap, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("invalid map size %dx%d", width, height)
	}
	if freq < 1 {
		return nil, fmt.Errorf("invalid noise frequency %d", freq)
	}
	field, err := hexmap.NewNoiseField(g.opts.Noise, seed, freq)
	if err != nil {
		return nil, err
	}

	g.Map = hexmap.Generate(width, height, field, g.terrain)
	g.buildTiles()
	g.Cursor = component.CursorState{}

	g.Dispatcher.Dispatch(event.Event{Type: event.MapGenerated, Data: event.MapInfo{
		Width:     g.Map.Width,
		Height:    g.Map.Height,
		Seed:      seed,
		Frequency: freq,
		Noise:     g.NoiseKind(),
		Tiles:     g.Tiles.Len(),
	}})
	return g.Map, nil
}

func (g *Game) buildTiles() {
	g.Tiles.Clear()
	for i := 0; i < g.Map.Width; i++ {
		for j := 0; j < g.Map.Height; j++ {
			biome, _ := g.Map.At(i, j)
			// таблица проверена при создании, определение есть всегда
			def, _ := g.terrain.Definition(biome)
			g.Tiles.Add(component.NewTile(hexmap.Cell{I: i, J: j}, def, g.Layout.Anchor(i, j)))
		}
	}
}

// TileAnchor — левый нижний угол тайла (i, j) на экране.
func (g *Game) TileAnchor(i, j int) hexmap.Point {
	return g.Layout.Anchor(i, j)
}

// Update runs once per frame: restack, then pick under the pointer.
func (g *Game) Update(pointer hexmap.Point) component.CursorState {
	g.stack.Update()
	cursor := g.picker.Update(pointer)
	if cursor != g.Cursor {
		g.Dispatcher.Dispatch(event.Event{Type: event.CursorChanged, Data: event.CursorMove{From: g.Cursor, To: cursor}})
	}
	g.Cursor = cursor
	return cursor
}

// TilesInDrawOrder yields tiles back to front.
func (g *Game) TilesInDrawOrder() iter.Seq[*component.Tile] {
	return g.Tiles.All()
}

func (g *Game) Terrain() *defs.TerrainTable {
	return g.terrain
}

func (g *Game) NoiseKind() hexmap.NoiseKind {
	if g.opts.Noise == "" {
		return hexmap.NoiseSimplex
	}
	return g.opts.Noise
}

func (g *Game) CurrentMap() *hexmap.TerrainMap {
	return g.Map
}

func (g *Game) CurrentCursor() component.CursorState {
	return g.Cursor
}
