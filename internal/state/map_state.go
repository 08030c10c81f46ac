// internal/state/map_state.go
package state

import (
	"fmt"
	"log"

	"go-hex-terrain/internal/config"
	"go-hex-terrain/internal/interfaces"
	"go-hex-terrain/internal/ui"
	"go-hex-terrain/pkg/hexmap"
	"go-hex-terrain/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MapState — просмотр карты: подсветка тайла под курсором и подпись биома.
type MapState struct {
	sm       *StateMachine
	game     interfaces.MapSession
	renderer *render.TileRenderer
	label    *ui.Label
}

func NewMapState(sm *StateMachine, game interfaces.MapSession, label *ui.Label) *MapState {
	renderer := render.NewTileRenderer(render.TileColors{
		OutlineColor:    config.OutlineColor,
		HighlightFill:   config.HighlightFill,
		HighlightStroke: config.HighlightStroke,
		WallShade:       config.WallShade,
		OutlineWidth:    config.OutlineWidth,
		EdgeWidth:       config.EdgeWidth,
		HighlightWidth:  config.HighlightWidth,
	})
	return &MapState{sm: sm, game: game, renderer: renderer, label: label}
}

func (m *MapState) Enter() {}

func (m *MapState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := m.game.Regenerate(); err != nil {
			log.Printf("regenerate map: %v", err)
		}
	}

	x, y := ebiten.CursorPosition()
	m.game.Update(hexmap.Pt(x, y))
	return nil
}

func (m *MapState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	m.renderer.Draw(screen, m.game.TilesInDrawOrder())
	cursor := m.game.CurrentCursor()
	m.renderer.DrawHighlight(screen, cursor)
	m.label.DrawCursor(screen, cursor)

	tm := m.game.CurrentMap()
	info := fmt.Sprintf("seed %d  freq %d  noise %s\n[R] new map  [Esc] quit",
		tm.Seed, tm.Frequency, m.game.NoiseKind())
	if c := cursor; c.Hit {
		info += fmt.Sprintf("\ncell %d,%d  %s", c.Cell.I, c.Cell.J, c.Biome)
	}
	ebitenutil.DebugPrint(screen, info)
}

func (m *MapState) Exit() {}
