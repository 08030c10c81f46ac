// internal/ui/label.go
package ui

import (
	"bytes"
	"image/color"

	"go-hex-terrain/internal/component"
	"go-hex-terrain/pkg/hexmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// LoadFace loads the bundled Go Regular font at the given size.
func LoadFace(size float64) (text.Face, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	return &text.GoTextFace{Source: source, Size: size}, nil
}

// Label рисует текст с обводкой. Шрифт передаётся снаружи.
type Label struct {
	face      text.Face
	color     color.RGBA
	outline   color.RGBA
	thickness int
	offsetY   float64
}

func NewLabel(face text.Face, fg, outline color.RGBA, thickness int, offsetY float64) *Label {
	return &Label{face: face, color: fg, outline: outline, thickness: thickness, offsetY: offsetY}
}

// DrawCursor подписывает биом над тайлом под курсором.
func (l *Label) DrawCursor(screen *ebiten.Image, cursor component.CursorState) {
	if !cursor.Hit {
		return
	}
	cx := float64(cursor.TopLeft.X) + hexmap.FootprintWidth/2
	l.Draw(screen, cursor.Biome.Title(), cx, float64(cursor.TopLeft.Y)-l.offsetY)
}

// Draw centers s horizontally on cx with its bottom edge at bottom.
func (l *Label) Draw(screen *ebiten.Image, s string, cx, bottom float64) {
	w, h := text.Measure(s, l.face, 0)
	x, y := cx-w/2, bottom-h

	for dx := -l.thickness; dx <= l.thickness; dx++ {
		for dy := -l.thickness; dy <= l.thickness; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			l.drawAt(screen, s, x+float64(dx), y+float64(dy), l.outline)
		}
	}
	l.drawAt(screen, s, x, y, l.color)
}

func (l *Label) drawAt(screen *ebiten.Image, s string, x, y float64, c color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, l.face, op)
}
