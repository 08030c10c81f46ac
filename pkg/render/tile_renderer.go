// pkg/render/tile_renderer.go
package render

import (
	"image/color"
	"iter"

	"go-hex-terrain/internal/component"
	"go-hex-terrain/pkg/hexmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type tileKey struct {
	color  color.RGBA
	height int
}

// TileRenderer рисует тайлы. Картинки тайлов одинаковы для одинаковых
// цвета и высоты, поэтому строятся один раз и кэшируются.
type TileRenderer struct {
	colors    TileColors
	fillImg   *ebiten.Image
	vs        []ebiten.Vertex
	is        []uint16
	images    map[tileKey]*ebiten.Image
	highlight *ebiten.Image
}

func NewTileRenderer(colors TileColors) *TileRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	r := &TileRenderer{
		colors:  colors,
		fillImg: fillImg,
		vs:      make([]ebiten.Vertex, 0, 36),
		is:      make([]uint16, 0, 36),
		images:  make(map[tileKey]*ebiten.Image),
	}
	r.highlight = r.makeHighlightImage()
	return r
}

// Draw blits tiles in the order given; pass them back to front.
func (r *TileRenderer) Draw(screen *ebiten.Image, tiles iter.Seq[*component.Tile]) {
	for t := range tiles {
		tl := t.TopLeft()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(tl.X), float64(tl.Y))
		screen.DrawImage(r.TileImage(t), op)
	}
}

// DrawHighlight накладывает подсветку крышки на тайл под курсором.
func (r *TileRenderer) DrawHighlight(screen *ebiten.Image, cursor component.CursorState) {
	if !cursor.Hit {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(cursor.TopLeft.X), float64(cursor.TopLeft.Y))
	screen.DrawImage(r.highlight, op)
}

// TileImage returns the cached image for the tile's color and height.
func (r *TileRenderer) TileImage(t *component.Tile) *ebiten.Image {
	key := tileKey{color: t.Color, height: t.Height}
	img, ok := r.images[key]
	if !ok {
		img = r.makeTileImage(t.Color, t.Height)
		r.images[key] = img
	}
	return img
}

// makeTileImage: стенка, поверх неё крышка, затем контуры.
func (r *TileRenderer) makeTileImage(base color.RGBA, h int) *ebiten.Image {
	w, ht := hexmap.ImageSize(h)
	img := ebiten.NewImage(w, ht)

	r.fillPolygon(img, hexmap.WallPolygon(h), Shade(base, r.colors.WallShade))
	r.fillPolygon(img, hexmap.CapPoints[:], base)
	r.strokePolyline(img, hexmap.CapPoints[:], true, r.colors.OutlineWidth, r.colors.OutlineColor)
	for _, e := range hexmap.WallEdges(h) {
		vector.StrokeLine(img, float32(e[0].X), float32(e[0].Y), float32(e[1].X), float32(e[1].Y),
			r.colors.EdgeWidth, r.colors.OutlineColor, true)
	}
	r.strokePolyline(img, hexmap.WallRim(h), false, r.colors.OutlineWidth, r.colors.OutlineColor)
	return img
}

func (r *TileRenderer) makeHighlightImage() *ebiten.Image {
	img := ebiten.NewImage(hexmap.FootprintWidth, hexmap.FootprintHeight)
	r.fillPolygon(img, hexmap.CapPoints[:], r.colors.HighlightFill)
	r.strokePolyline(img, hexmap.CapPoints[:], true, r.colors.HighlightWidth, r.colors.HighlightStroke)
	return img
}

func pathOf(points []hexmap.Point, closed bool) *vector.Path {
	path := &vector.Path{}
	for i, p := range points {
		if i == 0 {
			path.MoveTo(float32(p.X), float32(p.Y))
		} else {
			path.LineTo(float32(p.X), float32(p.Y))
		}
	}
	if closed {
		path.Close()
	}
	return path
}

func (r *TileRenderer) fillPolygon(target *ebiten.Image, points []hexmap.Point, c color.RGBA) {
	r.vs, r.is = pathOf(points, true).AppendVerticesAndIndicesForFilling(r.vs[:0], r.is[:0])
	r.drawColored(target, c)
}

func (r *TileRenderer) strokePolyline(target *ebiten.Image, points []hexmap.Point, closed bool, width float32, c color.RGBA) {
	r.vs, r.is = pathOf(points, closed).AppendVerticesAndIndicesForStroke(r.vs[:0], r.is[:0], &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
	})
	r.drawColored(target, c)
}

func (r *TileRenderer) drawColored(target *ebiten.Image, c color.RGBA) {
	for i := range r.vs {
		r.vs[i].ColorR = float32(c.R) / 255
		r.vs[i].ColorG = float32(c.G) / 255
		r.vs[i].ColorB = float32(c.B) / 255
		r.vs[i].ColorA = float32(c.A) / 255
	}
	target.DrawTriangles(r.vs, r.is, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
