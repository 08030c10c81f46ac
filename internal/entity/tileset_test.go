package entity

import (
	"slices"
	"testing"

	"go-hex-terrain/internal/component"
	"go-hex-terrain/internal/defs"
	"go-hex-terrain/pkg/hexmap"
)

func newTile(i, j int, anchor hexmap.Point) *component.Tile {
	def, _ := defs.DefaultTerrain().Definition(defs.BiomeBeach)
	return component.NewTile(hexmap.Cell{I: i, J: j}, def, anchor)
}

func bottoms(s *TileSet) []int {
	var out []int
	for t := range s.All() {
		out = append(out, t.Depth().Bottom)
	}
	return out
}

func assertSorted(t *testing.T, s *TileSet) {
	t.Helper()
	var prev *component.Tile
	for tile := range s.All() {
		if prev != nil && tile.Depth().Less(prev.Depth()) {
			t.Fatalf("tile %+v drawn after %+v", tile.Depth(), prev.Depth())
		}
		prev = tile
	}
}

func TestTileSetAddKeepsDepthOrder(t *testing.T) {
	s := NewTileSet()
	for i, y := range []int{150, 100, 300, 120, 100} {
		s.Add(newTile(i, 0, hexmap.Pt(10*i, y)))
	}
	if s.Len() != 5 {
		t.Fatalf("expected 5 tiles, got %d", s.Len())
	}
	if got := bottoms(s); !slices.Equal(got, []int{100, 100, 120, 150, 300}) {
		t.Errorf("draw order bottoms = %v", got)
	}
	assertSorted(t, s)
}

func TestTileSetRestack(t *testing.T) {
	s := NewTileSet()
	a := newTile(0, 0, hexmap.Pt(0, 100))
	b := newTile(1, 0, hexmap.Pt(0, 200))
	c := newTile(2, 0, hexmap.Pt(0, 300))
	s.Add(a)
	s.Add(b)
	s.Add(c)

	if moved := s.Restack(); moved != 0 {
		t.Errorf("nothing moved, Restack reported %d", moved)
	}

	a.Anchor.Y = 250
	c.Anchor.Y = 50
	if moved := s.Restack(); moved != 2 {
		t.Errorf("expected 2 tiles to move, got %d", moved)
	}
	var order []*component.Tile
	for tile := range s.All() {
		order = append(order, tile)
	}
	if !slices.Equal(order, []*component.Tile{c, b, a}) {
		t.Errorf("unexpected order after restack: %v", bottoms(s))
	}
	if layer, ok := s.Layer(a); !ok || layer.Bottom != 250 {
		t.Errorf("layer of a = %+v, %v", layer, ok)
	}
}

func TestTileSetTieBreak(t *testing.T) {
	s := NewTileSet()
	right := newTile(0, 0, hexmap.Pt(80, 100))
	left := newTile(1, 0, hexmap.Pt(20, 100))
	first := newTile(2, 0, hexmap.Pt(50, 100))
	second := newTile(3, 0, hexmap.Pt(50, 100))
	s.Add(right)
	s.Add(first)
	s.Add(left)
	s.Add(second)

	var order []*component.Tile
	for tile := range s.All() {
		order = append(order, tile)
	}
	if !slices.Equal(order, []*component.Tile{left, first, second, right}) {
		t.Error("equal bottoms must order by left edge, then insertion")
	}
}

func TestTileSetAllRestartable(t *testing.T) {
	s := NewTileSet()
	for i := 0; i < 4; i++ {
		s.Add(newTile(i, 0, hexmap.Pt(0, i*10)))
	}
	for pass := 0; pass < 2; pass++ {
		n := 0
		for range s.All() {
			n++
		}
		if n != 4 {
			t.Fatalf("pass %d yielded %d tiles", pass, n)
		}
	}
	for range s.All() {
		break
	}

	s.Clear()
	if s.Len() != 0 {
		t.Error("Clear should empty the set")
	}
	if _, ok := s.Layer(newTile(0, 0, hexmap.Pt(0, 0))); ok {
		t.Error("unknown tile has no layer")
	}
}
