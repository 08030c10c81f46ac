package component

import (
	"image"
	"testing"

	"go-hex-terrain/internal/defs"
	"go-hex-terrain/pkg/hexmap"
)

func waterDef() defs.BiomeDefinition {
	def, _ := defs.DefaultTerrain().Definition(defs.BiomeWater)
	return def
}

func TestTileGeometry(t *testing.T) {
	tile := NewTile(hexmap.Cell{I: 1, J: 2}, waterDef(), hexmap.Pt(100, 200))

	if tile.Biome != defs.BiomeWater || tile.Height != 5 {
		t.Fatalf("unexpected tile %+v", tile)
	}
	if got := tile.TopLeft(); got != hexmap.Pt(100, 163) {
		t.Errorf("TopLeft = %v", got)
	}
	if got := tile.Bounds(); got != image.Rect(100, 163, 165, 200) {
		t.Errorf("Bounds = %v", got)
	}
	if got := tile.Depth(); got != (DepthKey{Bottom: 200, Left: 100}) {
		t.Errorf("Depth = %+v", got)
	}
}

func TestTileContainsCapOnly(t *testing.T) {
	tile := NewTile(hexmap.Cell{}, waterDef(), hexmap.Pt(0, 0))
	tl := tile.TopLeft()

	if !tile.Contains(tl.Add(hexmap.CapCentroid())) {
		t.Error("cap centroid should hit")
	}
	if tile.Contains(tl.Add(hexmap.Pt(40, 33))) {
		t.Error("wall pixel must not hit")
	}
	if tile.Contains(tl.Add(hexmap.Pt(0, hexmap.FootprintHeight+3))) {
		t.Error("point below the cap must not hit")
	}
	if tile.Contains(hexmap.Pt(500, 500)) {
		t.Error("far point must not hit")
	}
}

func TestDepthKeyLess(t *testing.T) {
	tests := []struct {
		a, b DepthKey
		want bool
	}{
		{DepthKey{100, 0}, DepthKey{150, 0}, true},
		{DepthKey{150, 0}, DepthKey{100, 900}, false},
		{DepthKey{100, 10}, DepthKey{100, 40}, true},
		{DepthKey{100, 40}, DepthKey{100, 40}, false},
	}
	for _, tt := range tests {
		if got := tt.a.Less(tt.b); got != tt.want {
			t.Errorf("%+v.Less(%+v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCursorFor(t *testing.T) {
	tile := NewTile(hexmap.Cell{I: 3, J: 4}, waterDef(), hexmap.Pt(10, 50))
	c := CursorFor(tile)
	if !c.Hit || c.Biome != defs.BiomeWater || c.Cell != tile.Cell || c.Anchor != tile.Anchor || c.TopLeft != hexmap.Pt(10, 13) {
		t.Errorf("unexpected cursor %+v", c)
	}
	var none CursorState
	if none.Hit {
		t.Error("zero cursor must be a miss")
	}
}
