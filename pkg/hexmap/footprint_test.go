package hexmap

import "testing"

func TestCapMaskShape(t *testing.T) {
	m := CapMask()
	if m.W != FootprintWidth || m.H != FootprintHeight {
		t.Fatalf("mask is %dx%d", m.W, m.H)
	}
	if m != CapMask() {
		t.Error("cap mask should be built once and shared")
	}

	c := CapCentroid()
	if c != Pt(32, 15) {
		t.Errorf("centroid = %v", c)
	}
	if !m.Contains(c.X, c.Y) {
		t.Error("centroid must be inside the cap")
	}

	for _, p := range []Point{{0, 0}, {64, 0}, {0, 31}, {64, 31}, {-1, 15}, {65, 15}, {32, 32}} {
		if m.Contains(p.X, p.Y) {
			t.Errorf("%v should be outside the cap", p)
		}
	}

	n := m.Count()
	if n == 0 || n >= FootprintWidth*FootprintHeight {
		t.Errorf("unexpected solid pixel count %d", n)
	}
}

func TestCapMaskExcludesWall(t *testing.T) {
	const h = 5
	w, ht := ImageSize(h)
	wall := RasterizeMask(WallPolygon(h), w, ht)
	top := CapMask()
	for _, p := range []Point{{40, 30}, {10, 30}, {30, 33}} {
		if !wall.Contains(p.X, p.Y) {
			t.Errorf("%v should be inside the wall", p)
		}
		if top.Contains(p.X, p.Y) {
			t.Errorf("%v is on the wall and must not be in the cap mask", p)
		}
	}
}

func TestWallGeometry(t *testing.T) {
	got := WallPolygon(10)
	want := []Point{{0, 22}, {64, 10}, {64, 20}, {57, 37}, {20, 41}, {0, 32}}
	if len(got) != len(want) {
		t.Fatalf("wall has %d points", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("wall[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if rim := WallRim(10); len(rim) != 4 || rim[0] != Pt(64, 20) {
		t.Errorf("rim = %v", rim)
	}
	edges := WallEdges(10)
	if len(edges) != 4 || edges[1] != [2]Point{{57, 27}, {57, 37}} {
		t.Errorf("edges = %v", edges)
	}
	if w, h := ImageSize(10); w != 65 || h != 42 {
		t.Errorf("ImageSize(10) = %d,%d", w, h)
	}
}

func TestRasterizeMaskDegenerate(t *testing.T) {
	m := RasterizeMask([]Point{{0, 0}, {5, 5}}, 10, 10)
	if m.Count() != 0 {
		t.Error("a two-point polygon has no area")
	}
}
