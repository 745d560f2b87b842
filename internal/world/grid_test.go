package world

import "testing"

// testGrid builds a grid with explicit kinds, [x][y].
func testGrid(kinds [][]Kind) *Grid {
	return &Grid{width: len(kinds), height: len(kinds[0]), kinds: kinds}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(16, 16, NewNoiseField(42))
	b := Generate(16, 16, NewNoiseField(42))

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			tile := Tile{X: x, Y: y}
			if a.KindAt(tile) != b.KindAt(tile) {
				t.Fatalf("cell (%d,%d) differs between identical seeds: %s vs %s",
					x, y, a.KindAt(tile), b.KindAt(tile))
			}
		}
	}
}

func TestGenerateFullCoverage(t *testing.T) {
	g := Generate(8, 12, NewNoiseField(7))

	if g.Width() != 8 || g.Height() != 12 {
		t.Fatalf("grid size = %dx%d, want 8x12", g.Width(), g.Height())
	}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			k := g.KindAt(Tile{X: x, Y: y})
			if k >= kindCount {
				t.Fatalf("cell (%d,%d) holds invalid kind %d", x, y, k)
			}
		}
	}
}

func TestWaterNeverWalkable(t *testing.T) {
	// Whatever the map looks like, walkability must agree with the kind.
	g := Generate(32, 32, NewNoiseField(3))
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			tile := Tile{X: x, Y: y}
			want := g.KindAt(tile) != Water
			if got := g.IsWalkable(tile); got != want {
				t.Errorf("IsWalkable(%d,%d) = %v for %s", x, y, got, g.KindAt(tile))
			}
		}
	}
}

func TestInBounds(t *testing.T) {
	g := testGrid([][]Kind{
		{Grass, Grass},
		{Grass, Grass},
		{Grass, Grass},
	})

	tests := []struct {
		tile Tile
		want bool
	}{
		{Tile{0, 0}, true},
		{Tile{2, 1}, true},
		{Tile{-1, 0}, false},
		{Tile{0, -1}, false},
		{Tile{3, 0}, false},
		{Tile{0, 2}, false},
	}
	for _, tt := range tests {
		if got := g.InBounds(tt.tile); got != tt.want {
			t.Errorf("InBounds(%v) = %v, want %v", tt.tile, got, tt.want)
		}
	}
}

func TestIsWalkableOutOfBounds(t *testing.T) {
	g := testGrid([][]Kind{{Grass}})
	if g.IsWalkable(Tile{X: 5, Y: 5}) {
		t.Error("out-of-bounds tile reported walkable")
	}
}

func TestNearestWalkable(t *testing.T) {
	g := testGrid([][]Kind{
		{Water, Water, Water},
		{Water, Water, Grass},
		{Water, Water, Water},
	})

	got, ok := g.NearestWalkable(Tile{X: 1, Y: 1})
	if !ok {
		t.Fatal("NearestWalkable found nothing on a grid with a grass cell")
	}
	if (got != Tile{X: 1, Y: 2}) {
		t.Errorf("NearestWalkable = %v, want {1 2}", got)
	}

	// Already-walkable start returns itself.
	got, ok = g.NearestWalkable(Tile{X: 1, Y: 2})
	if !ok || (got != Tile{X: 1, Y: 2}) {
		t.Errorf("NearestWalkable on walkable start = %v ok=%v, want itself", got, ok)
	}
}

func TestNearestWalkableAllWater(t *testing.T) {
	g := testGrid([][]Kind{
		{Water, Water},
		{Water, Water},
	})
	if _, ok := g.NearestWalkable(Tile{X: 0, Y: 0}); ok {
		t.Error("NearestWalkable reported success on an all-water grid")
	}
}
