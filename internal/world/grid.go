package world

// Tile addresses one cell of the grid.
type Tile struct {
	X, Y int
}

// Grid is the generated terrain map. Immutable after Generate; any number of
// readers may query it without synchronization.
type Grid struct {
	width  int
	height int
	kinds  [][]Kind // [x][y]
}

// Generate builds the full grid by sampling and classifying every cell once.
// O(width*height) noise evaluations; the stored grid is the only cache.
func Generate(width, height int, field *NoiseField) *Grid {
	kinds := make([][]Kind, width)
	for x := 0; x < width; x++ {
		kinds[x] = make([]Kind, height)
		for y := 0; y < height; y++ {
			kinds[x][y] = Classify(field.Sample(x, y))
		}
	}
	return &Grid{width: width, height: height, kinds: kinds}
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether the tile lies inside [0,width) x [0,height).
func (g *Grid) InBounds(t Tile) bool {
	return t.X >= 0 && t.X < g.width && t.Y >= 0 && t.Y < g.height
}

// KindAt returns the terrain kind at a tile. The caller must guarantee the
// tile is in bounds.
func (g *Grid) KindAt(t Tile) Kind {
	return g.kinds[t.X][t.Y]
}

// IsWalkable reports whether the actor may occupy the tile. Out-of-bounds
// tiles are never walkable.
func (g *Grid) IsWalkable(t Tile) bool {
	return g.InBounds(t) && g.kinds[t.X][t.Y].Walkable()
}

// Center returns the map's center cell.
func (g *Grid) Center() Tile {
	return Tile{X: g.width / 2, Y: g.height / 2}
}

// NearestWalkable returns the closest walkable tile to start by expanding
// ring search. Returns false only when the grid has no walkable cell at all.
func (g *Grid) NearestWalkable(start Tile) (Tile, bool) {
	if g.IsWalkable(start) {
		return start, true
	}
	maxRadius := g.width
	if g.height > maxRadius {
		maxRadius = g.height
	}
	for r := 1; r <= maxRadius; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if dx > -r && dx < r && dy > -r && dy < r {
					continue // interior already visited at a smaller radius
				}
				t := Tile{X: start.X + dx, Y: start.Y + dy}
				if g.IsWalkable(t) {
					return t, true
				}
			}
		}
	}
	return Tile{}, false
}
