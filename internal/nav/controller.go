// Package nav drives discrete tile-to-tile movement of the actor with
// smooth interpolation between cell centers.
package nav

import (
	"math"

	"github.com/Faultbox/overworld/internal/world"
)

// ArrivalEpsilon is the distance (world units) under which the actor snaps
// onto the target cell center.
const ArrivalEpsilon = 0.5

// WalkMap is the terrain query the controller needs.
type WalkMap interface {
	InBounds(world.Tile) bool
	IsWalkable(world.Tile) bool
}

// Vec2 is a continuous world-space position.
type Vec2 struct {
	X, Y float64
}

// Snapshot carries the directional inputs asserted this tick. All flags use
// just-pressed edge semantics: a held key registers once per press.
type Snapshot struct {
	Left, Right, Up, Down bool
}

// direction resolves the snapshot to a single step. When several directions
// are asserted in the same tick the precedence is left, right, up, down.
func (s Snapshot) direction() (dx, dy int, ok bool) {
	switch {
	case s.Left:
		return -1, 0, true
	case s.Right:
		return 1, 0, true
	case s.Up:
		return 0, -1, true
	case s.Down:
		return 0, 1, true
	}
	return 0, 0, false
}

// Controller holds the actor's navigation state. Two states exist:
// idle-at-tile (position equals the center of current == target) and
// transiting (position strictly between current and target centers).
// Only the single tick path mutates it.
type Controller struct {
	grid     WalkMap
	cellSize float64
	speed    float64 // world units per second

	current world.Tile
	target  world.Tile
	pos     Vec2
}

// New creates a controller idle at the start tile. The caller guarantees the
// start tile is walkable.
func New(grid WalkMap, start world.Tile, cellSize, speed float64) *Controller {
	c := &Controller{
		grid:     grid,
		cellSize: cellSize,
		speed:    speed,
		current:  start,
		target:   start,
	}
	c.pos = c.center(start)
	return c
}

// center returns the world-space center of a tile.
func (c *Controller) center(t world.Tile) Vec2 {
	return Vec2{
		X: (float64(t.X) + 0.5) * c.cellSize,
		Y: (float64(t.Y) + 0.5) * c.cellSize,
	}
}

// CurrentTile returns the last tile the actor fully occupied.
func (c *Controller) CurrentTile() world.Tile { return c.current }

// TargetTile returns the tile the actor is heading for.
func (c *Controller) TargetTile() world.Tile { return c.target }

// Position returns the actor's continuous world-space position.
func (c *Controller) Position() Vec2 { return c.pos }

// Idle reports whether the actor is at rest on its current tile.
func (c *Controller) Idle() bool { return c.current == c.target }

// request retargets to the candidate tile if it is in bounds and walkable.
// Invalid candidates are dropped without touching any state; a redirect
// mid-transit replaces the target while current stays untouched.
func (c *Controller) request(candidate world.Tile) {
	if !c.grid.InBounds(candidate) || !c.grid.IsWalkable(candidate) {
		return
	}
	c.target = candidate
}

// OnPointerPress handles a left-button press that resolved to a tile.
func (c *Controller) OnPointerPress(t world.Tile) {
	c.request(t)
}

// Tick runs one simulation step: input arbitration first, then position
// integration, so a direction pressed this tick moves the actor this tick.
func (c *Controller) Tick(dt float64, in Snapshot) {
	if dx, dy, ok := in.direction(); ok {
		c.request(world.Tile{X: c.target.X + dx, Y: c.target.Y + dy})
	}

	dest := c.center(c.target)
	ex := dest.X - c.pos.X
	ey := dest.Y - c.pos.Y
	dist := math.Hypot(ex, ey)
	if dist == 0 {
		c.current = c.target
		return
	}

	step := c.speed * dt
	if step > dist {
		step = dist
	}
	c.pos.X += ex / dist * step
	c.pos.Y += ey / dist * step

	if dist-step < ArrivalEpsilon {
		// Snap: exact center, transit over.
		c.pos = dest
		c.current = c.target
	}
}
