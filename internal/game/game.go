// Package game wires world generation, the tileset and navigation into the
// interactive session loop.
package game

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/overworld/internal/config"
	"github.com/Faultbox/overworld/internal/engine/camera"
	"github.com/Faultbox/overworld/internal/engine/input"
	"github.com/Faultbox/overworld/internal/engine/renderer"
	"github.com/Faultbox/overworld/internal/engine/window"
	"github.com/Faultbox/overworld/internal/logger"
	"github.com/Faultbox/overworld/internal/nav"
	"github.com/Faultbox/overworld/internal/tileset"
	"github.com/Faultbox/overworld/internal/world"
)

// Game is one overworld session: a generated map, its tileset and the actor.
type Game struct {
	cfg       *config.Config
	sessionID uuid.UUID
	seed      int64

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.Camera

	grid       *world.Grid
	atlas      *tileset.Registry
	placements []tileset.Placement
	navctl     *nav.Controller

	running bool
}

// New generates the world and creates the session window.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		cfg:       cfg,
		sessionID: uuid.New(),
	}

	// The seed is drawn once per process; capturing it in the log makes a
	// session reproducible with -seed.
	g.seed = cfg.World.Seed
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}

	if err := g.generate(); err != nil {
		return nil, err
	}

	var err error
	g.window, err = window.New(window.Config{
		Title:      "Overworld",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	g.renderer = renderer.New(g.window.Renderer(), cfg.World.CellSize)
	if err := g.renderer.UploadAtlas(g.atlas); err != nil {
		g.window.Close()
		return nil, err
	}
	synth := tileset.NewSynthesizer(g.seed)
	if err := g.renderer.UploadMarker(synth.Marker(cfg.World.TileSize)); err != nil {
		g.window.Close()
		return nil, err
	}

	g.input = input.New()
	g.camera = camera.New(
		cfg.Graphics.Width, cfg.Graphics.Height,
		cfg.World.MapWidth*cfg.World.CellSize, cfg.World.MapHeight*cfg.World.CellSize,
	)

	logger.Info("session ready",
		zap.String("session", g.sessionID.String()),
		zap.Int64("seed", g.seed),
		zap.Int("map_width", cfg.World.MapWidth),
		zap.Int("map_height", cfg.World.MapHeight),
	)
	return g, nil
}

// generate builds the grid, the atlas, the per-cell placements and the
// navigation controller. Everything here is immutable once built except the
// controller's own state.
func (g *Game) generate() error {
	cfg := g.cfg.World

	field := world.NewNoiseField(g.seed)
	g.grid = world.Generate(cfg.MapWidth, cfg.MapHeight, field)

	synth := tileset.NewSynthesizer(g.seed)
	atlas, err := tileset.Build(synth, cfg.TileSize)
	if err != nil {
		return fmt.Errorf("building tile atlas: %w", err)
	}
	g.atlas = atlas

	// Placement randomness runs on its own stream, independent from the
	// streams used inside texture synthesis.
	placeRng := rand.New(rand.NewSource(g.seed + 1))
	g.placements = tileset.PlaceAll(g.grid, g.atlas, placeRng)

	start, ok := g.grid.NearestWalkable(g.grid.Center())
	if !ok {
		return fmt.Errorf("generated map has no walkable cell (seed %d)", g.seed)
	}
	g.navctl = nav.New(g.grid, start, float64(cfg.CellSize), cfg.MoveSpeed)

	logger.Info("world generated",
		zap.Int64("seed", g.seed),
		zap.Int("cells", cfg.MapWidth*cfg.MapHeight),
		zap.Int("spawn_x", start.X),
		zap.Int("spawn_y", start.Y),
	)
	return nil
}

// Run starts the main loop: input arbitration, then the navigation tick,
// then rendering, every frame.
func (g *Game) Run() error {
	g.running = true
	lastTime := time.Now()

	logger.Info("starting game loop")

	for g.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Input phase
		if g.input.Update() {
			g.running = false
			break
		}
		for _, event := range g.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				g.camera.Resize(event.Width, event.Height)
			case input.EventKeyDown:
				if event.Key == sdl.SCANCODE_ESCAPE {
					g.running = false
				}
			}
		}

		if mx, my, ok := g.input.PointerPress(); ok {
			g.navctl.OnPointerPress(g.screenToTile(mx, my))
		}

		// 2. Simulation phase
		g.navctl.Tick(dt, g.input.Snapshot())

		// 3. Render
		g.render()
	}

	return nil
}

// screenToTile converts a pointer position to the tile it landed on. The
// result may be out of bounds; the controller rejects those.
func (g *Game) screenToTile(sx, sy int) world.Tile {
	wx, wy := g.camera.ToWorld(sx, sy)
	cell := float64(g.cfg.World.CellSize)
	return world.Tile{
		X: int(math.Floor(wx / cell)),
		Y: int(math.Floor(wy / cell)),
	}
}

// render draws the current frame.
func (g *Game) render() {
	pos := g.navctl.Position()
	g.camera.Follow(pos.X, pos.Y)

	g.renderer.Begin()
	g.renderer.DrawPlacements(g.placements, g.camera)
	g.renderer.DrawActor(pos.X, pos.Y, g.cfg.World.ActorScale, g.camera)
	g.renderer.Present()
}

// Close cleans up session resources.
func (g *Game) Close() {
	logger.Info("closing game")

	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
