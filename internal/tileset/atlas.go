package tileset

import (
	"fmt"
	"math/rand"

	"github.com/Faultbox/overworld/internal/world"
)

// Handle identifies one registered texture. Handles are stable for the life
// of the registry.
type Handle uint32

// Registry owns every synthesized texture and maps each terrain kind to its
// ordered variant handles. Immutable after Build; concurrent readers need no
// synchronization.
type Registry struct {
	textures []*Texture
	variants map[world.Kind][]Handle
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		variants: make(map[world.Kind][]Handle),
	}
}

// Register stores a texture for (kind, variant) and returns its handle.
// Variants must be registered in ascending order per kind.
func (r *Registry) Register(kind world.Kind, tex *Texture) Handle {
	h := Handle(len(r.textures))
	r.textures = append(r.textures, tex)
	r.variants[kind] = append(r.variants[kind], h)
	return h
}

// VariantsFor returns the ordered handles registered for a kind.
func (r *Registry) VariantsFor(kind world.Kind) []Handle {
	return r.variants[kind]
}

// Texture resolves a handle to its pixel buffer.
func (r *Registry) Texture(h Handle) *Texture {
	return r.textures[int(h)]
}

// PickVariant selects uniformly among the kind's registered variants.
// Placement randomness is independent from the streams used inside texture
// synthesis; the caller owns the rng.
func (r *Registry) PickVariant(kind world.Kind, rng *rand.Rand) Handle {
	hs := r.variants[kind]
	return hs[rng.Intn(len(hs))]
}

// Validate checks the registry precondition: at least one variant per kind.
// A missing kind is an initialization bug, never a runtime condition.
func (r *Registry) Validate() error {
	for _, kind := range world.Kinds() {
		if len(r.variants[kind]) == 0 {
			return fmt.Errorf("atlas has no variants for kind %s", kind)
		}
	}
	return nil
}

// Build synthesizes the full atlas: every variant of every kind at the given
// tile size.
func Build(synth *Synthesizer, tileSize int) (*Registry, error) {
	reg := NewRegistry()
	for _, kind := range world.Kinds() {
		for v := 0; v < world.Info(kind).Variants; v++ {
			reg.Register(kind, synth.Tile(kind, v, tileSize))
		}
	}
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return reg, nil
}

// Placement binds one grid cell to its chosen atlas handle. The full set is
// produced once at generation time and rendered unchanged every frame.
type Placement struct {
	Tile   world.Tile
	Handle Handle
}

// PlaceAll picks a variant for every cell of the grid.
func PlaceAll(grid *world.Grid, reg *Registry, rng *rand.Rand) []Placement {
	out := make([]Placement, 0, grid.Width()*grid.Height())
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			t := world.Tile{X: x, Y: y}
			out = append(out, Placement{
				Tile:   t,
				Handle: reg.PickVariant(grid.KindAt(t), rng),
			})
		}
	}
	return out
}
