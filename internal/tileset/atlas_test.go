package tileset

import (
	"math/rand"
	"testing"

	"github.com/Faultbox/overworld/internal/world"
)

func TestBuildRegistersEveryVariant(t *testing.T) {
	reg, err := Build(NewSynthesizer(42), testSize)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	for _, kind := range world.Kinds() {
		want := world.Info(kind).Variants
		if got := len(reg.VariantsFor(kind)); got != want {
			t.Errorf("%s has %d registered variants, want %d", kind, got, want)
		}
	}
}

func TestBuildTexturesResolvable(t *testing.T) {
	reg, err := Build(NewSynthesizer(42), testSize)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	for _, kind := range world.Kinds() {
		for _, h := range reg.VariantsFor(kind) {
			tex := reg.Texture(h)
			if tex == nil || tex.Size != testSize {
				t.Fatalf("handle %d for %s resolves to bad texture", h, kind)
			}
		}
	}
}

func TestValidateMissingKind(t *testing.T) {
	reg := NewRegistry()
	reg.Register(world.Grass, NewTexture(testSize))

	if err := reg.Validate(); err == nil {
		t.Error("Validate accepted a registry with missing kinds")
	}
}

func TestPickVariantMembership(t *testing.T) {
	reg, err := Build(NewSynthesizer(42), testSize)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	rng := rand.New(rand.NewSource(1))
	for _, kind := range world.Kinds() {
		valid := map[Handle]bool{}
		for _, h := range reg.VariantsFor(kind) {
			valid[h] = true
		}
		for i := 0; i < 100; i++ {
			if h := reg.PickVariant(kind, rng); !valid[h] {
				t.Fatalf("PickVariant(%s) returned foreign handle %d", kind, h)
			}
		}
	}
}

func TestPickVariantHitsAllVariants(t *testing.T) {
	reg, err := Build(NewSynthesizer(42), testSize)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	rng := rand.New(rand.NewSource(1))
	seen := map[Handle]bool{}
	for i := 0; i < 500; i++ {
		seen[reg.PickVariant(world.Grass, rng)] = true
	}
	if len(seen) != len(reg.VariantsFor(world.Grass)) {
		t.Errorf("500 uniform picks hit %d of %d grass variants",
			len(seen), len(reg.VariantsFor(world.Grass)))
	}
}

func TestPlaceAllCoversGrid(t *testing.T) {
	grid := world.Generate(12, 9, world.NewNoiseField(42))
	reg, err := Build(NewSynthesizer(42), testSize)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	placements := PlaceAll(grid, reg, rand.New(rand.NewSource(2)))

	if len(placements) != 12*9 {
		t.Fatalf("got %d placements, want %d", len(placements), 12*9)
	}

	seen := map[world.Tile]bool{}
	for _, p := range placements {
		if seen[p.Tile] {
			t.Fatalf("tile %v placed twice", p.Tile)
		}
		seen[p.Tile] = true

		// The chosen handle must belong to the cell's kind.
		kind := grid.KindAt(p.Tile)
		ok := false
		for _, h := range reg.VariantsFor(kind) {
			if h == p.Handle {
				ok = true
				break
			}
		}
		if !ok {
			t.Fatalf("tile %v (%s) got handle %d from another kind", p.Tile, kind, p.Handle)
		}
	}
}
