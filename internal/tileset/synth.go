package tileset

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/overworld/internal/world"
)

// trunkBrown is the fixed trunk color for forest tiles.
var trunkBrown = colorful.Color{R: 0.36, G: 0.25, B: 0.13}

// Synthesizer paints tile textures procedurally, one distinct rule set per
// terrain kind. Every texture is bit-reproducible for a fixed
// (seed, kind, variant, size); stochastic detail (grass tint, tufts) draws
// from a stream derived from kind and variant rather than shared state.
type Synthesizer struct {
	seed int64
}

// NewSynthesizer creates a synthesizer for the given session seed.
func NewSynthesizer(seed int64) *Synthesizer {
	return &Synthesizer{seed: seed}
}

// Tile paints the texture for one (kind, variant) pair.
func (s *Synthesizer) Tile(kind world.Kind, variant, size int) *Texture {
	tex := NewTexture(size)
	base := world.Info(kind).Base

	switch kind {
	case world.Water:
		s.paintWater(tex, base, variant)
	case world.Grass:
		s.paintGrass(tex, base, variant)
	case world.Forest:
		s.paintForest(tex, base, variant)
	case world.Mountain:
		s.paintMountain(tex, base, variant)
	}
	return tex
}

// detailRand returns the dedicated random stream for one texture, derived
// from (seed, kind, variant) so textures never depend on synthesis order.
func (s *Synthesizer) detailRand(kind world.Kind, variant int) *rand.Rand {
	mix := s.seed ^ (int64(kind)+1)*0x517cc1b727220a95 ^ int64(variant)*0x6c62272e07bb0142
	return rand.New(rand.NewSource(mix))
}

// paintWater: vertical gradient dark-to-base, diagonal stripe highlights
// with a variant-dependent phase, and a sparse grid of darker dots.
func (s *Synthesizer) paintWater(tex *Texture, base colorful.Color, variant int) {
	size := tex.Size
	top := darken(base, 0.35)
	stripeOffset := variant * 2

	for y := 0; y < size; y++ {
		t := float64(y) / float64(size)
		row := top.BlendRgb(base, t)
		for x := 0; x < size; x++ {
			c := row
			if (x+y+stripeOffset)%6 < 2 {
				c = lighten(c, 0.12)
			}
			tex.Set(x, y, c)
		}
	}

	// Dot grid every 8 pixels, offset into the cell so dots never sit on
	// the tile seam.
	dot := darken(base, 0.45)
	for y := 4; y < size; y += 8 {
		for x := 4; x < size; x += 8 {
			tex.Set(x, y, dot)
		}
	}
}

// paintGrass: per-pixel stochastic tint between base and shadow, short
// upward tuft strokes, and a dashed shadow line along the bottom edge.
func (s *Synthesizer) paintGrass(tex *Texture, base colorful.Color, variant int) {
	size := tex.Size
	shadow := darken(base, 0.40)
	rng := s.detailRand(world.Grass, variant)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			tex.Set(x, y, base.BlendRgb(shadow, rng.Float64()))
		}
	}

	// Tuft blades, more per variant.
	blade := lighten(base, 0.30)
	tufts := 6 + variant*4
	for i := 0; i < tufts; i++ {
		tx := rng.Intn(size)
		ty := rng.Intn(size)
		for d := 0; d < 3; d++ {
			tex.Set(tx, ty-d, blade)
		}
	}

	// Dashed bottom shadow; dash phase follows the variant.
	edge := darken(base, 0.55)
	for x := 0; x < size; x++ {
		if (x+variant)%4 < 2 {
			tex.Set(x, size-1, edge)
		}
	}
}

// paintForest: a darkened floor, two radially shaded canopy blobs whose
// radius and placement shift with the variant, and a trunk beneath each.
func (s *Synthesizer) paintForest(tex *Texture, base colorful.Color, variant int) {
	size := tex.Size
	floor := darken(base, 0.25)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			tex.Set(x, y, floor)
		}
	}

	radius := size/4 + variant
	blobs := []struct{ X, Y int }{
		{X: size/3 + variant, Y: size / 3},
		{X: 2*size/3 - variant, Y: size/2 + variant},
	}
	center := lighten(base, 0.25)
	edge := darken(base, 0.35)

	for _, b := range blobs {
		// Trunk first so the canopy overdraws its upper part.
		trunkLen := radius + radius/2
		for d := 0; d < trunkLen; d++ {
			tex.Set(b.X, b.Y+d, trunkBrown)
			tex.Set(b.X+1, b.Y+d, trunkBrown)
		}

		r2 := radius * radius
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				d2 := dx*dx + dy*dy
				if d2 > r2 {
					continue
				}
				ratio := float64(d2) / float64(r2)
				tex.Set(b.X+dx, b.Y+dy, center.BlendRgb(edge, ratio))
			}
		}
	}
}

// paintMountain: a wedge peak widening linearly from a variant-shifted apex,
// light at the top blending to dark slope at the base, then a 60% shadow
// blend over the lower-right quadrant.
func (s *Synthesizer) paintMountain(tex *Texture, base colorful.Color, variant int) {
	size := tex.Size
	ground := darken(base, 0.15)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			tex.Set(x, y, ground)
		}
	}

	apexX := size/2 + (variant-1)*3
	peak := lighten(base, 0.35)
	slope := darken(base, 0.30)

	for y := 0; y < size; y++ {
		t := float64(y) / float64(size)
		half := y * (size / 2) / size
		c := peak.BlendRgb(slope, t)
		for x := apexX - half; x <= apexX+half; x++ {
			tex.Set(x, y, c)
		}
	}

	// Unconditional shadow over whatever the lower-right quadrant holds.
	shade := darken(base, 0.50)
	for y := size / 2; y < size; y++ {
		for x := size / 2; x < size; x++ {
			tex.Set(x, y, tex.At(x, y).BlendRgb(shade, 0.6))
		}
	}
}

// Marker paints the round actor marker: a radially shaded disc with a darker
// outline ring on a transparent background.
func (s *Synthesizer) Marker(size int) *Texture {
	tex := NewTexture(size)
	base := colorful.Color{R: 0.85, G: 0.30, B: 0.25}
	center := lighten(base, 0.40)
	outline := darken(base, 0.55)

	cx := size / 2
	cy := size / 2
	radius := size/2 - 2
	r2 := radius * radius
	rim := (radius - 2) * (radius - 2)

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			d2 := dx*dx + dy*dy
			if d2 > r2 {
				continue
			}
			if d2 > rim {
				tex.Set(cx+dx, cy+dy, outline)
				continue
			}
			ratio := float64(d2) / float64(r2)
			tex.Set(cx+dx, cy+dy, center.BlendRgb(base, ratio))
		}
	}
	return tex
}
