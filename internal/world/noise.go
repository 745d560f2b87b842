package world

import (
	"github.com/aquilax/go-perlin"
)

// Fractal parameters for overworld height sampling. Fixed for the life of a
// session; only the seed varies between sessions.
const (
	noiseOctaves    = 4
	noiseLacunarity = 2.0
	noiseGain       = 0.5
	noiseFrequency  = 0.01

	// A single go-perlin octave per call; the fBm loop in Sample owns
	// octaves, lacunarity and gain.
	perlinAlpha = 2.0
	perlinBeta  = 2.0
)

// NoiseField samples seeded 2D fractal noise for integer cell coordinates.
// Pure after construction; safe for concurrent readers.
type NoiseField struct {
	seed int64
	p    *perlin.Perlin
}

// NewNoiseField creates a field for the given seed. Two fields with the same
// seed produce identical samples.
func NewNoiseField(seed int64) *NoiseField {
	return &NoiseField{
		seed: seed,
		p:    perlin.NewPerlin(perlinAlpha, perlinBeta, 1, seed),
	}
}

// Seed returns the seed the field was constructed with.
func (f *NoiseField) Seed() int64 {
	return f.seed
}

// Sample returns the fractal height at a cell coordinate, roughly in [-1, 1].
// Deterministic for a fixed seed.
func (f *NoiseField) Sample(x, y int) float64 {
	fx := float64(x) * noiseFrequency
	fy := float64(y) * noiseFrequency

	var total, amplitude, maxAmp float64
	amplitude = 1.0
	frequency := 1.0
	for i := 0; i < noiseOctaves; i++ {
		total += f.p.Noise2D(fx*frequency, fy*frequency) * amplitude
		maxAmp += amplitude
		amplitude *= noiseGain
		frequency *= noiseLacunarity
	}
	return total / maxAmp
}
