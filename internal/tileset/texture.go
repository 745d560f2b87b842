// Package tileset synthesizes tile textures and owns the atlas registry.
package tileset

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Texture is a square RGBA pixel buffer. Immutable once handed to the
// registry; the raw pixels are laid out row-major, 4 bytes per pixel.
type Texture struct {
	Size   int
	Pixels []byte
}

// NewTexture allocates a fully transparent square buffer.
func NewTexture(size int) *Texture {
	return &Texture{
		Size:   size,
		Pixels: make([]byte, size*size*4),
	}
}

// Set writes an opaque pixel. Coordinates outside the buffer are silently
// skipped; painting rules never wrap or fail.
func (t *Texture) Set(x, y int, c colorful.Color) {
	if x < 0 || x >= t.Size || y < 0 || y >= t.Size {
		return
	}
	i := (y*t.Size + x) * 4
	r, g, b := c.Clamped().RGB255()
	t.Pixels[i] = r
	t.Pixels[i+1] = g
	t.Pixels[i+2] = b
	t.Pixels[i+3] = 255
}

// At reads back the color of a pixel. The caller must stay in bounds.
func (t *Texture) At(x, y int) colorful.Color {
	i := (y*t.Size + x) * 4
	return colorful.Color{
		R: float64(t.Pixels[i]) / 255.0,
		G: float64(t.Pixels[i+1]) / 255.0,
		B: float64(t.Pixels[i+2]) / 255.0,
	}
}

// darken blends a color toward black by amount (0 = unchanged, 1 = black).
func darken(c colorful.Color, amount float64) colorful.Color {
	return c.BlendRgb(colorful.Color{}, amount)
}

// lighten blends a color toward white by amount.
func lighten(c colorful.Color, amount float64) colorful.Color {
	return c.BlendRgb(colorful.Color{R: 1, G: 1, B: 1}, amount)
}
