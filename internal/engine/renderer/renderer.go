// Package renderer uploads synthesized pixel buffers as SDL textures and
// draws the world each frame.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/overworld/internal/engine/camera"
	"github.com/Faultbox/overworld/internal/tileset"
	"github.com/Faultbox/overworld/internal/world"
)

// Renderer draws tile placements and the actor through an SDL 2D renderer.
type Renderer struct {
	r        *sdl.Renderer
	tiles    map[tileset.Handle]*sdl.Texture
	marker   *sdl.Texture
	cellSize int32
}

// New creates a renderer drawing cells of the given pixel size.
func New(r *sdl.Renderer, cellSize int) *Renderer {
	return &Renderer{
		r:        r,
		tiles:    make(map[tileset.Handle]*sdl.Texture),
		cellSize: int32(cellSize),
	}
}

// UploadAtlas creates one GPU texture per registered atlas handle.
func (r *Renderer) UploadAtlas(reg *tileset.Registry) error {
	for _, kind := range world.Kinds() {
		for _, h := range reg.VariantsFor(kind) {
			tex, err := r.upload(reg.Texture(h))
			if err != nil {
				return fmt.Errorf("uploading %s texture: %w", kind, err)
			}
			r.tiles[h] = tex
		}
	}
	return nil
}

// UploadMarker creates the actor marker texture.
func (r *Renderer) UploadMarker(tex *tileset.Texture) error {
	t, err := r.upload(tex)
	if err != nil {
		return fmt.Errorf("uploading actor marker: %w", err)
	}
	if err := t.SetBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		return fmt.Errorf("setting marker blend mode: %w", err)
	}
	r.marker = t
	return nil
}

// upload copies an RGBA buffer into a static SDL texture.
func (r *Renderer) upload(src *tileset.Texture) (*sdl.Texture, error) {
	tex, err := r.r.CreateTexture(
		sdl.PIXELFORMAT_RGBA32,
		sdl.TEXTUREACCESS_STATIC,
		int32(src.Size),
		int32(src.Size),
	)
	if err != nil {
		return nil, err
	}
	if err := tex.Update(nil, unsafe.Pointer(&src.Pixels[0]), src.Size*4); err != nil {
		tex.Destroy()
		return nil, err
	}
	return tex, nil
}

// Begin clears the frame.
func (r *Renderer) Begin() {
	r.r.SetDrawColor(0, 0, 0, 255)
	r.r.Clear()
}

// DrawPlacements draws every visible cell of the generated map.
func (r *Renderer) DrawPlacements(placements []tileset.Placement, cam *camera.Camera) {
	vw, vh := int32(0), int32(0)
	if out := r.r.GetViewport(); out.W > 0 {
		vw, vh = out.W, out.H
	}
	for _, p := range placements {
		sx, sy := cam.ToScreen(float64(p.Tile.X)*float64(r.cellSize), float64(p.Tile.Y)*float64(r.cellSize))
		if vw > 0 && (sx+r.cellSize < 0 || sy+r.cellSize < 0 || sx >= vw || sy >= vh) {
			continue
		}
		dst := sdl.Rect{X: sx, Y: sy, W: r.cellSize, H: r.cellSize}
		r.r.Copy(r.tiles[p.Handle], nil, &dst)
	}
}

// DrawActor draws the marker centered on the actor's world position.
func (r *Renderer) DrawActor(wx, wy, scale float64, cam *camera.Camera) {
	if r.marker == nil {
		return
	}
	size := int32(float64(r.cellSize) * scale)
	sx, sy := cam.ToScreen(wx, wy)
	dst := sdl.Rect{X: sx - size/2, Y: sy - size/2, W: size, H: size}
	r.r.Copy(r.marker, nil, &dst)
}

// Present swaps the frame to the screen.
func (r *Renderer) Present() {
	r.r.Present()
}

// Close destroys every uploaded texture.
func (r *Renderer) Close() {
	for _, t := range r.tiles {
		t.Destroy()
	}
	if r.marker != nil {
		r.marker.Destroy()
	}
}
