// Package camera provides a 2D viewport that follows the actor and stays
// inside the world extent.
package camera

// Camera maps world coordinates to screen coordinates.
type Camera struct {
	x, y   float64 // world position of the top-left screen corner
	viewW  int
	viewH  int
	worldW int
	worldH int
}

// New creates a camera for the given viewport and world extent (pixels).
func New(viewW, viewH, worldW, worldH int) *Camera {
	return &Camera{viewW: viewW, viewH: viewH, worldW: worldW, worldH: worldH}
}

// Resize updates the viewport size after a window resize.
func (c *Camera) Resize(viewW, viewH int) {
	c.viewW = viewW
	c.viewH = viewH
}

// Follow centers the camera on a world position, clamped to the world
// extent. Worlds smaller than the viewport sit at the origin.
func (c *Camera) Follow(wx, wy float64) {
	c.x = clamp(wx-float64(c.viewW)/2, 0, float64(c.worldW-c.viewW))
	c.y = clamp(wy-float64(c.viewH)/2, 0, float64(c.worldH-c.viewH))
}

// ToScreen converts a world position to screen pixels.
func (c *Camera) ToScreen(wx, wy float64) (int32, int32) {
	return int32(wx - c.x), int32(wy - c.y)
}

// ToWorld converts screen pixels back to a world position.
func (c *Camera) ToWorld(sx, sy int) (float64, float64) {
	return float64(sx) + c.x, float64(sy) + c.y
}

func clamp(v, min, max float64) float64 {
	if max < min {
		max = min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
