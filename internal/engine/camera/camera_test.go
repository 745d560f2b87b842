package camera

import "testing"

func TestFollowClampsToWorld(t *testing.T) {
	c := New(400, 300, 2048, 2048)

	tests := []struct {
		name   string
		wx, wy float64
		wantX  float64
		wantY  float64
	}{
		{"center of world", 1024, 1024, 824, 874},
		{"top-left clamp", 0, 0, 0, 0},
		{"bottom-right clamp", 2048, 2048, 1648, 1748},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.Follow(tt.wx, tt.wy)
			if c.x != tt.wantX || c.y != tt.wantY {
				t.Errorf("camera at (%v,%v), want (%v,%v)", c.x, c.y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestRoundTripScreenWorld(t *testing.T) {
	c := New(400, 300, 2048, 2048)
	c.Follow(1000, 900)

	wx, wy := c.ToWorld(120, 80)
	sx, sy := c.ToScreen(wx, wy)
	if sx != 120 || sy != 80 {
		t.Errorf("round trip gave (%d,%d), want (120,80)", sx, sy)
	}
}

func TestSmallWorldSitsAtOrigin(t *testing.T) {
	c := New(800, 600, 256, 256)
	c.Follow(128, 128)

	if c.x != 0 || c.y != 0 {
		t.Errorf("camera at (%v,%v), want origin for world smaller than viewport", c.x, c.y)
	}
}
