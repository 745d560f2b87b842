package world

import "testing"

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		height float64
		want   Kind
	}{
		{-1.0, Water},
		{-0.26, Water},
		{-0.2500001, Water},
		// Boundary values classify into the higher band.
		{-0.25, Grass},
		{0.0, Grass},
		{0.1999, Grass},
		{0.20, Forest},
		{0.44, Forest},
		{0.45, Mountain},
		{1.0, Mountain},
	}

	for _, tt := range tests {
		if got := Classify(tt.height); got != tt.want {
			t.Errorf("Classify(%v) = %s, want %s", tt.height, got, tt.want)
		}
	}
}

func TestClassifyTotal(t *testing.T) {
	// Every float must land in exactly one valid band; sweep a dense range
	// around the thresholds.
	for h := -2.0; h <= 2.0; h += 0.001 {
		k := Classify(h)
		if k >= kindCount {
			t.Fatalf("Classify(%v) returned invalid kind %d", h, k)
		}
	}
}

func TestWalkable(t *testing.T) {
	for _, k := range Kinds() {
		want := k != Water
		if got := k.Walkable(); got != want {
			t.Errorf("%s.Walkable() = %v, want %v", k, got, want)
		}
	}
}

func TestKindTable(t *testing.T) {
	for _, k := range Kinds() {
		info := Info(k)
		if info.Name == "" {
			t.Errorf("kind %d has empty name", k)
		}
		if info.Variants < 1 {
			t.Errorf("%s has %d variants, want at least 1", k, info.Variants)
		}
		for _, ch := range []float64{info.Base.R, info.Base.G, info.Base.B} {
			if ch < 0 || ch > 1 {
				t.Errorf("%s base channel %v out of [0,1]", k, ch)
			}
		}
	}
}
