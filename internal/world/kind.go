// Package world generates and stores the overworld terrain grid.
package world

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Kind classifies one cell of the overworld.
type Kind uint8

const (
	Water Kind = iota
	Grass
	Forest
	Mountain
	kindCount // sentinel
)

// KindInfo holds the fixed per-kind configuration record.
type KindInfo struct {
	Name     string
	Base     colorful.Color // RGB, normalized 0-1 channels
	Variants int            // distinct textures generated for this kind
}

// kindTable is indexed by Kind. The kind set is closed, so this is a plain
// array rather than a keyed lookup.
var kindTable = [kindCount]KindInfo{
	Water:    {Name: "water", Base: colorful.Color{R: 0.20, G: 0.40, B: 0.75}, Variants: 3},
	Grass:    {Name: "grass", Base: colorful.Color{R: 0.30, G: 0.65, B: 0.30}, Variants: 4},
	Forest:   {Name: "forest", Base: colorful.Color{R: 0.13, G: 0.42, B: 0.17}, Variants: 3},
	Mountain: {Name: "mountain", Base: colorful.Color{R: 0.52, G: 0.50, B: 0.48}, Variants: 3},
}

// Kinds returns every terrain kind in classification order.
func Kinds() []Kind {
	return []Kind{Water, Grass, Forest, Mountain}
}

// Info returns the configuration record for a kind.
func Info(k Kind) KindInfo {
	return kindTable[k]
}

// String returns the display name of the kind.
func (k Kind) String() string {
	if k >= kindCount {
		return "unknown"
	}
	return kindTable[k].Name
}

// Walkable reports whether the actor may occupy cells of this kind.
// Water is the only impassable kind.
func (k Kind) Walkable() bool {
	return k != Water
}

// Classification thresholds. Each band is half-open on the lower side, so a
// height exactly on a boundary classifies into the higher band.
const (
	waterMax  = -0.25
	grassMax  = 0.20
	forestMax = 0.45
)

// Classify maps a noise height to a terrain kind. Total over the real line.
func Classify(height float64) Kind {
	switch {
	case height < waterMax:
		return Water
	case height < grassMax:
		return Grass
	case height < forestMax:
		return Forest
	default:
		return Mountain
	}
}
