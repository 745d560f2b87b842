// tilesetgen synthesizes the full tile atlas and writes it to disk as PNG
// files with a YAML manifest, for inspection or host-side packaging.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/overworld/internal/tileset"
	"github.com/Faultbox/overworld/internal/world"
)

var (
	flagSeed = flag.Int64("seed", 0, "World seed (0 = random)")
	flagSize = flag.Int("size", 32, "Tile edge length in pixels")
	flagOut  = flag.String("out", "tileset", "Output directory")
)

// manifest describes one exported tileset.
type manifest struct {
	ID    string          `yaml:"id"`
	Seed  int64           `yaml:"seed"`
	Size  int             `yaml:"size"`
	Tiles []manifestEntry `yaml:"tiles"`
}

type manifestEntry struct {
	Kind    string `yaml:"kind"`
	Variant int    `yaml:"variant"`
	File    string `yaml:"file"`
}

func main() {
	flag.Parse()

	seed := *flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if err := run(seed, *flagSize, *flagOut); err != nil {
		fmt.Fprintf(os.Stderr, "tilesetgen: %v\n", err)
		os.Exit(1)
	}
}

func run(seed int64, size int, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	synth := tileset.NewSynthesizer(seed)

	m := manifest{
		ID:   uuid.NewString(),
		Seed: seed,
		Size: size,
	}

	for _, kind := range world.Kinds() {
		for v := 0; v < world.Info(kind).Variants; v++ {
			name := fmt.Sprintf("%s_%d.png", kind, v)
			if err := writePNG(filepath.Join(outDir, name), synth.Tile(kind, v, size)); err != nil {
				return err
			}
			m.Tiles = append(m.Tiles, manifestEntry{Kind: kind.String(), Variant: v, File: name})
		}
	}

	if err := writePNG(filepath.Join(outDir, "marker.png"), synth.Marker(size)); err != nil {
		return err
	}

	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "manifest.yaml"), data, 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}

	fmt.Printf("wrote %d tiles + marker to %s (seed %d)\n", len(m.Tiles), outDir, seed)
	return nil
}

// writePNG copies the raw RGBA buffer into an image.RGBA and encodes it.
func writePNG(path string, tex *tileset.Texture) error {
	img := image.NewRGBA(image.Rect(0, 0, tex.Size, tex.Size))
	copy(img.Pix, tex.Pixels)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}
