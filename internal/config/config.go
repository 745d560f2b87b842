// Package config handles client configuration loading and management.
package config

// Config holds all client settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	World    WorldConfig    `yaml:"world"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// WorldConfig holds map generation and movement settings.
type WorldConfig struct {
	// Seed of 0 draws a fresh seed at startup; any other value reproduces
	// the same map between sessions.
	Seed       int64   `yaml:"seed"`
	MapWidth   int     `yaml:"map_width"`  // cells
	MapHeight  int     `yaml:"map_height"` // cells
	CellSize   int     `yaml:"cell_size"`  // world units (pixels) per cell
	TileSize   int     `yaml:"tile_size"`  // synthesized texture edge in pixels
	MoveSpeed  float64 `yaml:"move_speed"` // world units per second
	ActorScale float64 `yaml:"actor_scale"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		World: WorldConfig{
			Seed:       0,
			MapWidth:   64,
			MapHeight:  64,
			CellSize:   32,
			TileSize:   32,
			MoveSpeed:  160,
			ActorScale: 0.75,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
