package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Cols: 25,
			Rows: 20,
		},
		Snake: ActorConfig{
			StartX:    10,
			StartY:    10,
			Direction: "right",
			Speed:     8,
			Length:    4,
		},
		Gameplay: GameplayConfig{
			GameOverDelay: 0.5,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
