package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// SettingsFromConfig converts a loaded configuration into game settings.
func SettingsFromConfig(cfg config.SnakeConfig) (Settings, error) {
	dir, err := ParseDirection(cfg.Snake.Direction)
	if err != nil {
		return Settings{}, err
	}

	s := Settings{
		Cols:          cfg.Grid.Cols,
		Rows:          cfg.Grid.Rows,
		StartX:        cfg.Snake.StartX,
		StartY:        cfg.Snake.StartY,
		Direction:     dir,
		Speed:         cfg.Snake.Speed,
		Length:        cfg.Snake.Length,
		GameOverDelay: cfg.Gameplay.GameOverDelay,
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("snake: %w", err)
	}
	return s, nil
}
