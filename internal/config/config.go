// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid     GridConfig     `yaml:"grid"`
	Snake    ActorConfig    `yaml:"snake"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// GridConfig defines the board size, walls included.
type GridConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// ActorConfig defines how the snake spawns.
type ActorConfig struct {
	StartX    int     `yaml:"start_x"`
	StartY    int     `yaml:"start_y"`
	Direction string  `yaml:"direction"` // up, right, down or left
	Speed     float64 `yaml:"speed"`     // Moves per second
	Length    int     `yaml:"length"`
}

// GameplayConfig defines session rules.
type GameplayConfig struct {
	GameOverDelay float64 `yaml:"gameover_delay"` // Seconds
}

var directionNames = []string{"up", "right", "down", "left"}

// Validate checks field-level constraints. Whether the snake fits on the
// board is checked by the game itself.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Grid.Cols < 3 {
		errs = append(errs, fmt.Errorf("grid.cols must be at least 3, got %d", c.Grid.Cols))
	}
	if c.Grid.Rows < 3 {
		errs = append(errs, fmt.Errorf("grid.rows must be at least 3, got %d", c.Grid.Rows))
	}
	if !validDirection(c.Snake.Direction) {
		errs = append(errs, fmt.Errorf("snake.direction must be one of %s, got %q",
			strings.Join(directionNames, ", "), c.Snake.Direction))
	}
	if c.Snake.Speed <= 0 {
		errs = append(errs, fmt.Errorf("snake.speed must be positive, got %v", c.Snake.Speed))
	}
	if c.Snake.Length < 1 {
		errs = append(errs, fmt.Errorf("snake.length must be at least 1, got %d", c.Snake.Length))
	}
	if c.Gameplay.GameOverDelay < 0 {
		errs = append(errs, fmt.Errorf("gameplay.gameover_delay must not be negative, got %v", c.Gameplay.GameOverDelay))
	}

	return errors.Join(errs...)
}

func validDirection(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, d := range directionNames {
		if d == name {
			return true
		}
	}
	return false
}
