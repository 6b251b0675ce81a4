package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

// overrides holds command-line values that replace config file values.
// Zero means "keep the config value".
type overrides struct {
	speed float64
	cols  int
	rows  int
}

var flagOverrides overrides

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game of Snake.

Controls:
  Arrows/WASD/HJKL  - Steer
  Space/Click       - Turn clockwise
  Any key           - Start / restart after game over
  Q/Ctrl+C          - Quit

Examples:
  snake play
  snake play --speed 12
  snake play --config ./my-snake.yaml --log-file snake.log`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	addOverrideFlags(playCmd)
}

func addOverrideFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&flagOverrides.speed, "speed", 0, "Snake speed in moves per second (0 = from config)")
	cmd.Flags().IntVar(&flagOverrides.cols, "cols", 0, "Grid width including walls (0 = from config)")
	cmd.Flags().IntVar(&flagOverrides.rows, "rows", 0, "Grid height including walls (0 = from config)")
}

// apply writes the non-zero overrides into cfg.
func (o overrides) apply(cfg *config.SnakeConfig) {
	if o.speed != 0 {
		cfg.Snake.Speed = o.speed
	}
	if o.cols != 0 {
		cfg.Grid.Cols = o.cols
	}
	if o.rows != 0 {
		cfg.Grid.Rows = o.rows
	}
}

// loadSettings resolves the configuration, applies overrides and converts
// the result into game settings.
func loadSettings(path string, o overrides) (snake.Settings, string, error) {
	cfg, source, err := config.LoadSnake(path)
	if err != nil {
		return snake.Settings{}, source, err
	}

	o.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return snake.Settings{}, source, fmt.Errorf("invalid options: %w", err)
	}

	settings, err := snake.SettingsFromConfig(cfg)
	if err != nil {
		return snake.Settings{}, source, err
	}
	return settings, source, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	settings, source, err := loadSettings(flagConfig, flagOverrides)
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", source,
		"cols", settings.Cols, "rows", settings.Rows, "speed", settings.Speed)

	game, err := snake.New(settings)
	if err != nil {
		return err
	}

	// Get terminal size; Bubble Tea sends the real size on start anyway
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
