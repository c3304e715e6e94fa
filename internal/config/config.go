// Package config provides YAML-based configuration loading for the game:
// board selection and size, spawn points, speeds, tick rate, seed and log
// level.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pacman/internal/game"
)

// Config is the complete game configuration.
type Config struct {
	Board    BoardConfig `yaml:"board"`
	Agent    AgentConfig `yaml:"agent"`
	Enemies  EnemyConfig `yaml:"enemies"`
	TickRate int         `yaml:"tick_rate"` // ticks per second
	Seed     int64       `yaml:"seed"`      // 0 picks a seed at startup
	LogLevel string      `yaml:"log_level"`
}

// BoardConfig selects the map and its geometry.
type BoardConfig struct {
	Name       string `yaml:"name"` // built-in map, used when File is empty
	File       string `yaml:"file"` // path to a map file
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	TileWidth  int    `yaml:"tile_width"`  // screen columns per tile
	TileHeight int    `yaml:"tile_height"` // screen rows per tile
}

// AgentConfig defines the player's body.
type AgentConfig struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Velocity  float64 `yaml:"velocity"`
	Autopilot bool    `yaml:"autopilot"`
}

// EnemyConfig defines the ghosts.
type EnemyConfig struct {
	Velocity    float64 `yaml:"velocity"`
	Rerandomize int     `yaml:"rerandomize_every"`
	Spawns      []Point `yaml:"spawns"`
}

// Point is a spawn position in tile units.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Validate checks the configuration for values the game cannot run with.
// All problems are reported together.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	b := c.Board
	if b.Width <= 0 || b.Height <= 0 {
		bad("board size %dx%d must be positive", b.Width, b.Height)
	}
	if b.TileWidth <= 0 || b.TileHeight <= 0 {
		bad("tile size %dx%d must be positive", b.TileWidth, b.TileHeight)
	}
	if b.Name == "" && b.File == "" {
		bad("board needs a name or a file")
	}

	// A move must never skip a whole tile.
	if c.Agent.Velocity <= 0 || c.Agent.Velocity >= 1 {
		bad("agent velocity %v must be in (0, 1)", c.Agent.Velocity)
	}
	if c.Enemies.Velocity <= 0 || c.Enemies.Velocity >= 1 {
		bad("enemy velocity %v must be in (0, 1)", c.Enemies.Velocity)
	}
	if c.Enemies.Rerandomize <= 0 {
		bad("rerandomize_every %d must be positive", c.Enemies.Rerandomize)
	}
	if c.TickRate <= 0 {
		bad("tick_rate %d must be positive", c.TickRate)
	}

	if c.LogLevel != "" {
		if _, err := log.ParseLevel(c.LogLevel); err != nil {
			bad("log_level: %w", err)
		}
	}

	if !c.inBoard(c.Agent.X, c.Agent.Y) {
		bad("agent spawn (%v, %v) is outside the %dx%d board", c.Agent.X, c.Agent.Y, b.Width, b.Height)
	}
	for i, sp := range c.Enemies.Spawns {
		if !c.inBoard(sp.X, sp.Y) {
			bad("enemy %d spawn (%v, %v) is outside the %dx%d board", i, sp.X, sp.Y, b.Width, b.Height)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func (c Config) inBoard(x, y float64) bool {
	return x >= 0 && y >= 0 && x < float64(c.Board.Width) && y < float64(c.Board.Height)
}

// SessionOptions converts the configuration into session options. The
// caller supplies the logger and resolves a zero seed.
func (c Config) SessionOptions() game.Options {
	opts := game.Options{
		Agent:         game.Spawn{X: c.Agent.X, Y: c.Agent.Y},
		AgentVelocity: c.Agent.Velocity,
		Autopilot:     c.Agent.Autopilot,
		EnemyVelocity: c.Enemies.Velocity,
		Rerandomize:   c.Enemies.Rerandomize,
		TileW:         c.Board.TileWidth,
		TileH:         c.Board.TileHeight,
		Seed:          c.Seed,
	}
	for _, sp := range c.Enemies.Spawns {
		opts.Enemies = append(opts.Enemies, game.Spawn{X: sp.X, Y: sp.Y})
	}
	return opts
}
