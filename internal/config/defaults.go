package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

// Default returns the built-in configuration: the classic 16x16 board with
// the agent at (5, 5) and two ghosts.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Name:       "classic",
			Width:      16,
			Height:     16,
			TileWidth:  2,
			TileHeight: 1,
		},
		Agent: AgentConfig{
			X:         5,
			Y:         5,
			Velocity:  0.4,
			Autopilot: true,
		},
		Enemies: EnemyConfig{
			Velocity:    0.4,
			Rerandomize: 20,
			Spawns:      []Point{{X: 2, Y: 2}, {X: 10, Y: 10}},
		},
		TickRate: 10,
		LogLevel: "info",
	}
}
