// pacman is a terminal Pacman whose agent can steer itself to the nearest
// food with a breadth-first search.
//
// Usage:
//
//	pacman play        - Play in the terminal
//	pacman sim         - Run a level headless with the autopilot
//	pacman maps        - List built-in maps
//	pacman path        - Print the route from the agent spawn to the nearest food
//	pacman config      - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Game config YAML (default: $PACMAN_CONFIG)
//	--map <name|path>   - Built-in map or map file (default: $PACMAN_MAP)
//	--fps <rate>        - Tick rate (default: from config)
//	--seed <value>      - RNG seed for reproducible ghosts (0 = from config, then time)
//	--log-level <level> - debug, info, warn or error (default: $PACMAN_LOG_LEVEL)
//	--log-file <path>   - Write the log to a file
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/game"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/tilemap"
)

var (
	// Global flags
	flagConfig   string
	flagMap      string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := config.LoadEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	registerFlags()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(game.ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacman",
	Short: "Pacman in your terminal, with an autopilot",
	Long: `Pacman on a tile grid. The agent eats food, breaks walls and picks up
artifacts while ghosts wander at random. With the autopilot on, the agent
follows the shortest path to the nearest food.

Available commands:
  play     - Play in the terminal
  sim      - Run a level headless and print the outcome
  maps     - Show the built-in maps
  path     - Print the route to the nearest food
  config   - Print the effective configuration

Exit codes:
  0 victory, 1 error, 2 caught by a ghost, 3 no food reachable, 4 quit

Examples:
  pacman play
  pacman play --map maze --seed 42
  pacman sim --map open --max-ticks 5000
  pacman path --map ./level.txt`,
}

// registerFlags binds the persistent flags. Defaults come from the
// environment, so it runs after the .env file is loaded.
func registerFlags() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", config.Getenv(config.EnvConfig, ""), "Path to game config YAML")
	pf.StringVar(&flagMap, "map", config.Getenv(config.EnvMap, ""), "Built-in map name or path to a map file")
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = from config, then time based)")
	pf.StringVar(&flagLogLevel, "log-level", config.Getenv(config.EnvLogLevel, ""), "Log level (debug, info, warn, error)")
	pf.StringVar(&flagLogFile, "log-file", "", "Write the log to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(mapsCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(configCmd)
}

// fail reports err and exits with the error status.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(game.ExitError)
}

// loadConfig loads the configuration and applies the command-line
// overrides on top of it.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	if flagMap != "" {
		if registry.Exists(flagMap) {
			cfg.Board.Name, cfg.Board.File = flagMap, ""
		} else {
			cfg.Board.File = flagMap
		}
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger builds the logger for cfg. Output goes to the log file when
// one is set, else to fallback. The returned func closes the file.
func newLogger(cfg config.Config, fallback io.Writer) (*log.Logger, func(), error) {
	out, done := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out, done = f, func() { f.Close() }
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "pacman",
		Level:           level,
	})
	return logger, done, nil
}

// loadBoard resolves the configured map.
func loadBoard(cfg config.Config) (*tilemap.Map, string, error) {
	ref := cfg.Board.File
	if ref == "" {
		ref = cfg.Board.Name
	}
	m, err := registry.Resolve(ref, cfg.Board.Width, cfg.Board.Height)
	if err != nil {
		return nil, "", err
	}
	return m, ref, nil
}

// newSession builds a session from cfg, picking a time-based seed when none
// is configured.
func newSession(cfg config.Config, logger *log.Logger) (*game.Session, string, error) {
	m, name, err := loadBoard(cfg)
	if err != nil {
		return nil, "", err
	}

	opts := cfg.SessionOptions()
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	opts.Logger = logger

	s, err := game.NewSession(m, opts)
	if err != nil {
		return nil, "", err
	}
	logger.Debug("session created", "session", s.ID().String(), "map", name, "seed", opts.Seed)
	return s, name, nil
}
