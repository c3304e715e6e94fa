package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables consulted for flag defaults.
const (
	EnvConfig   = "PACMAN_CONFIG"
	EnvMap      = "PACMAN_MAP"
	EnvLogLevel = "PACMAN_LOG_LEVEL"
)

// LoadEnv reads KEY=VALUE files into the process environment. Missing files
// are skipped and variables that are already set are left alone.
func LoadEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return nil
}

// Getenv returns the value of key, or fallback when it is unset or empty.
func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
