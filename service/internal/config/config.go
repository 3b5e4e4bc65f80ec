// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	engine "github.com/C8d9/Fencing-Game/engine"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds the runtime settings of the fencing service.
type Config struct {
	Seed        uint64              // 0 means derive one from the clock.
	Personality *engine.Personality // Nil means draw one per match.
	LogLevel    log.Level
	LogFormat   string // "text" or "json"
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{LogLevel: log.InfoLevel, LogFormat: "text"}
}

// Load reads an optional .env file and then the FENCING_* environment variables.
// A missing .env file is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the given lookup function.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	if s := strings.TrimSpace(getenv("FENCING_SEED")); s != "" {
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("FENCING_SEED: %w", err)
		}
		cfg.Seed = n
	}

	if s := strings.TrimSpace(getenv("FENCING_PERSONALITY")); s != "" {
		p, err := ParsePersonality(s)
		if err != nil {
			return Config{}, fmt.Errorf("FENCING_PERSONALITY: %w", err)
		}
		cfg.Personality = &p
	}

	if s := strings.TrimSpace(getenv("FENCING_LOG_LEVEL")); s != "" {
		lvl, err := log.ParseLevel(s)
		if err != nil {
			return Config{}, fmt.Errorf("FENCING_LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = lvl
	}

	if s := strings.ToLower(strings.TrimSpace(getenv("FENCING_LOG_FORMAT"))); s != "" {
		if s != "text" && s != "json" {
			return Config{}, fmt.Errorf("FENCING_LOG_FORMAT: want text or json, got %q", s)
		}
		cfg.LogFormat = s
	}
	return cfg, nil
}

// ParsePersonality matches a personality name, ignoring case.
func ParsePersonality(s string) (engine.Personality, error) {
	p, ok := engine.LookupPersonality(s)
	if !ok {
		return 0, fmt.Errorf("unknown personality %q", s)
	}
	return p, nil
}

// ConfigureLogger applies the level and formatter to the standard logrus logger.
func (c Config) ConfigureLogger() {
	log.SetLevel(c.LogLevel)
	if c.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	log.SetOutput(os.Stderr)
}
