package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/moorebrett0/tamago/internal/species"
)

// EnvPrefix prefixes every environment override, e.g. TAMAGO_LOG_LEVEL.
const EnvPrefix = "TAMAGO_"

type Config struct {
	Session SessionConfig `yaml:"session" envPrefix:"SESSION_"`
	Pet     PetConfig     `yaml:"pet" envPrefix:"PET_"`
	Logging LoggingConfig `yaml:"logging" envPrefix:"LOG_"`
}

type SessionConfig struct {
	// Frame cadence; the pet's decay window is independent of it.
	TickInterval time.Duration `yaml:"tick_interval" env:"TICK_INTERVAL"`

	// How long the death screen stays up before exit.
	DeathPause time.Duration `yaml:"death_pause" env:"DEATH_PAUSE"`

	// Illness RNG seed; 0 picks one from the clock.
	Seed uint64 `yaml:"seed" env:"SEED"`
}

// PetConfig holds the intro screen's preselected identity.
type PetConfig struct {
	Name    string `yaml:"name" env:"NAME"`
	Species string `yaml:"species" env:"SPECIES"`
	Gender  string `yaml:"gender" env:"GENDER"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" env:"LEVEL"`   // debug, info, warn, error
	Format string `yaml:"format" env:"FORMAT"` // json or console
	Path   string `yaml:"path" env:"PATH"`     // file path, "stdout" or "stderr"
}

func Load(path string) (*Config, error) {
	cfg := defaults()

	// Load .env file first (from the working dir)
	loadDotEnv(".env")

	// Load YAML config if it exists
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// File doesn't exist, use defaults + env vars
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	// Env vars override the config file
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parsing env: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadDotEnv reads a .env file and sets env vars that aren't already set.
func loadDotEnv(path string) {
	f, err := os.Open(path)
	if err != nil {
		return // no .env, that's fine
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)

		// Strip surrounding quotes
		if len(val) >= 2 {
			if (val[0] == '"' && val[len(val)-1] == '"') ||
				(val[0] == '\'' && val[len(val)-1] == '\'') {
				val = val[1 : len(val)-1]
			}
		}

		// Only set if not already in environment
		if os.Getenv(key) == "" && val != "" {
			os.Setenv(key, val)
		}
	}
}

func defaults() *Config {
	return &Config{
		Session: SessionConfig{
			TickInterval: 16 * time.Millisecond, // ~60 fps
			DeathPause:   3 * time.Second,
		},
		Pet: PetConfig{
			Species: species.DefaultID,
			Gender:  species.Genders[0],
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Path:   "tamago.log",
		},
	}
}

func validate(cfg *Config) error {
	if cfg.Session.TickInterval <= 0 {
		return fmt.Errorf("session.tick_interval must be positive, got %s", cfg.Session.TickInterval)
	}
	if cfg.Session.DeathPause < 0 {
		return fmt.Errorf("session.death_pause must not be negative, got %s", cfg.Session.DeathPause)
	}
	if _, ok := species.Registry[cfg.Pet.Species]; !ok {
		return fmt.Errorf("unknown pet.species %q (want one of %s)", cfg.Pet.Species, strings.Join(species.OrderedIDs, ", "))
	}
	if !species.ValidGender(cfg.Pet.Gender) {
		return fmt.Errorf("unknown pet.gender %q (want one of %s)", cfg.Pet.Gender, strings.Join(species.Genders, ", "))
	}
	if len(cfg.Pet.Name) > 32 {
		return fmt.Errorf("pet.name must be at most 32 characters")
	}
	if _, err := zapcore.ParseLevel(cfg.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	if cfg.Logging.Format != "json" && cfg.Logging.Format != "console" {
		return fmt.Errorf("unknown logging.format %q (want json or console)", cfg.Logging.Format)
	}
	if cfg.Logging.Path == "" {
		return fmt.Errorf("logging.path must not be empty")
	}
	return nil
}
