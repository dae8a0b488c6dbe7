// Package config loads the settings of the guesser host.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "GUESSER_"

// Config holds the host settings.
type Config struct {
	BaseURL        string        `yaml:"base_url" env:"BASE_URL"`
	Timeout        time.Duration `yaml:"timeout" env:"TIMEOUT"`
	PersistTimeout time.Duration `yaml:"persist_timeout" env:"PERSIST_TIMEOUT"`
	GameRoute      string        `yaml:"game_route" env:"GAME_ROUTE"`
	FallbackRoute  string        `yaml:"fallback_route" env:"FALLBACK_ROUTE"`
	MenuRoute      string        `yaml:"menu_route" env:"MENU_ROUTE"`
	Strict         bool          `yaml:"strict" env:"STRICT"`
	LogLevel       string        `yaml:"log_level" env:"LOG_LEVEL"`
	MetricsAddr    string        `yaml:"metrics_addr" env:"METRICS_ADDR"`
	MaxGuessSize   int           `yaml:"max_guess_size" env:"MAX_GUESS_SIZE"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		BaseURL:        "http://localhost:5000",
		Timeout:        10 * time.Second,
		PersistTimeout: 5 * time.Second,
		GameRoute:      "/game",
		FallbackRoute:  "/game",
		MenuRoute:      "/",
		LogLevel:       "warn",
		MaxGuessSize:   256,
	}
}

// Load layers the settings: defaults, then the YAML file at path (a missing file is
// skipped), then variables from the dotenv file (a missing file is skipped), then the
// process environment.
func Load(path, dotenv string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		}
	}

	if dotenv != "" {
		// godotenv never overrides variables already set in the environment.
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("failed to load %s: %w", dotenv, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("failed to read environment: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate checks the settings for values the host cannot work with.
func (c Config) Validate() error {
	var errs []error
	if c.BaseURL == "" {
		errs = append(errs, errors.New("base_url is required"))
	}
	if c.Timeout <= 0 {
		errs = append(errs, errors.New("timeout must be positive"))
	}
	if c.PersistTimeout <= 0 {
		errs = append(errs, errors.New("persist_timeout must be positive"))
	}
	for name, route := range map[string]string{
		"game_route":     c.GameRoute,
		"fallback_route": c.FallbackRoute,
		"menu_route":     c.MenuRoute,
	} {
		if !strings.HasPrefix(route, "/") {
			errs = append(errs, fmt.Errorf("%s must start with '/': %q", name, route))
		}
	}
	return errors.Join(errs...)
}
