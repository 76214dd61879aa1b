package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultAPIURL is used when neither the environment, a flag nor the stored
// profile names a backend.
const DefaultAPIURL = "http://127.0.0.1:8080"

// Config holds runtime wiring options for building the app.
type Config struct {
	APIURL     string        `env:"HRTRACK_API_URL"`
	Home       string        `env:"HRTRACK_HOME"` // config directory, e.g. $HOME/.hrtrack
	Passphrase string        `env:"HRTRACK_PASSPHRASE"`
	LogLevel   string        `env:"HRTRACK_LOG_LEVEL"  envDefault:"warn"`
	Timeout    time.Duration `env:"HRTRACK_TIMEOUT"    envDefault:"15s"`
	RateLimit  float64       `env:"HRTRACK_RATE_LIMIT"`
	RateBurst  int           `env:"HRTRACK_RATE_BURST" envDefault:"1"`
	Retries    int           `env:"HRTRACK_RETRIES"`
	PageSize   int           `env:"HRTRACK_PAGE_SIZE"`
}

// LoadConfig reads Config from the environment. Variables in envFile are
// loaded first without overriding ones already set; a missing envFile is
// not an error. An empty envFile means ".env".
func LoadConfig(envFile string) (Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Home == "" {
		home, err := DefaultHome()
		if err != nil {
			return Config{}, err
		}
		cfg.Home = home
	}
	return cfg, nil
}

// DefaultHome returns ~/.hrtrack.
func DefaultHome() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	return filepath.Join(dir, ".hrtrack"), nil
}
