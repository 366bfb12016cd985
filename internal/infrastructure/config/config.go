package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	// APIBaseURL is the root of the remote helpdesk REST API.
	APIBaseURL  string        `env:"API_BASE_URL, default=http://localhost:5000"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT, default=10s"`
	Env         string        `env:"ENV,          default=development"`
	LogLevel    string        `env:"LOG_LEVEL,    default=info"`

	// SessionFile is where the logged-in identity blob is kept. Empty means
	// <user config dir>/tracklyy/session.json.
	SessionFile string `env:"SESSION_FILE"`

	// StubPort is only read by the local stub server binary.
	StubPort string `env:"STUB_PORT, default=5000"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	if cfg.SessionFile == "" {
		cfg.SessionFile = defaultSessionFile()
	}
	return &cfg
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "tracklyy", "session.json")
}
