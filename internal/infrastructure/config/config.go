package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	// APIBaseURL is the backend root; the client talks to {APIBaseURL}/api/.
	APIBaseURL  string        `env:"SALON_API_BASE_URL,   default=http://localhost:8080"`
	HTTPTimeout time.Duration `env:"SALON_HTTP_TIMEOUT,   default=30s"`
	// CredentialsPath is the local SQLite file holding the session credential.
	CredentialsPath string `env:"SALON_CREDENTIALS_PATH, default=data/credentials.db"`

	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}
