package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr  string     `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel  slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	DBPath    string     `env:"DB_PATH" envDefault:"data/boards.db"`
	SPADir    string     `env:"SPA_DIR" envDefault:"web/dist"`
	PublicURL string     `env:"PUBLIC_URL" envDefault:"http://localhost:8080"`

	// SessionTTL is how long an untouched session lives.
	SessionTTL       time.Duration `env:"SESSION_TTL" envDefault:"2h"`
	CelebrationDelay time.Duration `env:"CELEBRATION_DELAY" envDefault:"1200ms"`
	WinRevealDelay   time.Duration `env:"WIN_REVEAL_DELAY" envDefault:"1500ms"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive, got %s", cfg.SessionTTL)
	}
	return &cfg, nil
}
