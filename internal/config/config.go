package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Stash"`
	}

	Hub struct {
		Port    int    `envconfig:"HUB_PORT" default:"8080"`
		BaseURL string `envconfig:"HUB_URL" default:"http://localhost:8080"`
	}

	Tracker struct {
		Port       int    `envconfig:"TRACKER_PORT" default:"8090"`
		SQLitePath string `envconfig:"SQLITE_PATH" default:"stash.db"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"stash"`
	}

	Sync struct {
		Warmup   time.Duration `envconfig:"SYNC_WARMUP" default:"2s"`
		Interval time.Duration `envconfig:"SYNC_INTERVAL" default:"15s"`
	}

	Session struct {
		Secret string        `envconfig:"SESSION_SECRET" default:"dev-secret-change-me"`
		TTL    time.Duration `envconfig:"SESSION_TTL" default:"720h"`
	}

	Admin struct {
		Letter string `envconfig:"ADMIN_LETTER" default:"A"`
		Code   string `envconfig:"ADMIN_CODE" default:"0000"`
		Label  string `envconfig:"ADMIN_LABEL" default:"admin"`
	}

	// Account is the partition this tracker instance serves.
	Account struct {
		Letter string `envconfig:"ACCOUNT_LETTER" default:"J"`
		Code   string `envconfig:"ACCOUNT_CODE" default:"4821"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
