// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every environment-driven setting.
type Config struct {
	Port     string `env:"PORT" envDefault:"5175"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	DBPath   string `env:"DB_PATH" envDefault:"./data/app.db"`

	JWTSecret      string `env:"JWT_SECRET" envDefault:"dev_secret_change_me"`
	JWTExpiresDays int    `env:"JWT_EXPIRES_DAYS" envDefault:"14"`
	CookieName     string `env:"COOKIE_NAME" envDefault:"boggle_token"`
	ClientOrigin   string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	Environment    string `env:"NODE_ENV" envDefault:"development"`

	DailySalt    string `env:"DAILY_SALT" envDefault:"local_dev_salt"`
	WordsFile    string `env:"WORDS_FILE"`
	RoundSeconds int    `env:"ROUND_SECONDS" envDefault:"180"`
	RequirePath  bool   `env:"REQUIRE_PATH" envDefault:"true"`
}

// Load parses the process environment.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return c, fmt.Errorf("parse env: %w", err)
	}
	if c.RoundSeconds <= 0 {
		return c, fmt.Errorf("ROUND_SECONDS must be positive, got %d", c.RoundSeconds)
	}
	return c, nil
}

// Production reports whether cookies should be Secure / SameSite=None.
func (c Config) Production() bool { return c.Environment == "production" }

// Round is the configured round length.
func (c Config) Round() time.Duration { return time.Duration(c.RoundSeconds) * time.Second }

// TokenTTL is how long issued auth tokens stay valid.
func (c Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTExpiresDays) * 24 * time.Hour
}
