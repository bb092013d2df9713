package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL      string   `env:"DATABASE_URL"`
	DBHost           string   `env:"DB_HOST" envDefault:"localhost"`
	DBPort           string   `env:"DB_PORT" envDefault:"5432"`
	DBUser           string   `env:"DB_USER" envDefault:"postgres"`
	DBPassword       string   `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName           string   `env:"DB_NAME" envDefault:"trivia"`
	DBSSLMode        string   `env:"DB_SSLMODE" envDefault:"disable"`
	ServerPort       string   `env:"SERVER_PORT" envDefault:"8080"`
	QuestionsPerPage int      `env:"QUESTIONS_PER_PAGE" envDefault:"10"`
	SeedDatabase     bool     `env:"SEED_DATABASE" envDefault:"false"`
	LogSQL           bool     `env:"LOG_SQL" envDefault:"false"`
	AllowOrigins     []string `env:"CORS_ALLOW_ORIGINS" envDefault:"*" envSeparator:","`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("ignoring .env: %v", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.QuestionsPerPage <= 0 {
		return nil, fmt.Errorf("QUESTIONS_PER_PAGE must be positive, got %d", cfg.QuestionsPerPage)
	}
	return &cfg, nil
}

// DSN returns DATABASE_URL when set, otherwise a key/value postgres DSN.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}
