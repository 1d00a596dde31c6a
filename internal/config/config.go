// Package config loads application configuration from environment
// variables (optionally seeded with a .env file) and the team settings
// from a YAML file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the runtime configuration.
type Config struct {
	// HTTP server
	Port string

	// Database
	DBPath string

	// Static frontend assets
	StaticPath string

	// Team settings file (YAML); optional
	TeamFile string

	Team Team
}

// Team holds the team-level settings rendered into summaries and messages.
type Team struct {
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"`
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present.
func Load() (*Config, error) {
	// Missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:       getEnv("PORT", "8080"),
		DBPath:     getEnv("DB_PATH", "./data/cricfees.db"),
		StaticPath: getEnv("STATIC_PATH", "./static"),
		TeamFile:   getEnv("TEAM_FILE", ""),
		Team: Team{
			Name:     "United77",
			Currency: "₹",
		},
	}

	if cfg.TeamFile != "" {
		if err := cfg.loadTeam(); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadTeam() error {
	data, err := os.ReadFile(c.TeamFile)
	if err != nil {
		return fmt.Errorf("failed to read team file: %w", err)
	}
	team := c.Team
	if err := yaml.Unmarshal(data, &team); err != nil {
		return fmt.Errorf("failed to parse team file: %w", err)
	}
	if team.Name != "" {
		c.Team.Name = team.Name
	}
	if team.Currency != "" {
		c.Team.Currency = team.Currency
	}
	return nil
}

// Validate returns an error when the configuration is unusable.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port %q: must be a number", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", port)
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH must not be empty")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
