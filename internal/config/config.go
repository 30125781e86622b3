// Package config loads and validates environment variables at startup.
// Fail-fast: if a required variable is missing, Load returns an error and
// the process exits before anything is wired up.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all runtime configuration for the jobs API.
type Config struct {
	AppEnv               string // "development" or "production"
	Port                 string
	DatabaseURL          string // Postgres DSN
	RapidAPIKey          string
	JSearchBaseURL       string
	JSearchNumPages      int    // result pages requested per external search
	AllowedOrigin        string // CORS; "*" allows everyone
	RefreshQuery         string // title filter used by scheduled refreshes
	RefreshIntervalHours int    // how often the cron refresh fires
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:               "production",
		Port:                 "8080",
		JSearchBaseURL:       "https://jsearch.p.rapidapi.com",
		JSearchNumPages:      10,
		AllowedOrigin:        "*",
		RefreshQuery:         "software developer",
		RefreshIntervalHours: 6,
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.RapidAPIKey = os.Getenv("RAPIDAPI_KEY")

	var missing []string
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if cfg.RapidAPIKey == "" {
		missing = append(missing, "RAPIDAPI_KEY")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if v := os.Getenv("APP_ENV"); v != "" {
		cfg.AppEnv = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("JSEARCH_BASE_URL"); v != "" {
		cfg.JSearchBaseURL = v
	}
	if v := os.Getenv("ALLOWED_ORIGIN"); v != "" {
		cfg.AllowedOrigin = v
	}
	if v := os.Getenv("REFRESH_QUERY"); v != "" {
		cfg.RefreshQuery = v
	}

	if s := os.Getenv("JSEARCH_NUM_PAGES"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("JSEARCH_NUM_PAGES must be a positive integer, got %q", s)
		}
		cfg.JSearchNumPages = v
	}

	if s := os.Getenv("REFRESH_INTERVAL_HOURS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("REFRESH_INTERVAL_HOURS must be a positive integer, got %q", s)
		}
		cfg.RefreshIntervalHours = v
	}

	return cfg, nil
}

// Development reports whether the service runs in development mode.
func (c *Config) Development() bool {
	return strings.EqualFold(c.AppEnv, "development")
}
