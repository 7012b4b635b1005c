// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// Content and file locations
	DataDir    string // directory holding articles.json and topics.json
	UploadsDir string // directory for uploaded images, served at /uploads
	SiteDir    string // static site root (index.html, article.html, admin.html)

	// Admin gate
	AdminToken string

	// Translation proxy
	GoogleAPIKey     string
	TranslateBaseURL string // override for tests; empty means the Google endpoint

	// Valkey (Redis-compatible page cache) — optional, empty host disables it
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if critical values
// are missing in production mode.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "3000"),
		Env:  envOrDefault("APP_ENV", "development"),

		DataDir:    envOrDefault("DATA_DIR", "data"),
		UploadsDir: envOrDefault("UPLOADS_DIR", "uploads"),
		SiteDir:    envOrDefault("SITE_DIR", "."),

		AdminToken: os.Getenv("ADMIN_TOKEN"),

		GoogleAPIKey:     os.Getenv("GOOGLE_API_KEY"),
		TranslateBaseURL: os.Getenv("TRANSLATE_BASE_URL"),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),
	}

	if cfg.Env == "production" {
		if cfg.AdminToken == "" {
			return nil, fmt.Errorf("ADMIN_TOKEN must be set in production")
		}
	}

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// ValkeyAddr returns the Valkey address, or "" when the cache is disabled.
func (c *Config) ValkeyAddr() string {
	if c.ValkeyHost == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s", c.ValkeyHost, c.ValkeyPort)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
