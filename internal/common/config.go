// Package common provides shared utilities for Insurance Buddy
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for the site server
type Config struct {
	Environment string        `toml:"environment"`
	Server      ServerConfig  `toml:"server"`
	Storage     StorageConfig `toml:"storage"`
	Catalog     CatalogConfig `toml:"catalog"`
	Site        SiteConfig    `toml:"site"`
	Auth        AuthConfig    `toml:"auth"`
	Contact     ContactConfig `toml:"contact"`
	Logging     LoggingConfig `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
	// TrustProxy keys rate limits on X-Forwarded-For. Enable only behind a
	// reverse proxy that appends the peer address.
	TrustProxy bool `toml:"trust_proxy"`
}

// StorageConfig selects and configures the content store backend.
type StorageConfig struct {
	Backend   string `toml:"backend"`   // "sqlite" (default) or "surrealdb"
	Address   string `toml:"address"`   // SurrealDB RPC address, e.g. ws://localhost:8000/rpc
	Namespace string `toml:"namespace"` // SurrealDB namespace
	Database  string `toml:"database"`  // SurrealDB database
	Username  string `toml:"username"`
	Password  string `toml:"password"`
	Path      string `toml:"path"` // SQLite database file
}

// CatalogConfig locates the static plan catalog.
type CatalogConfig struct {
	Path          string `toml:"path"`
	FeaturedLimit int    `toml:"featured_limit"`
}

// SiteConfig holds presentation defaults for the plan finder.
type SiteConfig struct {
	DefaultMember string `toml:"default_member"`
	DefaultAge    int    `toml:"default_age"`
}

// AuthConfig holds admin authentication configuration.
type AuthConfig struct {
	JWTSecret   string `toml:"jwt_secret"`
	TokenExpiry string `toml:"token_expiry"` // duration string, default "12h"
}

// GetTokenExpiry parses and returns the token expiry duration.
func (c *AuthConfig) GetTokenExpiry() time.Duration {
	d, err := time.ParseDuration(c.TokenExpiry)
	if err != nil || d <= 0 {
		return 12 * time.Hour
	}
	return d
}

// ContactConfig throttles contact form and login submissions.
type ContactConfig struct {
	RatePerMinute int `toml:"rate_per_minute"`
	Burst         int `toml:"burst"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level      string   `toml:"level"`
	Format     string   `toml:"format"`
	Outputs    []string `toml:"outputs"`
	FilePath   string   `toml:"file_path"`
	MaxSizeMB  int      `toml:"max_size_mb"`
	MaxBackups int      `toml:"max_backups"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Storage: StorageConfig{
			Backend:   "sqlite",
			Address:   "ws://localhost:8000/rpc",
			Namespace: "insurancebuddy",
			Database:  "site",
			Username:  "root",
			Password:  "root",
			Path:      "data/site.db",
		},
		Catalog: CatalogConfig{
			Path:          "data/plans.json",
			FeaturedLimit: 12,
		},
		Site: SiteConfig{
			DefaultMember: "adult",
			DefaultAge:    24,
		},
		Auth: AuthConfig{
			JWTSecret:   "dev-jwt-secret-change-in-production",
			TokenExpiry: "12h",
		},
		Contact: ContactConfig{
			RatePerMinute: 10,
			Burst:         5,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			Outputs:    []string{"console"},
			FilePath:   "./logs/buddy.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Later files override earlier ones
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)
	normalize(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("BUDDY_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("BUDDY_HOST"); host != "" {
		config.Server.Host = host
	}

	if v := os.Getenv("BUDDY_TRUST_PROXY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			config.Server.TrustProxy = b
		}
	}

	// PaaS platforms inject a bare PORT; the prefixed variable wins.
	for _, name := range []string{"PORT", "BUDDY_PORT"} {
		if port := os.Getenv(name); port != "" {
			if p, err := strconv.Atoi(port); err == nil {
				config.Server.Port = p
			}
		}
	}

	if level := os.Getenv("BUDDY_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if v := os.Getenv("BUDDY_STORAGE_BACKEND"); v != "" {
		config.Storage.Backend = v
	}
	if v := os.Getenv("BUDDY_STORAGE_ADDRESS"); v != "" {
		config.Storage.Address = v
	}
	if v := os.Getenv("BUDDY_STORAGE_PATH"); v != "" {
		config.Storage.Path = v
	}
	if v := os.Getenv("BUDDY_STORAGE_USERNAME"); v != "" {
		config.Storage.Username = v
	}
	if v := os.Getenv("BUDDY_STORAGE_PASSWORD"); v != "" {
		config.Storage.Password = v
	}

	if v := os.Getenv("BUDDY_CATALOG_PATH"); v != "" {
		config.Catalog.Path = v
	}

	if v := os.Getenv("BUDDY_AUTH_JWT_SECRET"); v != "" {
		config.Auth.JWTSecret = v
	}
	if v := os.Getenv("BUDDY_AUTH_TOKEN_EXPIRY"); v != "" {
		config.Auth.TokenExpiry = v
	}
}

// normalize fills zero values left behind by partial config files.
func normalize(config *Config) {
	config.Storage.Backend = strings.ToLower(strings.TrimSpace(config.Storage.Backend))
	if config.Storage.Backend == "" {
		config.Storage.Backend = "sqlite"
	}
	if config.Catalog.FeaturedLimit <= 0 {
		config.Catalog.FeaturedLimit = 12
	}
	if config.Site.DefaultMember == "" {
		config.Site.DefaultMember = "adult"
	}
	if config.Contact.RatePerMinute <= 0 {
		config.Contact.RatePerMinute = 10
	}
	if config.Contact.Burst <= 0 {
		config.Contact.Burst = 5
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}

// ValidateRequired lists settings that must not keep their development
// defaults in production.
func (c *Config) ValidateRequired() []string {
	var missing []string
	if c.Auth.JWTSecret == "" || c.Auth.JWTSecret == NewDefaultConfig().Auth.JWTSecret {
		missing = append(missing, "auth.jwt_secret")
	}
	if c.Catalog.Path == "" {
		missing = append(missing, "catalog.path")
	}
	if c.Storage.Backend == "surrealdb" && c.Storage.Address == "" {
		missing = append(missing, "storage.address")
	}
	if c.Storage.Backend == "sqlite" && c.Storage.Path == "" {
		missing = append(missing, "storage.path")
	}
	return missing
}
