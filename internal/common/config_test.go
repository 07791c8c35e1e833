package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig_DefaultPort(t *testing.T) {
	cfg := NewDefaultConfig()
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port default = %d, want %d", cfg.Server.Port, 8080)
	}
}

func TestConfig_PortEnvOverride(t *testing.T) {
	t.Setenv("BUDDY_PORT", "9090")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d after env override, want %d", cfg.Server.Port, 9090)
	}
}

func TestConfig_BarePortEnv(t *testing.T) {
	t.Setenv("PORT", "10000")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Server.Port != 10000 {
		t.Errorf("Server.Port = %d, want 10000", cfg.Server.Port)
	}
}

func TestConfig_PrefixedPortWinsOverBarePort(t *testing.T) {
	t.Setenv("PORT", "10000")
	t.Setenv("BUDDY_PORT", "9191")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Server.Port != 9191 {
		t.Errorf("Server.Port = %d, want 9191", cfg.Server.Port)
	}
}

func TestConfig_InvalidPortIgnored(t *testing.T) {
	t.Setenv("BUDDY_PORT", "not-a-port")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want default 8080", cfg.Server.Port)
	}
}

func TestConfig_StorageAndCatalogEnvOverrides(t *testing.T) {
	t.Setenv("BUDDY_STORAGE_BACKEND", "surrealdb")
	t.Setenv("BUDDY_STORAGE_ADDRESS", "ws://db:8000/rpc")
	t.Setenv("BUDDY_STORAGE_USERNAME", "svc")
	t.Setenv("BUDDY_STORAGE_PASSWORD", "pw")
	t.Setenv("BUDDY_CATALOG_PATH", "/srv/plans.json")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Storage.Backend != "surrealdb" {
		t.Errorf("Storage.Backend = %q", cfg.Storage.Backend)
	}
	if cfg.Storage.Address != "ws://db:8000/rpc" {
		t.Errorf("Storage.Address = %q", cfg.Storage.Address)
	}
	if cfg.Storage.Username != "svc" || cfg.Storage.Password != "pw" {
		t.Errorf("Storage credentials = %q/%q", cfg.Storage.Username, cfg.Storage.Password)
	}
	if cfg.Catalog.Path != "/srv/plans.json" {
		t.Errorf("Catalog.Path = %q", cfg.Catalog.Path)
	}
}

func TestConfig_AuthEnvOverrides(t *testing.T) {
	t.Setenv("BUDDY_AUTH_JWT_SECRET", "s3cret")
	t.Setenv("BUDDY_AUTH_TOKEN_EXPIRY", "30m")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Auth.JWTSecret != "s3cret" {
		t.Errorf("JWTSecret = %q", cfg.Auth.JWTSecret)
	}
	if cfg.Auth.GetTokenExpiry() != 30*time.Minute {
		t.Errorf("GetTokenExpiry = %v, want 30m", cfg.Auth.GetTokenExpiry())
	}
}

func TestAuthConfig_GetTokenExpiry_InvalidFallsBack(t *testing.T) {
	cfg := AuthConfig{TokenExpiry: "soon"}
	if got := cfg.GetTokenExpiry(); got != 12*time.Hour {
		t.Errorf("GetTokenExpiry = %v, want 12h", got)
	}
}

func TestLoadConfig_MergesFilesInOrder(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.toml")
	override := filepath.Join(dir, "override.toml")

	if err := os.WriteFile(base, []byte(`
environment = "staging"

[server]
port = 7000

[catalog]
path = "base/plans.json"
featured_limit = 4
`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(override, []byte(`
[server]
port = 7100
`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(base, override, filepath.Join(dir, "missing.toml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Environment != "staging" {
		t.Errorf("Environment = %q, want staging", cfg.Environment)
	}
	if cfg.Server.Port != 7100 {
		t.Errorf("Server.Port = %d, want 7100", cfg.Server.Port)
	}
	if cfg.Catalog.Path != "base/plans.json" {
		t.Errorf("Catalog.Path = %q", cfg.Catalog.Path)
	}
	if cfg.Catalog.FeaturedLimit != 4 {
		t.Errorf("Catalog.FeaturedLimit = %d, want 4", cfg.Catalog.FeaturedLimit)
	}
	// Untouched sections keep defaults
	if cfg.Site.DefaultAge != 24 {
		t.Errorf("Site.DefaultAge = %d, want 24", cfg.Site.DefaultAge)
	}
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[server\nport = "), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected parse error for invalid TOML")
	}
}

func TestLoadConfig_NormalizesZeroValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zero.toml")
	if err := os.WriteFile(path, []byte(`
[storage]
backend = " SQLite "

[catalog]
featured_limit = 0

[site]
default_member = ""
`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Storage.Backend != "sqlite" {
		t.Errorf("Storage.Backend = %q, want sqlite", cfg.Storage.Backend)
	}
	if cfg.Catalog.FeaturedLimit != 12 {
		t.Errorf("Catalog.FeaturedLimit = %d, want 12", cfg.Catalog.FeaturedLimit)
	}
	if cfg.Site.DefaultMember != "adult" {
		t.Errorf("Site.DefaultMember = %q, want adult", cfg.Site.DefaultMember)
	}
}

func TestConfig_IsProduction(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{"production", true},
		{" PROD ", true},
		{"development", false},
		{"", false},
	}
	for _, tt := range tests {
		cfg := &Config{Environment: tt.env}
		if got := cfg.IsProduction(); got != tt.want {
			t.Errorf("IsProduction(%q) = %v, want %v", tt.env, got, tt.want)
		}
	}
}

func TestConfig_ValidateRequired_DefaultsRejected(t *testing.T) {
	cfg := NewDefaultConfig()
	missing := cfg.ValidateRequired()
	if len(missing) != 1 || missing[0] != "auth.jwt_secret" {
		t.Errorf("expected only auth.jwt_secret missing, got %v", missing)
	}
}

func TestConfig_ValidateRequired_AllMissing(t *testing.T) {
	cfg := &Config{Storage: StorageConfig{Backend: "surrealdb"}}
	missing := cfg.ValidateRequired()
	if len(missing) != 3 {
		t.Errorf("expected 3 missing fields, got %d: %v", len(missing), missing)
	}
}

func TestConfig_ValidateRequired_AllPresent(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Auth.JWTSecret = "real-secret-value"
	if missing := cfg.ValidateRequired(); len(missing) != 0 {
		t.Errorf("expected 0 missing fields, got %v", missing)
	}
}

func TestConfig_TrustProxy(t *testing.T) {
	cfg := NewDefaultConfig()
	if cfg.Server.TrustProxy {
		t.Fatal("TrustProxy should default to false")
	}

	t.Setenv("BUDDY_TRUST_PROXY", "true")
	applyEnvOverrides(cfg)
	if !cfg.Server.TrustProxy {
		t.Error("BUDDY_TRUST_PROXY=true not applied")
	}

	t.Setenv("BUDDY_TRUST_PROXY", "maybe")
	applyEnvOverrides(cfg)
	if !cfg.Server.TrustProxy {
		t.Error("unparseable BUDDY_TRUST_PROXY should leave the value unchanged")
	}
}
