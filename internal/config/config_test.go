package config

import "testing"

// clearEnv blanks every variable Load reads so tests see pure defaults.
// envOrDefault treats empty the same as unset, so t.Setenv("") is enough
// and restores the original values automatically.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_HOST", "APP_PORT", "APP_ENV",
		"DATA_DIR", "UPLOADS_DIR", "SITE_DIR",
		"ADMIN_TOKEN",
		"GOOGLE_API_KEY", "TRANSLATE_BASE_URL",
		"VALKEY_HOST", "VALKEY_PORT", "VALKEY_PASSWORD",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	check := func(field, got, want string) {
		t.Helper()
		if got != want {
			t.Errorf("%s = %q, want %q", field, got, want)
		}
	}
	check("Host", cfg.Host, "0.0.0.0")
	check("Port", cfg.Port, "3000")
	check("Env", cfg.Env, "development")
	check("DataDir", cfg.DataDir, "data")
	check("UploadsDir", cfg.UploadsDir, "uploads")
	check("SiteDir", cfg.SiteDir, ".")
	check("AdminToken", cfg.AdminToken, "")
	check("ValkeyHost", cfg.ValkeyHost, "")
	check("ValkeyPort", cfg.ValkeyPort, "6379")

	if !cfg.IsDev() {
		t.Error("IsDev() = false for development env")
	}
	if cfg.Addr() != "0.0.0.0:3000" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_PORT", "9000")
	t.Setenv("DATA_DIR", "/var/lib/polywise")
	t.Setenv("ADMIN_TOKEN", "secret")
	t.Setenv("VALKEY_HOST", "cache.internal")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.Port != "9000" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.DataDir != "/var/lib/polywise" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.AdminToken != "secret" {
		t.Errorf("AdminToken = %q", cfg.AdminToken)
	}
	if cfg.ValkeyAddr() != "cache.internal:6379" {
		t.Errorf("ValkeyAddr() = %q", cfg.ValkeyAddr())
	}
}

func TestValkeyAddrDisabledWhenHostUnset(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.ValkeyAddr() != "" {
		t.Errorf("ValkeyAddr() = %q, want empty when host unset", cfg.ValkeyAddr())
	}
}

func TestLoadProductionRequiresAdminToken(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when ADMIN_TOKEN is unset in production")
	}

	t.Setenv("ADMIN_TOKEN", "secret")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.IsDev() {
		t.Error("IsDev() = true for production env")
	}
}
