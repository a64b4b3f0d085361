package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// validCfg returns a fully-valid Config for mutation testing.
func validCfg() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: BackendFile,
			Path:    "/tmp/riskready",
			Table:   "riskready_kv",
		},
		API: APIConfig{ListenAddr: ":8080"},
		Review: ReviewConfig{
			DueSoonDays:  DefaultDueSoonDays,
			ExpiringDays: DefaultExpiringDays,
		},
	}
}

func TestValidate_ValidConfigPasses(t *testing.T) {
	if err := validCfg().Validate(); err != nil {
		t.Fatalf("valid config should pass, got: %v", err)
	}
}

func TestValidate_UnknownBackend(t *testing.T) {
	cfg := validCfg()
	cfg.Storage.Backend = "floppy"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for unknown backend")
	}
	if !strings.Contains(err.Error(), "storage.backend") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_PathRequired(t *testing.T) {
	for _, backend := range []string{BackendFile, BackendSQLite, BackendBadger} {
		cfg := validCfg()
		cfg.Storage.Backend = backend
		cfg.Storage.Path = ""
		if err := cfg.Validate(); err == nil {
			t.Fatalf("expected error for empty storage.path with %s", backend)
		}
	}
}

func TestValidate_MemoryNeedsNothing(t *testing.T) {
	cfg := validCfg()
	cfg.Storage = StorageConfig{Backend: BackendMemory}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("memory backend should pass, got: %v", err)
	}
}

func TestValidate_PostgresNeedsDSN(t *testing.T) {
	cfg := validCfg()
	cfg.Storage.Backend = BackendPostgres
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "storage.dsn") {
		t.Fatalf("expected storage.dsn error, got: %v", err)
	}
	cfg.Storage.DSN = "postgres://localhost/riskready"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("postgres with dsn should pass, got: %v", err)
	}
}

func TestValidate_S3NeedsBucket(t *testing.T) {
	cfg := validCfg()
	cfg.Storage.Backend = BackendS3
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "storage.s3.bucket") {
		t.Fatalf("expected storage.s3.bucket error, got: %v", err)
	}
}

func TestValidate_AuthModesExclusive(t *testing.T) {
	cfg := validCfg()
	cfg.API.AuthToken = "token"
	cfg.API.JWTSecret = "secret"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when both auth modes are set")
	}
}

func TestValidate_NegativeReviewWindows(t *testing.T) {
	cfg := validCfg()
	cfg.Review.DueSoonDays = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative due_soon_days")
	}
	cfg = validCfg()
	cfg.Review.ExpiringDays = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative expiring_days")
	}
}

func TestLoad_DefaultsAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	t.Setenv("RISKREADY_STORAGE_BACKEND", "sqlite")
	t.Setenv("RISKREADY_API_AUTH_TOKEN", "from-env")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.Backend != BackendSQLite {
		t.Fatalf("backend = %q, want sqlite", cfg.Storage.Backend)
	}
	if cfg.API.AuthToken != "from-env" {
		t.Fatalf("auth token = %q", cfg.API.AuthToken)
	}
	if cfg.Review.DueSoonDays != DefaultDueSoonDays || cfg.Review.ExpiringDays != DefaultExpiringDays {
		t.Fatalf("unexpected review defaults: %+v", cfg.Review)
	}
	if want := filepath.Join(dir, ".riskready", "data"); cfg.Storage.Path != want {
		t.Fatalf("path = %q, want %q", cfg.Storage.Path, want)
	}
}

func TestLoad_DotEnvAndConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	t.Setenv("RISKREADY_STORAGE_PATH", "")
	_ = os.Unsetenv("RISKREADY_STORAGE_PATH")

	yaml := "storage:\n  backend: badger\n  path: " + filepath.Join(dir, "db") + "\nreview:\n  due_soon_days: 14\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("RISKREADY_LOGGING_LEVEL", "")
	_ = os.Unsetenv("RISKREADY_LOGGING_LEVEL")
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("RISKREADY_LOGGING_LEVEL=debug\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.Backend != BackendBadger {
		t.Fatalf("backend = %q, want badger", cfg.Storage.Backend)
	}
	if cfg.Review.DueSoonDays != 14 {
		t.Fatalf("due_soon_days = %d, want 14", cfg.Review.DueSoonDays)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("logging level = %q, want debug from .env", cfg.Logging.Level)
	}
	_ = os.Unsetenv("RISKREADY_LOGGING_LEVEL")
}

func TestSecretsMasked(t *testing.T) {
	api := APIConfig{ListenAddr: ":8080", AuthToken: "supersecrettoken", JWTSecret: "abc"}
	s := api.String()
	if strings.Contains(s, "supersecrettoken") {
		t.Fatalf("auth token leaked: %s", s)
	}
	if !strings.Contains(s, "supe****oken") {
		t.Fatalf("unexpected mask: %s", s)
	}

	st := StorageConfig{Backend: BackendPostgres, DSN: "postgres://user:pw@host/db"}
	if strings.Contains(st.String(), "user:pw") {
		t.Fatalf("dsn leaked: %s", st.String())
	}
}
