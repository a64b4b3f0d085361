package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// DefaultDueSoonDays is the review window for upcoming due dates.
	DefaultDueSoonDays = 7

	// DefaultExpiringDays is the review window for inventory expiration.
	DefaultExpiringDays = 30
)

// Storage backends.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendBadger   = "badger"
	BackendPostgres = "postgres"
	BackendS3       = "s3"
)

// Backends lists every supported storage backend.
var Backends = []string{BackendMemory, BackendFile, BackendSQLite, BackendBadger, BackendPostgres, BackendS3}

// Config holds all configuration for riskready.
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	API     APIConfig     `mapstructure:"api"`
	Logging LoggingConfig `mapstructure:"logging"`
	Review  ReviewConfig  `mapstructure:"review"`
}

// StorageConfig selects and configures the key-value backend.
type StorageConfig struct {
	Backend string   `mapstructure:"backend"`
	Path    string   `mapstructure:"path"` // directory or file for file, sqlite and badger
	DSN     string   `mapstructure:"dsn"`  // postgres connection string
	Table   string   `mapstructure:"table"`
	S3      S3Config `mapstructure:"s3"`
}

// String returns a safe representation with the DSN masked.
func (s StorageConfig) String() string {
	return fmt.Sprintf("StorageConfig{Backend:%s, Path:%s, DSN:%s, Table:%s, S3:%+v}",
		s.Backend, s.Path, maskSecret(s.DSN), s.Table, s.S3)
}

// S3Config holds S3 or MinIO settings. Credentials come from the default
// AWS chain unless AccessKeyID is set.
type S3Config struct {
	Bucket          string `mapstructure:"bucket"`
	Region          string `mapstructure:"region"`
	Endpoint        string `mapstructure:"endpoint"`
	PathStyle       bool   `mapstructure:"path_style"`
	Prefix          string `mapstructure:"prefix"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

// String returns a safe representation with credentials masked.
func (c S3Config) String() string {
	return fmt.Sprintf("S3Config{Bucket:%s, Region:%s, Endpoint:%s, PathStyle:%t, Prefix:%s, AccessKeyID:%s, SecretAccessKey:%s}",
		c.Bucket, c.Region, c.Endpoint, c.PathStyle, c.Prefix, maskSecret(c.AccessKeyID), maskSecret(c.SecretAccessKey))
}

// APIConfig holds HTTP API server settings. With neither AuthToken nor
// JWTSecret set the API is open.
type APIConfig struct {
	ListenAddr string `mapstructure:"listen_addr"`
	AuthToken  string `mapstructure:"auth_token"`
	JWTSecret  string `mapstructure:"jwt_secret"`
}

// String returns a safe representation with secrets masked.
func (a APIConfig) String() string {
	return fmt.Sprintf("APIConfig{ListenAddr:%s, AuthToken:%s, JWTSecret:%s}",
		a.ListenAddr, maskSecret(a.AuthToken), maskSecret(a.JWTSecret))
}

// maskSecret shows first 4 + last 4 chars, replacing the middle with asterisks.
func maskSecret(key string) string {
	const visible = 4
	if key == "" {
		return ""
	}
	if len(key) <= visible*2 {
		return "***"
	}
	return key[:visible] + "****" + key[len(key)-visible:]
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ReviewConfig holds the windows used by the periodic review.
type ReviewConfig struct {
	DueSoonDays  int `mapstructure:"due_soon_days"`
	ExpiringDays int `mapstructure:"expiring_days"`
}

// Load reads .env, the config file and environment variables, in that
// order of increasing precedence for the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading .env: %w", err)
	}

	v := viper.New()

	// Defaults
	v.SetDefault("storage.backend", BackendFile)
	v.SetDefault("storage.path", filepath.Join(homeDir(), ".riskready", "data"))
	v.SetDefault("storage.dsn", "")
	v.SetDefault("storage.table", "riskready_kv")
	v.SetDefault("storage.s3.region", "us-east-1")
	v.SetDefault("storage.s3.path_style", false)
	v.SetDefault("storage.s3.prefix", "")

	v.SetDefault("api.listen_addr", ":8080")
	v.SetDefault("api.auth_token", "")
	v.SetDefault("api.jwt_secret", "")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.SetDefault("review.due_soon_days", DefaultDueSoonDays)
	v.SetDefault("review.expiring_days", DefaultExpiringDays)

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(homeDir(), ".riskready"))
	v.AddConfigPath(".")

	// Environment variables
	v.SetEnvPrefix("RISKREADY")
	v.AutomaticEnv()

	// Map specific env vars
	_ = v.BindEnv("storage.backend", "RISKREADY_STORAGE_BACKEND")
	_ = v.BindEnv("storage.path", "RISKREADY_STORAGE_PATH")
	_ = v.BindEnv("storage.dsn", "RISKREADY_STORAGE_DSN", "DATABASE_URL")
	_ = v.BindEnv("storage.s3.bucket", "RISKREADY_STORAGE_S3_BUCKET")
	_ = v.BindEnv("storage.s3.region", "RISKREADY_STORAGE_S3_REGION", "AWS_REGION")
	_ = v.BindEnv("storage.s3.endpoint", "RISKREADY_STORAGE_S3_ENDPOINT")
	_ = v.BindEnv("storage.s3.path_style", "RISKREADY_STORAGE_S3_PATH_STYLE")
	_ = v.BindEnv("storage.s3.access_key_id", "AWS_ACCESS_KEY_ID")
	_ = v.BindEnv("storage.s3.secret_access_key", "AWS_SECRET_ACCESS_KEY")
	_ = v.BindEnv("api.listen_addr", "RISKREADY_API_LISTEN_ADDR")
	_ = v.BindEnv("api.auth_token", "RISKREADY_API_AUTH_TOKEN")
	_ = v.BindEnv("api.jwt_secret", "RISKREADY_API_JWT_SECRET")
	_ = v.BindEnv("logging.level", "RISKREADY_LOGGING_LEVEL")
	_ = v.BindEnv("logging.format", "RISKREADY_LOGGING_FORMAT")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Config file not found is OK; use defaults + env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that required configuration fields are set and consistent.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendMemory:
	case BackendFile, BackendSQLite, BackendBadger:
		if c.Storage.Path == "" {
			return fmt.Errorf("storage.path must not be empty for the %s backend", c.Storage.Backend)
		}
	case BackendPostgres:
		if c.Storage.DSN == "" {
			return fmt.Errorf("storage.dsn must not be empty for the postgres backend")
		}
		if c.Storage.Table == "" {
			return fmt.Errorf("storage.table must not be empty for the postgres backend")
		}
	case BackendS3:
		if c.Storage.S3.Bucket == "" {
			return fmt.Errorf("storage.s3.bucket must not be empty for the s3 backend")
		}
	default:
		return fmt.Errorf("storage.backend %q is not one of %v", c.Storage.Backend, Backends)
	}
	if c.API.AuthToken != "" && c.API.JWTSecret != "" {
		return fmt.Errorf("api.auth_token and api.jwt_secret are mutually exclusive")
	}
	if c.Review.DueSoonDays < 0 {
		return fmt.Errorf("review.due_soon_days must be >= 0")
	}
	if c.Review.ExpiringDays < 0 {
		return fmt.Errorf("review.expiring_days must be >= 0")
	}
	return nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
