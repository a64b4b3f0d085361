package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ajitpratap0/riskready/internal/config"
)

// Open constructs the backend named by cfg.Backend, wrapped with metrics.
func Open(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (KV, error) {
	var (
		kv  KV
		err error
	)
	switch cfg.Backend {
	case config.BackendMemory:
		kv = NewMemoryStore()
	case config.BackendFile:
		kv, err = NewFileStore(cfg.Path)
	case config.BackendSQLite:
		kv, err = NewSQLiteStore(ctx, cfg.Path)
	case config.BackendBadger:
		kv, err = NewBadgerStore(BadgerConfig{Path: cfg.Path, SyncWrites: true, Logger: logger})
	case config.BackendPostgres:
		kv, err = NewPostgresStore(ctx, cfg.DSN, cfg.Table)
	case config.BackendS3:
		kv, err = NewS3Store(ctx, S3Config{
			Bucket:          cfg.S3.Bucket,
			Region:          cfg.S3.Region,
			Endpoint:        cfg.S3.Endpoint,
			PathStyle:       cfg.S3.PathStyle,
			Prefix:          cfg.S3.Prefix,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
		})
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", cfg.Backend, err)
	}
	logger.Debug("store opened", "backend", cfg.Backend, "path", cfg.Path)
	return Instrument(kv, cfg.Backend), nil
}
