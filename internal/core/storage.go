package core

import (
	"context"
	"fmt"
	"studydesk/internal/config"
	"studydesk/internal/infra/persistence/file"
	"studydesk/internal/infra/persistence/memory"
	"studydesk/internal/infra/persistence/postgres"
	"studydesk/internal/infra/persistence/s3"
	"studydesk/internal/infra/persistence/sqlite"
	"studydesk/pkg/domain"
)

// Storage is an opened backend together with how it was selected.
type Storage struct {
	domain.KV
	// Requested is the driver named in configuration.
	Requested domain.Driver
	// Fallback is set when Requested could not be opened and the memory
	// backend was substituted.
	Fallback bool
}

// OpenKV opens the backend named by cfg.Driver without any fallback.
func OpenKV(ctx context.Context, cfg config.StorageConfig) (domain.KV, error) {
	switch domain.Driver(cfg.Driver) {
	case domain.DriverMemory:
		return memory.New(), nil
	case domain.DriverSQLite:
		return sqlite.NewStore(cfg.SQLitePath)
	case domain.DriverPostgres:
		return postgres.NewStore(ctx, cfg.PostgresDSN)
	case domain.DriverFile:
		return file.New(cfg.FileDir)
	case domain.DriverS3:
		return s3.New(ctx, s3.Config{
			Region:          cfg.S3.Region,
			Bucket:          cfg.S3.Bucket,
			Prefix:          cfg.S3.Prefix,
			Endpoint:        cfg.S3.Endpoint,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
			PathStyle:       cfg.S3.PathStyle,
		})
	default:
		return nil, fmt.Errorf("unknown storage driver %s", cfg.Driver)
	}
}

// OpenPersistentStore opens the configured backend. When that fails and
// cfg.Fallback is set, the error is logged and an in-memory backend is
// returned instead; data written to it is lost on exit.
func OpenPersistentStore(ctx context.Context, cfg config.StorageConfig, logger Logger) (*Storage, error) {
	if logger == nil {
		logger = noopLogger{}
	}
	requested := domain.Driver(cfg.Driver)
	kv, err := OpenKV(ctx, cfg)
	if err == nil {
		return &Storage{KV: kv, Requested: requested}, nil
	}
	if !cfg.Fallback {
		return nil, fmt.Errorf("open %s storage: %w", cfg.Driver, err)
	}
	logger.Warn("persistent storage unavailable, using in-memory store", "driver", cfg.Driver, "error", err)
	return &Storage{KV: memory.New(), Requested: requested, Fallback: true}, nil
}
