package domain

import (
	"context"
	"errors"
)

// Driver identifies a concrete key-value backend.
type Driver string

const (
	DriverMemory   Driver = "memory"   // in-memory only (tests / fallback)
	DriverSQLite   Driver = "sqlite"   // embedded sqlite file
	DriverPostgres Driver = "postgres" // PostgreSQL server
	DriverFile     Driver = "file"     // one JSON file per key
	DriverS3       Driver = "s3"       // S3 / MinIO compatible bucket
)

// ErrNotFound is returned (wrapped) by KV.Get when a key has never been written.
var ErrNotFound = errors.New("persistence: key not found")

// KV is the persistence contract beneath the record store: whole values are
// read and replaced by key. Put overwrites any previous value.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Driver() Driver
	Close() error
}
