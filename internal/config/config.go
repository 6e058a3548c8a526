// Package config resolves studydesk settings from defaults, an optional YAML
// file and STUDYDESK_* environment variables, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ID strategies.
const (
	IDsTimestamp = "timestamp"
	IDsUUID      = "uuid"
)

// Config is the complete studydesk configuration.
type Config struct {
	Storage  StorageConfig `yaml:"storage"`
	IDs      string        `yaml:"ids"`
	LogLevel string        `yaml:"log_level"`
}

// StorageConfig selects and configures the persistence backend.
type StorageConfig struct {
	// Driver is one of memory, sqlite, postgres, file, s3.
	Driver string `yaml:"driver"`
	// Fallback swaps in the memory backend when Driver cannot be opened.
	Fallback bool `yaml:"fallback"`

	SQLitePath  string   `yaml:"sqlite_path"`
	PostgresDSN string   `yaml:"postgres_dsn"`
	FileDir     string   `yaml:"file_dir"`
	S3          S3Config `yaml:"s3"`
}

// S3Config configures the s3 driver. Credentials come from the default AWS
// chain unless AccessKeyID is set.
type S3Config struct {
	Bucket          string `yaml:"bucket"`
	Region          string `yaml:"region"`
	Endpoint        string `yaml:"endpoint"`
	Prefix          string `yaml:"prefix"`
	PathStyle       bool   `yaml:"path_style"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Storage: StorageConfig{
			Driver:     "file",
			Fallback:   true,
			SQLitePath: "studydesk.db",
			FileDir:    defaultDataDir(),
		},
		IDs:      IDsTimestamp,
		LogLevel: "warn",
	}
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		return filepath.Join(dir, "studydesk")
	}
	return "./studydesk-data"
}

var drivers = map[string]bool{"memory": true, "sqlite": true, "postgres": true, "file": true, "s3": true}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if !drivers[c.Storage.Driver] {
		return fmt.Errorf("storage.driver %q: want memory, sqlite, postgres, file or s3", c.Storage.Driver)
	}
	if c.Storage.Driver == "s3" && c.Storage.S3.Bucket == "" {
		return fmt.Errorf("storage.s3.bucket is required for the s3 driver")
	}
	switch c.IDs {
	case IDsTimestamp, IDsUUID:
	default:
		return fmt.Errorf("ids %q: want timestamp or uuid", c.IDs)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level %q: want debug, info, warn or error", c.LogLevel)
	}
	return nil
}

// LoadFile overlays the YAML document at path onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path) // #nosec G304 -- operator supplied config path
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

// ApplyEnv overlays STUDYDESK_* variables found through lookup.
//
//	STUDYDESK_STORAGE_DRIVER: memory|sqlite|postgres|file|s3
//	STUDYDESK_FALLBACK: true|false
//	STUDYDESK_SQLITE_PATH, STUDYDESK_POSTGRES_DSN, STUDYDESK_FILE_DIR
//	STUDYDESK_S3_BUCKET, STUDYDESK_S3_REGION, STUDYDESK_S3_ENDPOINT,
//	STUDYDESK_S3_PREFIX, STUDYDESK_S3_PATH_STYLE
//	STUDYDESK_IDS: timestamp|uuid
//	STUDYDESK_LOG_LEVEL: debug|info|warn|error
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	boolean := func(key string, dst *bool) error {
		v, ok := lookup(key)
		if !ok || v == "" {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = b
		return nil
	}
	str("STUDYDESK_STORAGE_DRIVER", &c.Storage.Driver)
	str("STUDYDESK_SQLITE_PATH", &c.Storage.SQLitePath)
	str("STUDYDESK_POSTGRES_DSN", &c.Storage.PostgresDSN)
	str("STUDYDESK_FILE_DIR", &c.Storage.FileDir)
	str("STUDYDESK_S3_BUCKET", &c.Storage.S3.Bucket)
	str("STUDYDESK_S3_REGION", &c.Storage.S3.Region)
	str("STUDYDESK_S3_ENDPOINT", &c.Storage.S3.Endpoint)
	str("STUDYDESK_S3_PREFIX", &c.Storage.S3.Prefix)
	str("STUDYDESK_IDS", &c.IDs)
	str("STUDYDESK_LOG_LEVEL", &c.LogLevel)
	if err := boolean("STUDYDESK_FALLBACK", &c.Storage.Fallback); err != nil {
		return err
	}
	return boolean("STUDYDESK_S3_PATH_STYLE", &c.Storage.S3.PathStyle)
}

// Load resolves defaults, then path (when non-empty), then the process
// environment, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
