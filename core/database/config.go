package database

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// ErrDatabaseMissing is returned when the configured sqlite file does not exist.
var ErrDatabaseMissing = errors.New("database file does not exist")

// Config holds configuration for the database connection.
type Config struct {
	// URL is the sqlite file path, an s3://bucket/key snapshot URI, or a MySQL DSN.
	URL string `mapstructure:"url" env:"DATABASE_URL" default:"./data/copypastas.sqlite"`
	// Driver is the database driver (sqlite, mysql).
	Driver string `mapstructure:"driver" default:"sqlite"`
	// Table is the table holding the (id, body) entries.
	Table string `mapstructure:"table" default:"copypastas"`
	// FallbackMaxID is used whenever the max(id) query fails or finds nothing.
	// It should exceed the real population so sampling below it still finds entries.
	FallbackMaxID int64 `mapstructure:"fallback_max_id" default:"388800" range:"1,"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// IsRemote reports whether URL points to an object storage snapshot.
func (c Config) IsRemote() bool {
	return strings.HasPrefix(c.URL, "s3://")
}

// Verify checks that the sqlite database file exists. MySQL DSNs are verified by Connect.
func (c Config) Verify() error {
	if c.Driver == DriverMySQL {
		return nil
	}
	info, err := os.Stat(c.URL)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %q", ErrDatabaseMissing, c.URL)
		}
		return fmt.Errorf("failed to stat database %q: %w", c.URL, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %q is a directory", ErrDatabaseMissing, c.URL)
	}
	return nil
}
