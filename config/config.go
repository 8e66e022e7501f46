package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	// EnvMaxFileBytes is the environment variable name for the import file
	// size limit.
	EnvMaxFileBytes = "MDTABLE_MAX_FILE_BYTES"

	// EnvDefaultAlignment is the environment variable name for the fallback
	// column-alignment keyword.
	EnvDefaultAlignment = "MDTABLE_DEFAULT_ALIGNMENT"

	// DefaultMaxFileBytes is the default maximum accepted file size (50 MiB).
	DefaultMaxFileBytes int64 = 50 << 20

	// DefaultAlignment is used when EnvDefaultAlignment is unset or not one
	// of left, right, center.
	DefaultAlignment = "center"
)

// Config holds runtime configuration sourced from environment variables.
type Config struct {
	MaxFileSizeBytes int64
	DefaultAlignment string
}

// MaxFileSizeMB returns the configured limit in whole megabytes.
func (c *Config) MaxFileSizeMB() int64 {
	return c.MaxFileSizeBytes >> 20
}

// Load reads Config from environment variables, falling back to defaults for
// missing or invalid values.
func Load() *Config {
	cfg := &Config{
		MaxFileSizeBytes: DefaultMaxFileBytes,
		DefaultAlignment: DefaultAlignment,
	}
	if v := os.Getenv(EnvMaxFileBytes); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.MaxFileSizeBytes = n
		}
	}
	switch v := strings.ToLower(os.Getenv(EnvDefaultAlignment)); v {
	case "left", "right", "center":
		cfg.DefaultAlignment = v
	}
	return cfg
}
