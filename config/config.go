// Package config loads textbuf settings from TOML and turns them into
// builder options, snapshot encoder options and a logger.
//
// Example file:
//
//	initial_capacity = 64
//	compression = "lz4"
//	log_level = "debug"
//
// Missing keys keep their defaults; unknown keys are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/arloliu/textbuf/builder"
	"github.com/arloliu/textbuf/errs"
	"github.com/arloliu/textbuf/format"
	"github.com/arloliu/textbuf/snapshot"
	"github.com/pelletier/go-toml/v2"
)

// LogLevel is the minimum level of records emitted by the configured logger.
// Valid values: debug, info, warn, error
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info" // default
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// ToSlogLevel converts l to its slog.Level. Matching is case-insensitive and
// the empty level means info.
func (l LogLevel) ToSlogLevel() (slog.Level, error) {
	switch strings.ToLower(string(l)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidLogLevel, string(l))
	}
}

func (l LogLevel) String() string {
	return string(l)
}

// Config holds textbuf settings.
type Config struct {
	// InitialCapacity is the capacity in code units of new builders.
	InitialCapacity int `toml:"initial_capacity"`
	// Compression names the snapshot payload codec: none, zstd, s2 or lz4.
	Compression string `toml:"compression"`
	// LogLevel is the minimum level of the logger built by NewLogger.
	LogLevel LogLevel `toml:"log_level"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		InitialCapacity: builder.DefaultCapacity,
		Compression:     "zstd",
		LogLevel:        LogLevelInfo,
	}
}

// Load parses TOML content over the defaults and validates the result.
func Load(content []byte) (*Config, error) {
	cfg := Default()

	decoder := toml.NewDecoder(bytes.NewReader(content))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("parse config: %w\n%s", err, strict.String())
		}

		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile reads and parses the TOML file at path.
func LoadFile(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return Load(content)
}

// Validate checks every field.
func (c *Config) Validate() error {
	if c.InitialCapacity < 0 {
		return fmt.Errorf("%w: initial_capacity %d", errs.ErrInvalidCapacity, c.InitialCapacity)
	}
	if _, ok := format.ParseCompression(c.Compression); !ok {
		return fmt.Errorf("%w: %q", errs.ErrInvalidCompression, c.Compression)
	}
	if _, err := c.LogLevel.ToSlogLevel(); err != nil {
		return err
	}

	return nil
}

// CompressionType returns the configured snapshot codec, or CompressionNone when
// the name is not recognized.
func (c *Config) CompressionType() format.CompressionType {
	ct, ok := format.ParseCompression(c.Compression)
	if !ok {
		return format.CompressionNone
	}

	return ct
}

// Level returns the configured slog level, or slog.LevelInfo when invalid.
func (c *Config) Level() slog.Level {
	level, err := c.LogLevel.ToSlogLevel()
	if err != nil {
		return slog.LevelInfo
	}

	return level
}

// BuilderOptions returns the builder options for these settings.
// A nil logger leaves builder logging disabled.
func (c *Config) BuilderOptions(logger *slog.Logger) []builder.Option {
	return []builder.Option{
		builder.WithCapacity(c.InitialCapacity),
		builder.WithLogger(logger),
	}
}

// SnapshotOptions returns the snapshot encoder options for these settings.
func (c *Config) SnapshotOptions() []snapshot.Option {
	return []snapshot.Option{
		snapshot.WithCompression(c.CompressionType()),
	}
}

// NewLogger returns a text logger writing records at or above level to w.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
