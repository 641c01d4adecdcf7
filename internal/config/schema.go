package config

import (
	"path/filepath"
	"time"
)

// Config is the top-level bookbin configuration.
type Config struct {
	Storage StorageConfig `mapstructure:"storage" yaml:"storage"`
	Explore ExploreConfig `mapstructure:"explore" yaml:"explore"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
	Notify  NotifyConfig  `mapstructure:"notify" yaml:"notify"`
}

// StorageConfig selects where the catalog blobs live.
type StorageConfig struct {
	Driver string `mapstructure:"driver" yaml:"driver"` // file, badger, sqlite or memory
	Dir    string `mapstructure:"dir" yaml:"dir"`
}

// ExploreConfig holds settings for the external book source.
type ExploreConfig struct {
	BaseURL       string        `mapstructure:"base_url" yaml:"base_url"`
	Count         int           `mapstructure:"count" yaml:"count"`
	Timeout       time.Duration `mapstructure:"timeout" yaml:"timeout"`
	RatePerSecond float64       `mapstructure:"rate_per_second" yaml:"rate_per_second"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// NotifyConfig controls transient messages.
type NotifyConfig struct {
	Duration time.Duration `mapstructure:"duration" yaml:"duration"`
}

// Location returns the path handed to the storage driver: the directory
// itself for file and badger, a database file inside it for sqlite.
func (s StorageConfig) Location() string {
	if s.Driver == "sqlite" {
		return filepath.Join(s.Dir, "bookbin.db")
	}
	return s.Dir
}
