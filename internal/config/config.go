package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "bookbin", "config.yml")
}

// Path resolves the config file location: the explicit path if set, then
// BOOKBIN_CONFIG, then DefaultPath.
func Path(explicit string) string {
	if explicit != "" {
		return ExpandHome(explicit)
	}
	if env := os.Getenv("BOOKBIN_CONFIG"); env != "" {
		return ExpandHome(env)
	}
	return DefaultPath()
}

// Default returns the configuration used when no file or env overrides exist.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{Driver: "file", Dir: defaultDataDir()},
		Explore: ExploreConfig{
			BaseURL:       "https://fakerapi.it/api/v1",
			Count:         10,
			Timeout:       15 * time.Second,
			RatePerSecond: 1,
		},
		Log:    LogConfig{Level: "warn", Format: "text"},
		Notify: NotifyConfig{Duration: 5 * time.Second},
	}
}

// Load reads the config from path (see Path) with env overrides. A missing
// file is fine; defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("storage.driver", def.Storage.Driver)
	v.SetDefault("storage.dir", def.Storage.Dir)
	v.SetDefault("explore.base_url", def.Explore.BaseURL)
	v.SetDefault("explore.count", def.Explore.Count)
	v.SetDefault("explore.timeout", def.Explore.Timeout)
	v.SetDefault("explore.rate_per_second", def.Explore.RatePerSecond)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)
	v.SetDefault("notify.duration", def.Notify.Duration)

	v.SetEnvPrefix("BOOKBIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(Path(path))
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		// Not finding the config file is fine; init creates it.
		if !os.IsNotExist(err) {
			if _, isCfgNotFound := err.(viper.ConfigFileNotFoundError); !isCfgNotFound {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Storage.Dir = ExpandHome(cfg.Storage.Dir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings no component can run with.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "file", "badger", "sqlite", "memory":
	default:
		return fmt.Errorf("storage.driver: unknown driver %q", c.Storage.Driver)
	}
	if c.Storage.Driver != "memory" && c.Storage.Dir == "" {
		return fmt.Errorf("storage.dir: required for driver %q", c.Storage.Driver)
	}
	if c.Explore.Count < 0 {
		return fmt.Errorf("explore.count: must not be negative")
	}
	return nil
}

// Save writes the config as YAML to path, creating parent directories.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(cfg)
}

// ExpandHome expands a leading ~/ in a path.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

func defaultDataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "bookbin")
}
