package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Storage StorageConfig
	Probe   ProbeConfig
	UI      UIConfig
}

// StorageConfig holds data file locations.
type StorageConfig struct {
	Dir         string // ledger + settings JSON documents
	ArchivePath string `mapstructure:"archive_path"` // sqlite settlement archive
}

// ProbeConfig holds media-metadata collaborator settings.
type ProbeConfig struct {
	Binary  string
	Timeout time.Duration
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
	DateFormat     string `mapstructure:"date_format"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// SOUNDTIME_. A missing config file is fine; every key has a default.
func Load() (Config, error) {
	v := viper.New()

	dataDir := defaultDataDir()
	v.SetDefault("storage.dir", dataDir)
	v.SetDefault("storage.archive_path", filepath.Join(dataDir, "archive.db"))
	v.SetDefault("probe.binary", "ffprobe")
	v.SetDefault("probe.timeout", "15s")
	v.SetDefault("ui.currency_symbol", "¥")
	v.SetDefault("ui.date_format", "2006-01-02")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SOUNDTIME_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(dataDir)
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SOUNDTIME")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Probe.Timeout <= 0 {
		c.Probe.Timeout = 15 * time.Second
	}
	return c, nil
}

func defaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.Getenv("HOME")
	}
	return filepath.Join(dir, "soundtime")
}
