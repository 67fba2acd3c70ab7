// Package config loads and saves application configuration. A project-local
// .abbrevify/config.yaml takes precedence over the user-level file in
// ~/.config/abbrevify/. Collection snapshots live in the data directory,
// which defaults to the directory holding the active config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Theme preference values.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

const localConfigPath = ".abbrevify/config.yaml"

// Config is the application configuration.
type Config struct {
	// ServiceURL is the text-processing endpoint.
	ServiceURL string `mapstructure:"service_url"`
	// AuthURL is the base URL of the account server.
	AuthURL string `mapstructure:"auth_url"`
	// DataDir overrides where collection snapshots are stored.
	DataDir string `mapstructure:"data_dir"`
	// Theme is the persisted theme preference, "dark" or "light".
	Theme string `mapstructure:"theme"`

	// path is where this config was loaded from (or would be saved to).
	path string
}

func defaults() Config {
	return Config{
		ServiceURL: "http://127.0.0.1:5000/process_text",
		AuthURL:    "http://localhost:3000",
		Theme:      ThemeDark,
	}
}

// DefaultPath returns the user-level config location.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "abbrevify", "config.yaml")
}

// Resolve returns the config path to use: the explicit path if given, the
// project-local file if present, otherwise the user-level location.
func Resolve(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(localConfigPath); err == nil {
		return localConfigPath
	}
	return DefaultPath()
}

// Load reads the config file at path. A missing file yields defaults; a
// malformed file is an error.
func Load(path string) (Config, error) {
	cfg := defaults()
	cfg.path = path

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Theme != ThemeLight {
		cfg.Theme = ThemeDark
	}
	return cfg, nil
}

// Path returns where this config was loaded from.
func (c Config) Path() string { return c.path }

// WriteDefault creates a config file with default settings at path.
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}
	def := defaults()
	content := fmt.Sprintf(`# Abbrevify configuration
service_url: %s
auth_url: %s
theme: %s
`, def.ServiceURL, def.AuthURL, def.Theme)
	return os.WriteFile(path, []byte(content), 0o640)
}

// SaveTheme persists the theme preference, preserving every other key in the
// config file. Creates the file if it does not exist yet.
func SaveTheme(path, theme string) error {
	if theme != ThemeLight {
		theme = ThemeDark
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return fmt.Errorf("reading config %s: %w", path, err)
			}
		}
	}

	v.Set("theme", theme)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}
	return v.WriteConfigAs(path)
}

// dataDir returns the directory holding collection snapshots: the configured
// override when set, otherwise the directory of the active config file.
func (c Config) dataDir() string {
	if strings.TrimSpace(c.DataDir) != "" {
		return c.DataDir
	}
	if c.path != "" {
		return filepath.Dir(c.path)
	}
	return filepath.Dir(DefaultPath())
}

// HistoryPath is the conversion history snapshot file.
func (c Config) HistoryPath() string { return filepath.Join(c.dataDir(), "history.json") }

// AbbreviationsPath is the custom abbreviation snapshot file.
func (c Config) AbbreviationsPath() string { return filepath.Join(c.dataDir(), "abbreviations.json") }

// StatsPath is the usage counter snapshot file.
func (c Config) StatsPath() string { return filepath.Join(c.dataDir(), "stats.json") }

// UserPath is the logged-in account snapshot file.
func (c Config) UserPath() string { return filepath.Join(c.dataDir(), "user.json") }

// LogPath is the application log file.
func (c Config) LogPath() string { return filepath.Join(c.dataDir(), "abbrevify.log") }
