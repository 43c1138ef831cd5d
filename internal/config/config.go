// Package config provides configuration management for nem using Viper.
package config

import (
	"github.com/spf13/viper"

	"github.com/thoreinstein/nem/internal/alias"
	"github.com/thoreinstein/nem/internal/errors"
	"github.com/thoreinstein/nem/internal/paths"
)

// Setting keys.
const (
	KeyStoreFile   = "store_file"
	KeyGlobalStore = "global_store"
	KeyAutoInit    = "auto_init"
	KeyStrict      = "strict"
	KeyEditor      = "editor"
)

// Config represents the application settings.
type Config struct {
	// StoreFile is the per-directory store file name looked for during discovery.
	StoreFile string `mapstructure:"store_file" yaml:"store_file" json:"store_file"`
	// GlobalStore is the user-wide store appended after the ancestry.
	// Empty disables it.
	GlobalStore string `mapstructure:"global_store" yaml:"global_store" json:"global_store"`
	// AutoInit lets create initialize a store in the start directory when
	// none exists in the ancestry.
	AutoInit bool `mapstructure:"auto_init" yaml:"auto_init" json:"auto_init"`
	// Strict turns an unknown code into an error instead of listing.
	Strict bool `mapstructure:"strict" yaml:"strict" json:"strict"`
	// Editor overrides $VISUAL and $EDITOR for nem open.
	Editor string `mapstructure:"editor" yaml:"editor,omitempty" json:"editor,omitempty"`
}

// Keys lists every setting key in display order.
func Keys() []string {
	return []string{KeyStoreFile, KeyGlobalStore, KeyAutoInit, KeyStrict, KeyEditor}
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
// Init resets any previous Viper state, so a later call picks up a
// changed NEM_CONFIG_DIR.
func Init() {
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(paths.ConfigDir())

	// NEM_STRICT=true, NEM_STORE_FILE=.aliases.toml, ...
	viper.SetEnvPrefix("NEM")
	viper.AutomaticEnv()

	viper.SetDefault(KeyStoreFile, alias.DefaultFileName)
	viper.SetDefault(KeyGlobalStore, paths.GlobalStorePath())
	viper.SetDefault(KeyAutoInit, false)
	viper.SetDefault(KeyStrict, false)
	viper.SetDefault(KeyEditor, "")
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back to
// defaults when no file is found.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "reading config file")
		}
		if path != "" {
			return nil, errors.Wrapf(err, "config file not found at %s", path)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	global, err := paths.ExpandHome(cfg.GlobalStore)
	if err != nil {
		return nil, errors.Wrap(err, "expanding global_store")
	}
	cfg.GlobalStore = global

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "validating config")
	}

	return &cfg, nil
}

// FileUsed returns the settings file Viper loaded, or "" when running on
// defaults.
func FileUsed() string {
	return viper.ConfigFileUsed()
}

// Get returns the effective value of a single setting key.
func Get(key string) (any, bool) {
	for _, k := range Keys() {
		if k == key {
			return viper.Get(key), true
		}
	}
	return nil, false
}
