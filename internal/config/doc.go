// Package config provides the nem CLI's own settings.
//
// Settings are distinct from alias stores: they control how stores are
// found and how misses are handled, not which aliases exist.
//
// # Configuration File
//
// The file is config.yaml in ~/.config/nem (or $NEM_CONFIG_DIR):
//
//	store_file: .nem.toml                  # per-directory store name
//	global_store: ~/.config/nem/nem.toml   # "" disables the global store
//	auto_init: false                       # create initializes a store when none exists
//	strict: false                          # unknown code is an error instead of listing
//	editor: vim                            # optional, for nem open
//
// Every key can also be set from the environment with the NEM_ prefix,
// e.g. NEM_STRICT=true.
//
// # Loading Configuration
//
//	config.Init()
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//
// Loaded settings are validated; [Validate] can also be called directly.
package config
