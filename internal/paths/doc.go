// Package paths resolves the per-user locations nem reads outside the
// directory ancestry: its settings file and the global alias store.
//
// Locations follow the XDG Base Directory Specification through
// github.com/adrg/xdg:
//
//	paths.ConfigDir()       // ~/.config/nem (or $NEM_CONFIG_DIR)
//	paths.ConfigFile()      // ~/.config/nem/config.yaml
//	paths.GlobalStorePath() // ~/.config/nem/nem.toml
package paths
