package config

import (
	"os"
	"path/filepath"
)

// Dir returns the keystrip directory under the user config dir.
func Dir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "keystrip")
}

// DefaultPath returns the preferred config file location.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.toml")
}

// LogPath returns the run log file location.
func LogPath() string {
	return filepath.Join(Dir(), "keystrip.log")
}

// Locate returns the config file to use: the user config dir location if it
// exists, a config.toml in the working directory as a fallback, otherwise
// the preferred location (to be created there).
func Locate() string {
	preferred := DefaultPath()
	if _, err := os.Stat(preferred); err == nil {
		return preferred
	}
	if cwd, err := os.Getwd(); err == nil {
		local := filepath.Join(cwd, "config.toml")
		if _, err := os.Stat(local); err == nil {
			return local
		}
	}
	return preferred
}
