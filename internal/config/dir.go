// Package config provides the global configuration directory for nextskill.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the nextskill configuration directory.
//
// Resolution:
//   - $NEXTSKILL_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/nextskill if set (respects XDG on any platform)
//   - %AppData%/nextskill on Windows
//   - ~/.config/nextskill on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("NEXTSKILL_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "nextskill")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "nextskill")
		}
	}

	// macOS and Linux: ~/.config/nextskill
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "nextskill")
}
