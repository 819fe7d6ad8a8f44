//go:build prod

package config

import (
	"log"
	"os"
	"path/filepath"
)

// DefaultDataDir returns the user data directory in production mode.
// Files are stored in the user's config directory.
func DefaultDataDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Printf("Warning: Failed to get user config dir: %v. Using fallback.", err)
		return "."
	}

	appDir := filepath.Join(configDir, "KeyForest")

	err = os.MkdirAll(appDir, 0755)
	if err != nil {
		log.Printf("Warning: Failed to create app config dir: %v. Using fallback.", err)
		return "."
	}

	return appDir
}

func IsDevelopment() bool {
	return false
}
