//go:build !prod

package config

// DevDataDir is where a development build keeps its files, relative to the working directory.
const DevDataDir = ".keyforest"

// DefaultDataDir returns the data directory for development mode.
// In dev mode everything lives next to the project for easy inspection.
func DefaultDataDir() string {
	return DevDataDir
}

func IsDevelopment() bool {
	return true
}
