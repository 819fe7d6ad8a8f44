package utils

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

// LoadEnv loads .env from the project root, or from the working directory
// when running outside a source checkout. Variables already set win.
func LoadEnv() error {
	root, err := FindProjectRoot()
	if err != nil {
		root, err = os.Getwd()
		if err != nil {
			return err
		}
	}
	envPath := filepath.Join(root, ".env")
	if !FileExists(envPath) {
		return os.ErrNotExist
	}
	return godotenv.Load(envPath)
}
