package config

import (
	"os"
	"path/filepath"
)

func configPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "kodex", "config.json"), nil
}
