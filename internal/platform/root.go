package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigFileName marks a wiki root alongside the entries directory.
const ConfigFileName = "encyclopedia.yaml"

// FindRoot walks upwards from startDir looking for a wiki root.
// A root holds an entries directory or an encyclopedia.yaml file.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if isDir(filepath.Join(dir, "entries")) || hasFile(dir, ConfigFileName) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("wiki root not found from %s", abs)
}

func hasFile(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
