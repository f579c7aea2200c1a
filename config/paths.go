package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindProjectRoot walks up from the working directory looking for the
// project marker. Scripts can live anywhere under the project tree and
// still resolve the same flat-file stores.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return FindProjectRootFrom(cwd)
}

// FindProjectRootFrom walks up from start. A directory is the root when
// it contains the marker dir, or failing that a data/ directory next to
// a config.json (older project layouts predate the marker).
func FindProjectRootFrom(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	for {
		if isDir(filepath.Join(dir, MarkerDir)) {
			return dir, nil
		}
		if isDir(filepath.Join(dir, "data")) && fileExists(filepath.Join(dir, "config.json")) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no project root found above %s", start)
		}
		dir = parent
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
