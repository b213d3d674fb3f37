package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindRepositoryRoot walks parent directories upward from start until it
// finds one containing a .git directory. It returns an error when the
// filesystem root is reached without finding one.
func FindRepositoryRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", start, err)
	}

	for {
		info, err := os.Stat(filepath.Join(dir, ".git"))
		if err == nil && info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no repository root (.git directory) found above %s", start)
		}
		dir = parent
	}
}
