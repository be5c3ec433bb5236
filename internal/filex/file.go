// Package filex holds small filesystem helpers for the upload workflow.
package filex

import (
	"fmt"
	"os"
)

// Exists reports whether path names an entry on the local filesystem.
// An empty path never exists.
func Exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// ReadAll loads the whole file into memory. Directories are rejected with a
// descriptive error instead of the platform-specific read failure.
func ReadAll(path string) ([]byte, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("read %s: is a directory", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
