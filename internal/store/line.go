package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// LoadLine reads a single-value file and returns it trimmed.
// A missing file yields "" without error.
func LoadLine(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// SaveLine writes value (trimmed, newline-terminated) to path, creating
// parent dirs.
func SaveLine(path, value string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(strings.TrimSpace(value)+"\n"), 0o644)
}
