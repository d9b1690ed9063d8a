package episode

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileName is the export file name used when none is configured.
const DefaultFileName = "humanoid_episodes.json"

// WriteFile writes an exported document to path, creating parent directories.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write episode file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to move episode file into place: %w", err)
	}
	return nil
}

// ReadFile reads and decodes every episode in a document.
func ReadFile(path string) ([]*Episode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read episode file: %w", err)
	}
	eps, err := DecodeAll(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return eps, nil
}
