package session

import (
	"fmt"
	"os"
	"path/filepath"
)

// ReadFile loads the file at path as an upload candidate.
func ReadFile(path string) (File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return File{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return File{}, fmt.Errorf("%s is a directory", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read %s: %w", path, err)
	}

	return File{Name: filepath.Base(path), Data: data}, nil
}
