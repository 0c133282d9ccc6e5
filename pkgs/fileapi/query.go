package fileapi

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteQuery requests the code model for the next cmake configure run in
// buildDir. Calling it again is a no-op.
func WriteQuery(buildDir string) error {
	dir := QueryDir(buildDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create query dir: %w", err)
	}
	marker := filepath.Join(dir, CodeModelKind)
	if _, err := os.Stat(marker); err == nil {
		return nil
	}
	if err := os.WriteFile(marker, nil, 0644); err != nil {
		return fmt.Errorf("write query %s: %w", marker, err)
	}
	return nil
}
