package core

import (
	"fmt"
	"io"
	"os"
)

// WriteArtifact creates path and fills it with write. When write or the
// final close fails the partial file is removed, so an artifact either
// exists complete or not at all.
func WriteArtifact(path string, write func(w io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := write(file); err != nil {
		file.Close()
		os.Remove(path)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
