package wise4

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes files into the project folder dir.
// It creates the folder if it doesn't exist.
func WriteFiles(files []File, dir string) error {
	err := os.MkdirAll(dir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating project folder: %w", err)
	}

	for _, file := range files {
		if !filepath.IsLocal(file.Name) {
			return fmt.Errorf("writing file %s: name escapes the project folder", file.Name)
		}

		outputPath := filepath.Join(dir, file.Name)

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Name, err)
		}
	}

	return nil
}
