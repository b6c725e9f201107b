package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/erraggy/jsonschema2pojo/internal/fileutil"
)

// WriteFiles writes all generated files below the specified output
// directory, creating package directories as needed. Nothing is written if
// any file name would land outside outputDir.
func (r *GenerateResult) WriteFiles(outputDir string) error {
	paths := make([]string, len(r.Files))
	for i, file := range r.Files {
		p, err := outputPath(outputDir, file.Name)
		if err != nil {
			return err
		}
		paths[i] = p
	}

	// Create output directory if it doesn't exist
	if err := os.MkdirAll(outputDir, fileutil.DirPerm); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	for i, file := range r.Files {
		if err := file.WriteFile(paths[i]); err != nil {
			return fmt.Errorf("failed to write file %s: %w", file.Name, err)
		}
	}
	return nil
}

// outputPath joins a slash-separated file name onto dir and rejects names
// that are absolute or climb out of dir.
func outputPath(dir, name string) (string, error) {
	local := filepath.FromSlash(name)
	if name == "" || filepath.IsAbs(local) || !filepath.IsLocal(local) {
		return "", fmt.Errorf("invalid file name %q: must be a relative path inside the output directory", name)
	}
	p := filepath.Join(dir, local)
	rel, err := filepath.Rel(dir, p)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("invalid file name %q: escapes the output directory", name)
	}
	return p, nil
}

// WriteFile writes a single generated file to the specified path.
func (f *GeneratedFile) WriteFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, fileutil.DirPerm); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, f.Content, fileutil.ReadableByAll); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}
