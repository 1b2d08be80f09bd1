package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644
)

// FileWriterAdapter writes the files chaincfg init scaffolds into a project.
type FileWriterAdapter struct{}

func NewFileWriterAdapter() *FileWriterAdapter {
	return &FileWriterAdapter{}
}

// WriteFile replaces path with content. Missing parent directories are created.
func (f *FileWriterAdapter) WriteFile(ctx context.Context, path string, content string) error {
	if err := f.EnsureDirectory(ctx, filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// FileExists is false only when nothing is at path; other stat failures are returned.
func (f *FileWriterAdapter) FileExists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
}

func (f *FileWriterAdapter) EnsureDirectory(ctx context.Context, path string) error {
	if err := os.MkdirAll(path, dirPerm); err != nil {
		return fmt.Errorf("create directory %s: %w", path, err)
	}
	return nil
}

var _ usecase.FileWriter = (*FileWriterAdapter)(nil)
