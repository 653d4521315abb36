package resources

import (
	"context"
	"fmt"
	"os"

	apperrors "go-image-classifier/internal/errors"
)

// Loader reads a named model artifact (graph bytes, label list) into memory.
// Artifacts are loaded once at startup and treated as immutable afterwards.
type Loader interface {
	Load(ctx context.Context, name string) ([]byte, error)
}

// FileLoader reads artifacts from the local filesystem
type FileLoader struct{}

// NewFileLoader creates a filesystem-backed artifact loader
func NewFileLoader() Loader {
	return &FileLoader{}
}

func (l *FileLoader) Load(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewIOError(fmt.Sprintf("load of %q aborted", name), err)
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return nil, apperrors.NewIOError(fmt.Sprintf("failed to read %q", name), err)
	}
	if len(data) == 0 {
		return nil, apperrors.NewIOError(fmt.Sprintf("artifact %q is empty", name), nil)
	}
	return data, nil
}
