package templatestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"billforge/internal/domain"
	"billforge/internal/port"
)

// fsSource loads template markup from a directory on disk.
type fsSource struct {
	dir string
}

// New creates a filesystem-backed template source rooted at dir.
func New(dir string) port.TemplateSource {
	return &fsSource{dir: dir}
}

func (s *fsSource) Load(_ context.Context, file string) (string, error) {
	// File names come from the registry, never from the request, but a
	// path separator here would still mean a bug upstream.
	if strings.ContainsAny(file, `/\`) {
		return "", fmt.Errorf("templatestore.Load: invalid file name %q", file)
	}
	data, err := os.ReadFile(filepath.Join(s.dir, file))
	if err != nil {
		if os.IsNotExist(err) {
			return "", domain.ErrTemplateNotFound
		}
		return "", fmt.Errorf("templatestore.Load: %w", err)
	}
	return string(data), nil
}
