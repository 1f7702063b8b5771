package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"datacat/internal/adapters/jsondoc"
	"datacat/internal/domain"
	"datacat/internal/ports"
)

// Source implements ports.DatasetSource over a directory of JSON documents
type Source struct {
	dir   string
	files map[domain.DatasetName]string
}

// Ensure Source implements DatasetSource
var _ ports.DatasetSource = (*Source)(nil)

// NewSource creates a source reading from dir. Datasets missing from files
// use their default file name.
func NewSource(dir string, files map[domain.DatasetName]string) *Source {
	// Expand ~ to home directory
	if strings.HasPrefix(dir, "~") {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, dir[1:])
	}
	return &Source{dir: dir, files: files}
}

// Dir returns the directory documents are read from.
func (s *Source) Dir() string {
	return s.dir
}

// Location returns the path of the dataset's document.
func (s *Source) Location(name domain.DatasetName) string {
	return filepath.Join(s.dir, s.file(name))
}

// Fetch reads and decodes the dataset's document.
func (s *Source) Fetch(ctx context.Context, name domain.DatasetName) (*domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.Location(name))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch /%s: %w", s.file(name), err)
	}
	defer f.Close()

	doc, err := jsondoc.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.file(name), err)
	}
	return doc, nil
}

func (s *Source) file(name domain.DatasetName) string {
	if f, ok := s.files[name]; ok && f != "" {
		return f
	}
	return name.DefaultFile()
}
