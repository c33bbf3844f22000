package csvsource

import (
	"fmt"
	"os"

	"github.com/heartmarshall/hangeul-backend/internal/domain"
)

// FileSource loads vocabulary entries from a CSV file on disk.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource for the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Path returns the file the source reads from.
func (s *FileSource) Path() string {
	return s.path
}

// Load reads and parses the whole file.
func (s *FileSource) Load() ([]domain.RawEntry, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	entries, err := ParseBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return entries, nil
}
