package cv

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// TemplateStore resolves template ids to Handlebars sources on disk.
// Template id "1" maps to "Cv1.hbs" under the configured directory.
type TemplateStore struct {
	dir string
}

func NewTemplateStore(dir string) *TemplateStore {
	return &TemplateStore{dir: dir}
}

// Find returns the template source for the given id, or ErrTemplateNotFound
// (wrapped with the id) when no such template exists.
func (s *TemplateStore) Find(id string) (string, error) {
	path := filepath.Join(s.dir, fmt.Sprintf("Cv%s.hbs", id))
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, id)
		}
		return "", fmt.Errorf("read template %s: %w", id, err)
	}
	return string(data), nil
}
