package cv_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolio-api/cv"
)

func TestTemplateStoreFind(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "Cv1.hbs"), []byte("<h1>{{name}}</h1>"), 0o644)
	assert.NoError(t, err)

	store := cv.NewTemplateStore(dir)
	source, err := store.Find("1")
	assert.NoError(t, err)
	assert.Equal(t, "<h1>{{name}}</h1>", source)
}

func TestTemplateStoreFindMissing(t *testing.T) {
	store := cv.NewTemplateStore(t.TempDir())

	_, err := store.Find("99")
	assert.ErrorIs(t, err, cv.ErrTemplateNotFound)
	assert.ErrorContains(t, err, "99")
}
