package cv_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"portfolio-api/cv"
	"portfolio-api/models"
)

func mustDate(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

type fakeCompositor struct {
	invocations int
	markup      string
}

func (c *fakeCompositor) Compose(ctx context.Context, markup string) ([]byte, error) {
	c.invocations++
	c.markup = markup
	return []byte("%PDF-1.4 fake"), nil
}

func writeTemplate(t *testing.T, dir, id, source string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, "Cv"+id+".hbs"), []byte(source), 0o644)
	assert.NoError(t, err)
}

func TestGenerateEmptySelectionsStillProducesDocument(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "1", `<h1>{{name}}</h1><p>{{title}}</p><ul>{{#each skills}}<li>x</li>{{/each}}</ul>`)

	f := &fakeStores{profile: &models.User{Name: "Jane Doe", Title: "Engineer"}}
	comp := &fakeCompositor{}
	gen := cv.NewGenerator(f.stores(), cv.NewTemplateStore(dir), comp)

	doc, err := gen.Generate(context.Background(), cv.Request{
		TemplateID: "1",
		SubjectID:  "665f1c0b9d3a2e0001000001",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, doc.Content)
	assert.Equal(t, "JANE_DOE_CV.pdf", doc.FileName)

	// only profile fields rendered, category sections empty
	assert.Equal(t, `<h1>Jane Doe</h1><p>Engineer</p><ul></ul>`, comp.markup)
	assert.Equal(t, 1, comp.invocations)
}

func TestGenerateEmptyTemplateIDFailsValidation(t *testing.T) {
	f := &fakeStores{}
	comp := &fakeCompositor{}
	gen := cv.NewGenerator(f.stores(), cv.NewTemplateStore(t.TempDir()), comp)

	_, err := gen.Generate(context.Background(), cv.Request{TemplateID: "   "})
	assert.ErrorIs(t, err, cv.ErrEmptyTemplateID)
	assert.Equal(t, 0, comp.invocations)
}

func TestGenerateMissingTemplateFailsBeforeCompositor(t *testing.T) {
	f := &fakeStores{}
	comp := &fakeCompositor{}
	gen := cv.NewGenerator(f.stores(), cv.NewTemplateStore(t.TempDir()), comp)

	_, err := gen.Generate(context.Background(), cv.Request{TemplateID: "7"})
	assert.ErrorIs(t, err, cv.ErrTemplateNotFound)
	assert.Equal(t, 0, comp.invocations)
}

func TestGenerateNoSubjectUsesFallbackFileName(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "1", `<p>anonymous</p>`)

	f := &fakeStores{}
	gen := cv.NewGenerator(f.stores(), cv.NewTemplateStore(dir), &fakeCompositor{})

	doc, err := gen.Generate(context.Background(), cv.Request{TemplateID: "1"})
	assert.NoError(t, err)
	assert.Equal(t, "CV.pdf", doc.FileName)
}

func TestGenerateFullSelection(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "2",
		`{{name}}|{{#each education}}{{title}}={{period}};{{/each}}|{{#each projects}}{{name}};{{/each}}`)

	f := &fakeStores{
		profile: &models.User{Name: "Jane Doe"},
		education: []models.Education{
			{Title: "MSc", StartDate: mustDate("2021-01-15")},
		},
		projects: []models.Project{
			{Title: "beta"},
			{Title: "alpha", Highlight: true},
		},
	}
	comp := &fakeCompositor{}
	gen := cv.NewGenerator(f.stores(), cv.NewTemplateStore(dir), comp)

	doc, err := gen.Generate(context.Background(), cv.Request{
		TemplateID:   "2",
		SubjectID:    "665f1c0b9d3a2e0001000001",
		EducationIDs: []string{"e1"},
		ProjectIDs:   []string{"p1", "p2"},
	})
	assert.NoError(t, err)
	assert.Equal(t, "Jane Doe|MSc=January 2021 - Present;|alpha;beta;", comp.markup)
	assert.Equal(t, "JANE_DOE_CV.pdf", doc.FileName)
}
