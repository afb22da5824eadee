package cv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolio-api/cv"
)

func TestRendererBindsProfileAndCategories(t *testing.T) {
	source := `<h1>{{name}}</h1><ul>{{#each skills}}<li>{{category}}:{{#each items}} {{name}}({{level}}){{/each}}</li>{{/each}}</ul>`
	model := &cv.RenderModel{
		Profile: cv.Profile{Name: "Jane Doe"},
		Skills: []cv.SkillGroup{
			{Category: "Backend", Items: []cv.SkillItem{{Name: "Go", Level: 5}}},
		},
	}

	out, err := cv.NewRenderer().Render(source, model)
	assert.NoError(t, err)
	assert.Equal(t, `<h1>Jane Doe</h1><ul><li>Backend: Go(5)</li></ul>`, out)
}

func TestRendererPeriodHelper(t *testing.T) {
	source := `{{period "2021-01-15" "2024-06-30"}}|{{period "2021-01-15" ""}}`
	out, err := cv.NewRenderer().Render(source, &cv.RenderModel{})
	assert.NoError(t, err)
	assert.Equal(t, "January 2021 - June 2024|January 2021 - Present", out)
}

func TestRendererCompileErrorIsRenderError(t *testing.T) {
	_, err := cv.NewRenderer().Render(`{{#each skills}}unterminated`, &cv.RenderModel{})
	assert.Error(t, err)

	var renderErr *cv.RenderError
	assert.ErrorAs(t, err, &renderErr)
	assert.Equal(t, "compile", renderErr.Stage)
}
