package cv

import (
	"context"
	"strings"
)

// Generator runs the whole pipeline: aggregate the selected records,
// render the template, print the markup to PDF and derive the file name.
// It is stateless between requests; nothing it produces outlives a call.
type Generator struct {
	aggregator *Aggregator
	templates  *TemplateStore
	renderer   *Renderer
	compositor Compositor
}

func NewGenerator(stores Stores, templates *TemplateStore, compositor Compositor) *Generator {
	return &Generator{
		aggregator: NewAggregator(stores),
		templates:  templates,
		renderer:   NewRenderer(),
		compositor: compositor,
	}
}

// Generate produces the CV document for the request. Template lookup and
// aggregation both complete before the rendering environment is acquired,
// so a NotFound never costs a browser launch. No step is retried.
func (g *Generator) Generate(ctx context.Context, req Request) (*Document, error) {
	if strings.TrimSpace(req.TemplateID) == "" {
		return nil, ErrEmptyTemplateID
	}

	model, err := g.aggregator.Aggregate(ctx, req)
	if err != nil {
		return nil, err
	}

	source, err := g.templates.Find(req.TemplateID)
	if err != nil {
		return nil, err
	}

	markup, err := g.renderer.Render(source, model)
	if err != nil {
		return nil, err
	}

	content, err := g.compositor.Compose(ctx, markup)
	if err != nil {
		return nil, err
	}

	return &Document{
		Content:  content,
		FileName: FileName(model.Profile.Name),
	}, nil
}
