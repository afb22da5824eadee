package cv

import (
	"github.com/aymerick/raymond"
)

// Renderer compiles a Handlebars template and binds a RenderModel into it.
// Helpers are held per renderer instance and registered on each compiled
// template, so no process-wide helper registration ever happens.
type Renderer struct {
	helpers map[string]interface{}
}

func NewRenderer() *Renderer {
	return &Renderer{
		helpers: map[string]interface{}{
			// {{period startDate endDate}} defers period formatting to
			// render time with the same semantics as record shaping.
			"period": func(start, end interface{}) string {
				return Period(start, end)
			},
		},
	}
}

// Render compiles the source once for this invocation and executes it
// against the model context.
func (r *Renderer) Render(source string, model *RenderModel) (string, error) {
	tpl, err := raymond.Parse(source)
	if err != nil {
		return "", &RenderError{Stage: "compile", Err: err}
	}
	tpl.RegisterHelpers(r.helpers)

	out, err := tpl.Exec(model.Context())
	if err != nil {
		return "", &RenderError{Stage: "render", Err: err}
	}
	return out, nil
}
