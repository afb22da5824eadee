package cv

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTemplateID is returned when the request carries no template id.
	ErrEmptyTemplateID = errors.New("templateId is required")

	// ErrTemplateNotFound is returned when no template matches the requested id.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrProfileNotFound is returned when a subject id is supplied but no
	// matching user exists.
	ErrProfileNotFound = errors.New("profile not found")
)

// RenderError wraps a failure from template compilation, template binding or
// the headless rendering environment.
type RenderError struct {
	Stage string // "compile", "render" or "compose"
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("cv %s: %v", e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
