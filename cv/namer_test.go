package cv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolio-api/cv"
)

func TestFileName(t *testing.T) {
	cases := []struct {
		name     string
		expected string
	}{
		{"Jane  Doé!!", "JANE_DO_CV.pdf"},
		{"John Smith", "JOHN_SMITH_CV.pdf"},
		{"ana maria lopez", "ANA_MARIA_LOPEZ_CV.pdf"},
		{"x", "X_CV.pdf"},
		{"dev-42", "DEV42_CV.pdf"},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, cv.FileName(c.name), "input %q", c.name)
	}
}

func TestFileNameCollapsesWhitespaceRuns(t *testing.T) {
	assert.Equal(t, "A_B_C_CV.pdf", cv.FileName("a \t b\n\nc"))
}

func TestFileNameEmptyFallsBackToBareCV(t *testing.T) {
	assert.Equal(t, "CV.pdf", cv.FileName(""))
	assert.Equal(t, "CV.pdf", cv.FileName("¡¡¡"))
}
