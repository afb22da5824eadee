package cv

import (
	"regexp"
	"strings"
)

const fileNameSuffix = "_CV.pdf"

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	unsafeChars   = regexp.MustCompile(`[^A-Z0-9_]`)
)

// FileName derives a filesystem-safe download name from a display name:
// uppercase, whitespace runs collapsed to a single underscore, anything
// outside [A-Z0-9_] stripped, then the fixed suffix appended.
//
// "Jane  Doé!!" -> "JANE_DO_CV.pdf". A name that sanitizes to nothing
// falls back to the bare "CV.pdf".
func FileName(displayName string) string {
	base := strings.ToUpper(displayName)
	base = whitespaceRun.ReplaceAllString(base, "_")
	base = unsafeChars.ReplaceAllString(base, "")
	if base == "" {
		return "CV.pdf"
	}
	return base + fileNameSuffix
}
