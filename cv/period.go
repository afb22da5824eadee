package cv

import "time"

const monthYearLayout = "January 2006"

var periodDateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// Period renders a date range as "January 2021 - June 2024". A missing or
// unparsable end yields "January 2021 - Present"; a missing or unparsable
// start yields "". This is a presentation helper, not a validator, so bad
// input degrades silently.
//
// Accepts time.Time, *time.Time and date strings (RFC3339 or 2006-01-02),
// so it serves both record shaping and the template helper.
func Period(start, end any) string {
	s, ok := toTime(start)
	if !ok {
		return ""
	}

	initial := s.Format(monthYearLayout)

	e, ok := toTime(end)
	if !ok {
		return initial + " - Present"
	}
	return initial + " - " + e.Format(monthYearLayout)
}

func toTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, !t.IsZero()
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return *t, !t.IsZero()
	case string:
		for _, layout := range periodDateLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, !parsed.IsZero()
			}
		}
	}
	return time.Time{}, false
}
