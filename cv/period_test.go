package cv_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"portfolio-api/cv"
)

func TestPeriodOngoing(t *testing.T) {
	assert.Equal(t, "January 2021 - Present", cv.Period("2021-01-15", nil))
}

func TestPeriodClosedRange(t *testing.T) {
	assert.Equal(t, "January 2021 - June 2024", cv.Period("2021-01-15", "2024-06-30"))
}

func TestPeriodUnparsableStart(t *testing.T) {
	assert.Equal(t, "", cv.Period("not-a-date", "2024-06-30"))
	assert.Equal(t, "", cv.Period("", nil))
	assert.Equal(t, "", cv.Period(nil, nil))
}

func TestPeriodUnparsableEndFallsBackToPresent(t *testing.T) {
	assert.Equal(t, "January 2021 - Present", cv.Period("2021-01-15", "soon"))
}

func TestPeriodAcceptsTimeValues(t *testing.T) {
	start := time.Date(2021, time.January, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "January 2021 - June 2024", cv.Period(start, &end))
	assert.Equal(t, "January 2021 - Present", cv.Period(start, (*time.Time)(nil)))
	assert.Equal(t, "", cv.Period(time.Time{}, &end))
}

func TestPeriodAcceptsRFC3339(t *testing.T) {
	assert.Equal(t, "January 2021 - Present", cv.Period("2021-01-15T09:30:00Z", nil))
}
