package tracker

import (
	"regexp"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/fitstack/exercise-tracker/internal/models"
)

// MaxDescriptionLen caps the description field of an exercise.
const MaxDescriptionLen = 20

// DateLayout is how dates are stored and returned, e.g. "Mon Jan 15 2024".
const DateLayout = "Mon Jan 02 2006"

var dateRe = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// QueryFilter holds the normalized log query parameters. A nil bound means
// unbounded; a zero limit means unlimited.
type QueryFilter struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

// ValidateDescription rejects empty or over-long descriptions.
func ValidateDescription(value string) (string, error) {
	if value == "" {
		return "", ErrDescriptionRequired
	}
	if utf8.RuneCountInString(value) > MaxDescriptionLen {
		return "", ErrDescriptionTooLong
	}
	return value, nil
}

// ValidateNumber coerces a raw value to an integer. The second return is
// false if the value is absent or not numeric. Decimal input is accepted and
// truncated, matching the source's loose numeric coercion.
func ValidateNumber(value string) (int, bool) {
	if value == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(value); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}

// ValidateDuration requires a numeric duration.
func ValidateDuration(value string) (int, error) {
	n, ok := ValidateNumber(value)
	if !ok {
		return 0, ErrDurationNaN
	}
	return n, nil
}

// ValidateExerciseDate normalizes the optional exercise date. An absent or
// unparseable value silently becomes today; this leniency is deliberate and
// load-bearing for existing clients.
func ValidateExerciseDate(value string, now time.Time) string {
	m := dateRe.FindString(value)
	if m == "" {
		return now.Format(DateLayout)
	}
	d, err := time.Parse("2006-01-02", m)
	if err != nil {
		return now.Format(DateLayout)
	}
	return d.Format(DateLayout)
}

// ValidateQueryDate parses a from/to query bound. Absent or unparseable
// means no bound.
func ValidateQueryDate(value string) *time.Time {
	m := dateRe.FindString(value)
	if m == "" {
		return nil
	}
	d, err := time.Parse("2006-01-02", m)
	if err != nil {
		return nil
	}
	return &d
}

// ValidateExerciseFields composes the field validators for the add-exercise
// body and returns the normalized exercise, without touching any I/O.
func ValidateExerciseFields(description, duration, date string, now time.Time) (models.Exercise, error) {
	desc, err := ValidateDescription(description)
	if err != nil {
		return models.Exercise{}, err
	}
	dur, err := ValidateDuration(duration)
	if err != nil {
		return models.Exercise{}, err
	}
	return models.Exercise{
		Description: desc,
		Duration:    dur,
		Date:        ValidateExerciseDate(date, now),
	}, nil
}

// ValidateQuery normalizes the from/to/limit query parameters. An absent,
// invalid, or negative limit means unlimited.
func ValidateQuery(from, to, limit string) QueryFilter {
	lim, ok := ValidateNumber(limit)
	if !ok || lim < 0 {
		lim = 0
	}
	return QueryFilter{
		From:  ValidateQueryDate(from),
		To:    ValidateQueryDate(to),
		Limit: lim,
	}
}
