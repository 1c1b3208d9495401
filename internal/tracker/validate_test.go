package tracker

import (
	"errors"
	"strings"
	"testing"
	"time"
)

var testNow = time.Date(2024, time.March, 5, 12, 30, 0, 0, time.UTC)

func TestValidateDescription(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr error
	}{
		{name: "valid", value: "morning run", want: "morning run"},
		{name: "empty", value: "", wantErr: ErrDescriptionRequired},
		{name: "exactly at limit", value: strings.Repeat("a", 20), want: strings.Repeat("a", 20)},
		{name: "over limit", value: strings.Repeat("a", 21), wantErr: ErrDescriptionTooLong},
		{name: "multibyte counted as characters", value: strings.Repeat("é", 19), want: strings.Repeat("é", 19)},
		{name: "multibyte at limit", value: strings.Repeat("雪", 20), want: strings.Repeat("雪", 20)},
		{name: "multibyte over limit", value: strings.Repeat("é", 21), wantErr: ErrDescriptionTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateDescription(tt.value)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateDescription(%q) error = %v, want %v", tt.value, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ValidateDescription(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestValidateNumber(t *testing.T) {
	tests := []struct {
		value  string
		want   int
		wantOK bool
	}{
		{value: "60", want: 60, wantOK: true},
		{value: "0", want: 0, wantOK: true},
		{value: "7.5", want: 7, wantOK: true},
		{value: "-3", want: -3, wantOK: true},
		{value: "", wantOK: false},
		{value: "abc", wantOK: false},
		{value: "12min", wantOK: false},
	}

	for _, tt := range tests {
		got, ok := ValidateNumber(tt.value)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ValidateNumber(%q) = (%d, %v), want (%d, %v)", tt.value, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestValidateDuration(t *testing.T) {
	if _, err := ValidateDuration("abc"); !errors.Is(err, ErrDurationNaN) {
		t.Errorf("ValidateDuration(abc) error = %v, want %v", err, ErrDurationNaN)
	}
	n, err := ValidateDuration("45")
	if err != nil || n != 45 {
		t.Errorf("ValidateDuration(45) = (%d, %v), want (45, nil)", n, err)
	}
}

func TestValidateExerciseDate(t *testing.T) {
	today := testNow.Format(DateLayout)
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "absent defaults to today", value: "", want: today},
		{name: "valid date", value: "2024-01-15", want: "Mon Jan 15 2024"},
		{name: "date inside longer string", value: "2024-01-15T10:00:00Z", want: "Mon Jan 15 2024"},
		{name: "garbage falls back to today", value: "not-a-date", want: today},
		{name: "impossible date falls back to today", value: "2024-13-45", want: today},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateExerciseDate(tt.value, testNow); got != tt.want {
				t.Errorf("ValidateExerciseDate(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestValidateQueryDate(t *testing.T) {
	if got := ValidateQueryDate(""); got != nil {
		t.Errorf("ValidateQueryDate(empty) = %v, want nil", got)
	}
	if got := ValidateQueryDate("soon"); got != nil {
		t.Errorf("ValidateQueryDate(soon) = %v, want nil", got)
	}
	got := ValidateQueryDate("2024-01-10")
	want := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	if got == nil || !got.Equal(want) {
		t.Errorf("ValidateQueryDate(2024-01-10) = %v, want %v", got, want)
	}
}

func TestValidateExerciseFields(t *testing.T) {
	ex, err := ValidateExerciseFields("run", "30", "2024-01-15", testNow)
	if err != nil {
		t.Fatalf("ValidateExerciseFields: %v", err)
	}
	if ex.Description != "run" || ex.Duration != 30 || ex.Date != "Mon Jan 15 2024" {
		t.Errorf("unexpected exercise: %+v", ex)
	}

	if _, err := ValidateExerciseFields("", "30", "", testNow); !errors.Is(err, ErrDescriptionRequired) {
		t.Errorf("missing description error = %v, want %v", err, ErrDescriptionRequired)
	}
	if _, err := ValidateExerciseFields("run", "fast", "", testNow); !errors.Is(err, ErrDurationNaN) {
		t.Errorf("bad duration error = %v, want %v", err, ErrDurationNaN)
	}
}

func TestValidateQuery(t *testing.T) {
	tests := []struct {
		name             string
		from, to, limit  string
		wantFrom, wantTo bool
		wantLimit        int
	}{
		{name: "all absent", wantLimit: 0},
		{name: "full filter", from: "2024-01-10", to: "2024-01-31", limit: "5", wantFrom: true, wantTo: true, wantLimit: 5},
		{name: "invalid limit means unlimited", limit: "many", wantLimit: 0},
		{name: "negative limit means unlimited", limit: "-2", wantLimit: 0},
		{name: "bad dates mean unbounded", from: "yesterday", to: "tomorrow", wantLimit: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ValidateQuery(tt.from, tt.to, tt.limit)
			if (f.From != nil) != tt.wantFrom {
				t.Errorf("From = %v, want set=%v", f.From, tt.wantFrom)
			}
			if (f.To != nil) != tt.wantTo {
				t.Errorf("To = %v, want set=%v", f.To, tt.wantTo)
			}
			if f.Limit != tt.wantLimit {
				t.Errorf("Limit = %d, want %d", f.Limit, tt.wantLimit)
			}
		})
	}
}
