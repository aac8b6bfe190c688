package models

import "time"

// DateLayout is the wire format for calendar dates
const DateLayout = "2006-01-02"

// DateOnly truncates t to midnight UTC of its calendar day.
// Every date column is stored in this form so range filters compare consistently.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date
func Today() time.Time {
	return DateOnly(time.Now())
}

// ParseDate parses a YYYY-MM-DD string
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOnly(t), nil
}

// FormatDate renders a date as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DateWindow is an optional inclusive date range
type DateWindow struct {
	From *time.Time
	To   *time.Time
}

// Contains reports whether t falls inside the window
func (w DateWindow) Contains(t time.Time) bool {
	day := DateOnly(t)
	if w.From != nil && day.Before(DateOnly(*w.From)) {
		return false
	}
	if w.To != nil && day.After(DateOnly(*w.To)) {
		return false
	}
	return true
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatDate(*t)
	return &s
}
