package domain

import (
	"fmt"
	"time"
)

// dayKeyLayout is the canonical string form of a DayKey, used for storage
// keys and URLs.
const dayKeyLayout = "2006-01-02"

// DayKey identifies one calendar day. It is the sole lookup key for both
// sessions and content statuses. Keys are only built through DayKeyAt /
// DayKeyOf so the format can never drift.
type DayKey string

// DayKeyAt truncates t to calendar-day granularity in loc.
// Two timestamps on the same calendar day produce the same key.
func DayKeyAt(t time.Time, loc *time.Location) DayKey {
	if loc == nil {
		loc = time.UTC
	}
	return DayKey(t.In(loc).Format(dayKeyLayout))
}

// DayKeyOf is DayKeyAt in UTC, the default reference zone.
func DayKeyOf(t time.Time) DayKey {
	return DayKeyAt(t, time.UTC)
}

// ParseDayKey validates an externally supplied day string (e.g. from a URL).
// Unlike derivation from a timestamp, parsing can fail.
func ParseDayKey(s string) (DayKey, error) {
	if _, err := time.Parse(dayKeyLayout, s); err != nil {
		return "", fmt.Errorf("invalid day %q: %w", s, err)
	}
	return DayKey(s), nil
}

// Time returns midnight of the day in loc.
func (k DayKey) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	t, _ := time.ParseInLocation(dayKeyLayout, string(k), loc)
	return t
}

func (k DayKey) String() string {
	return string(k)
}
