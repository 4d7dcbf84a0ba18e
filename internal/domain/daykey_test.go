package domain_test

import (
	"testing"
	"time"

	"github.com/avelarde/daybook/internal/domain"
)

func TestDayKeySameDay(t *testing.T) {
	morning := time.Date(2025, 3, 14, 8, 12, 0, 0, time.UTC)
	night := time.Date(2025, 3, 14, 23, 59, 59, 0, time.UTC)

	if domain.DayKeyOf(morning) != domain.DayKeyOf(night) {
		t.Fatalf("expected same key for same calendar day, got %s and %s",
			domain.DayKeyOf(morning), domain.DayKeyOf(night))
	}

	nextDay := time.Date(2025, 3, 15, 0, 0, 1, 0, time.UTC)
	if domain.DayKeyOf(morning) == domain.DayKeyOf(nextDay) {
		t.Fatalf("expected different keys across midnight")
	}
}

func TestDayKeyReferenceZone(t *testing.T) {
	// 23:30 UTC on the 14th is already the 15th in UTC+2; the key must
	// follow the reference zone, not the timestamp's own zone.
	athens := time.FixedZone("UTC+2", 2*60*60)
	late := time.Date(2025, 3, 14, 23, 30, 0, 0, time.UTC)

	if got := domain.DayKeyAt(late, athens); got != "2025-03-15" {
		t.Fatalf("expected 2025-03-15 in UTC+2, got %s", got)
	}
	if got := domain.DayKeyOf(late); got != "2025-03-14" {
		t.Fatalf("expected 2025-03-14 in UTC, got %s", got)
	}
}

func TestParseDayKey(t *testing.T) {
	k, err := domain.ParseDayKey("2025-03-14")
	if err != nil {
		t.Fatalf("ParseDayKey failed: %v", err)
	}
	if k.String() != "2025-03-14" {
		t.Fatalf("unexpected key %s", k)
	}

	if _, err := domain.ParseDayKey("14/03/2025"); err == nil {
		t.Fatalf("expected error for malformed day")
	}
}

func TestDayKeyTimeRoundTrip(t *testing.T) {
	ts := time.Date(2025, 7, 1, 15, 4, 5, 0, time.UTC)
	k := domain.DayKeyOf(ts)

	midnight := k.Time(time.UTC)
	if midnight.Hour() != 0 || midnight.Day() != 1 || midnight.Month() != 7 {
		t.Fatalf("expected midnight of the same day, got %v", midnight)
	}
	if domain.DayKeyOf(midnight) != k {
		t.Fatalf("round trip changed the key")
	}
}
