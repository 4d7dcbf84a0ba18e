package responder

import (
	"strings"
	"testing"
	"time"

	"github.com/avelarde/daybook/internal/domain"
)

func contains(pool []string, s string) bool {
	for _, p := range pool {
		if p == s {
			return true
		}
	}
	return false
}

func TestReplyIsDeterministicForASeed(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 10; i++ {
		ra, rb := a.Reply("long meeting at work"), b.Reply("long meeting at work")
		if ra != rb {
			t.Fatalf("same seed diverged at turn %d: %q vs %q", i, ra, rb)
		}
		if !contains(replyTemplates[CategoryWork], ra) {
			t.Fatalf("reply %q is not from the work pool", ra)
		}
	}
}

func TestOpeningPromptBuckets(t *testing.T) {
	e := New(1)

	morning := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 20; i++ {
		p := e.OpeningPrompt(morning, domain.ModeChat)
		if !contains(morningPrompts, p) {
			t.Fatalf("hour 8 must draw from the morning pool, got %q", p)
		}
		if contains(eveningPrompts, p) {
			t.Fatalf("hour 8 drew from the evening pool: %q", p)
		}
	}

	night := time.Date(2025, 3, 14, 2, 0, 0, 0, time.UTC)
	if p := e.OpeningPrompt(night, domain.ModeChat); !contains(nightPrompts, p) {
		t.Fatalf("hour 2 must draw from the night pool, got %q", p)
	}
}

func TestOpeningPromptLogModeIsFixed(t *testing.T) {
	e := New(1)
	at := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)
	if got := e.OpeningPrompt(at, domain.ModeLog); got != logModeOpening {
		t.Fatalf("log mode opening should be the fixed instruction, got %q", got)
	}
}

func TestReflectiveSummaryBalancedDay(t *testing.T) {
	e := New(7)
	msgs := []domain.ChatMessage{
		{IsUser: true, Text: "Went for a hike before breakfast"},
		{IsUser: false, Text: "Nice, you got moving."},
		{IsUser: true, Text: "Then a long day at work"},
	}

	got := e.ReflectiveSummary(msgs)
	if !strings.Contains(got, "work") || !strings.Contains(got, "moving your body") {
		t.Fatalf("expected a balanced-day summary naming both topics, got %q", got)
	}
}

func TestReflectiveSummaryIgnoresCompanionText(t *testing.T) {
	e := New(7)
	// Only the companion mentions activities; the user text is plain.
	msgs := []domain.ChatMessage{
		{IsUser: false, Text: "Did work or a hike feature today?"},
		{IsUser: true, Text: "Nothing much happened"},
	}

	got := e.ReflectiveSummary(msgs)
	if !contains(genericReflections, got) {
		t.Fatalf("expected a generic reflection, got %q", got)
	}
}

func TestReflectiveSummaryEmptySession(t *testing.T) {
	e := New(7)
	if got := e.ReflectiveSummary(nil); !contains(genericReflections, got) {
		t.Fatalf("empty session should fall back to a generic reflection, got %q", got)
	}
}
