package responder_test

import (
	"testing"

	"github.com/avelarde/daybook/internal/app/responder"
)

func TestClassifyPriorityOrder(t *testing.T) {
	// Stress is checked before dream, dream before activities.
	got := responder.Classify("I was so stressed after that nightmare")
	if got != responder.CategoryStress {
		t.Fatalf("expected stress to win over dream, got %s", got)
	}

	got = responder.Classify("Had a nightmare about a work deadline")
	if got != responder.CategoryDream {
		t.Fatalf("expected dream to win over work, got %s", got)
	}
}

func TestClassifySingleActivities(t *testing.T) {
	cases := map[string]responder.Category{
		"Long meeting about the project": responder.CategoryWork,
		"Dinner with my family":          responder.CategorySocial,
		"Went for a hike this evening":   responder.CategoryExercise,
	}
	for text, want := range cases {
		if got := responder.Classify(text); got != want {
			t.Fatalf("Classify(%q) = %s, want %s", text, got, want)
		}
	}
}

func TestClassifyMultipleActivitiesBeatSingles(t *testing.T) {
	got := responder.Classify("Got through work early and then hiked up the ridge")
	if got != responder.CategoryFullDay {
		t.Fatalf("expected full_day for two activity topics, got %s", got)
	}
}

func TestClassifyBusyHeuristic(t *testing.T) {
	got := responder.Classify("Cleaned the flat and cooked soup and sorted all the papers")
	if got != responder.CategoryBusyDay {
		t.Fatalf("expected busy_day for conjunction-heavy text, got %s", got)
	}
}

func TestClassifyDefaultFallback(t *testing.T) {
	if got := responder.Classify(""); got != responder.CategoryDefault {
		t.Fatalf("empty text should classify as default, got %s", got)
	}
	if got := responder.Classify("hello"); got != responder.CategoryDefault {
		t.Fatalf("unmatched text should classify as default, got %s", got)
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	if got := responder.Classify("SO OVERWHELMED today"); got != responder.CategoryStress {
		t.Fatalf("expected stress regardless of case, got %s", got)
	}
}
