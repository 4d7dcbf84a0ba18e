package responder

import "strings"

// Category is a keyword-matched topic bucket. Classification walks the
// buckets in a fixed priority order and the first match wins.
type Category string

const (
	CategoryStress   Category = "stress"
	CategoryDream    Category = "dream"
	CategoryFullDay  Category = "full_day" // two or more activity topics in one message
	CategoryWork     Category = "work"
	CategorySocial   Category = "social"
	CategoryExercise Category = "exercise"
	CategoryBusyDay  Category = "busy_day" // long, conjunction-heavy message
	CategoryDefault  Category = "default"
)

// rule pairs a category with its trigger keywords. The slice order IS the
// priority: reordering it changes classification, no control flow involved.
type rule struct {
	category Category
	keywords []string
}

var priorityRules = []rule{
	{CategoryStress, stressKeywords},
	{CategoryDream, dreamKeywords},
}

var stressKeywords = []string{
	"stress", "stressed", "anxious", "anxiety", "overwhelmed",
	"frustrated", "frustrating", "exhausted", "burned out", "worried",
	"can't cope", "too much",
}

var dreamKeywords = []string{
	"dream", "dreamt", "dreamed", "nightmare", "woke up", "couldn't sleep",
	"insomnia",
}

// Activity categories are checked together first (two or more in one message
// reads as a full day) and then individually, in this order.
var activityRules = []rule{
	{CategoryWork, []string{
		"work", "meeting", "meetings", "project", "deadline", "office",
		"boss", "colleague", "shift",
	}},
	{CategorySocial, []string{
		"friend", "friends", "dinner", "lunch with", "party", "family",
		"coffee with", "hung out", "hang out", "visited",
	}},
	// "workout" is deliberately absent: it contains "work" and would read
	// as two activities under substring matching.
	{CategoryExercise, []string{
		"gym", "run", "running", "jog", "hike", "hiked",
		"walk", "walked", "yoga", "swim", "cycling", "exercise",
	}},
}

func matchesAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// activitiesIn returns the activity categories mentioned in text, in
// priority order.
func activitiesIn(text string) []Category {
	var out []Category
	for _, r := range activityRules {
		if matchesAny(text, r.keywords) {
			out = append(out, r.category)
		}
	}
	return out
}

// looksBusy is the fallback heuristic for long, conjunction-heavy messages
// that never name a known topic.
func looksBusy(text string) bool {
	if strings.Count(text, " and ") >= 2 {
		return true
	}
	return len(strings.Fields(text)) >= 24
}

// Classify maps one message to a category. It is total: empty or unmatched
// text lands on CategoryDefault.
func Classify(text string) Category {
	t := strings.ToLower(text)

	for _, r := range priorityRules {
		if matchesAny(t, r.keywords) {
			return r.category
		}
	}

	acts := activitiesIn(t)
	if len(acts) >= 2 {
		return CategoryFullDay
	}
	if len(acts) == 1 {
		return acts[0]
	}

	if looksBusy(t) {
		return CategoryBusyDay
	}
	return CategoryDefault
}
