// Package responder simulates the companion's side of the conversation with
// a deterministic rule classifier and randomized template pools. It never
// calls a language model and never fails on any text input.
package responder

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/avelarde/daybook/internal/domain"
)

// Engine implements domain.Responder. The random source is injected through
// the seed so tests can pin template selection.
type Engine struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New builds an Engine. A zero seed falls back to the clock.
func New(seed int64) *Engine {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Engine{rng: rand.New(rand.NewSource(seed))}
}

func (e *Engine) pick(pool []string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return pool[e.rng.Intn(len(pool))]
}

// Reply classifies one user message and selects a template from the winning
// category's pool.
func (e *Engine) Reply(text string) string {
	return e.pick(replyTemplates[Classify(text)])
}

// OpeningPrompt composes the first message of a session. Chat mode gets a
// time-of-day greeting; log mode gets a fixed instruction.
func (e *Engine) OpeningPrompt(at time.Time, mode domain.Mode) string {
	if mode == domain.ModeLog {
		return logModeOpening
	}

	switch h := at.Hour(); {
	case h >= 6 && h < 11:
		return e.pick(morningPrompts)
	case h >= 11 && h < 17:
		return e.pick(afternoonPrompts)
	case h >= 17:
		return e.pick(eveningPrompts)
	default:
		return e.pick(nightPrompts)
	}
}

// ReflectiveSummary scores the whole session's user text, not just the last
// message. Two or more activity topics read as a balanced day; otherwise it
// falls back to stress, dream, or a generic closing line.
func (e *Engine) ReflectiveSummary(msgs []domain.ChatMessage) string {
	var b strings.Builder
	for _, m := range msgs {
		if m.IsUser {
			b.WriteString(m.Text)
			b.WriteString(" ")
		}
	}
	joined := strings.ToLower(b.String())

	if acts := activitiesIn(joined); len(acts) >= 2 {
		tpl := e.pick(balancedDayTemplates)
		return fmt.Sprintf(tpl, activityLabels[acts[0]], activityLabels[acts[1]])
	}
	if matchesAny(joined, stressKeywords) {
		return e.pick(stressReflections)
	}
	if matchesAny(joined, dreamKeywords) {
		return e.pick(dreamReflections)
	}
	return e.pick(genericReflections)
}
