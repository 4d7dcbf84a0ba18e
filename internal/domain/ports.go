package domain

import "time"

// SessionRepository defines per-day message log persistence. A day with no
// session is normal: Messages returns an empty slice, never an error for
// absence. SaveMessages is a full replace and is the single mutation point;
// removals and flag toggles go through it.
type SessionRepository interface {
	Messages(day DayKey) ([]ChatMessage, error)
	SaveMessages(day DayKey, msgs []ChatMessage) error
	Clear(day DayKey) error
}

// StatusRepository defines content-status persistence. Absent days read as
// the zero ContentStatus.
type StatusRepository interface {
	Status(day DayKey) (ContentStatus, error)
	SaveStatus(day DayKey, status ContentStatus) error
}

// Responder produces the companion's side of the conversation. It is
// deterministic given its seed: a rule classifier with template pools, not a
// language model.
type Responder interface {
	Reply(text string) string
	OpeningPrompt(at time.Time, mode Mode) string
	ReflectiveSummary(msgs []ChatMessage) string
}

// Notifier is the outbound channel to interested observers. Calls are
// synchronous: all observers run before the mutating call returns. No queue,
// no backpressure.
type Notifier interface {
	SessionChanged(day DayKey)
	EntryStatusChanged(day DayKey)
	SummaryStatusChanged(day DayKey)
}
