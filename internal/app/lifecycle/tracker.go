package lifecycle

import (
	"context"
	"time"

	"github.com/avelarde/daybook/internal/domain"
	"github.com/avelarde/daybook/internal/observability"
)

// Tracker owns the per-day content status: which derived artifacts exist and
// whether the entry has gone stale. Staleness compares the raw user-message
// count against the snapshot taken at entry generation; the ignore flag has
// no effect on it.
type Tracker struct {
	sessions domain.SessionRepository
	statuses domain.StatusRepository
	notifier domain.Notifier
	now      func() time.Time
}

func NewTracker(
	sessions domain.SessionRepository,
	statuses domain.StatusRepository,
	notifier domain.Notifier,
) *Tracker {
	if notifier == nil {
		notifier = NewFanOut()
	}
	return &Tracker{
		sessions: sessions,
		statuses: statuses,
		notifier: notifier,
		now:      time.Now,
	}
}

func (t *Tracker) Status(day domain.DayKey) (domain.ContentStatus, error) {
	return t.statuses.Status(day)
}

func (t *Tracker) HasEntry(day domain.DayKey) (bool, error) {
	st, err := t.statuses.Status(day)
	return st.HasEntry, err
}

func (t *Tracker) SetHasEntry(day domain.DayKey, has bool) error {
	st, err := t.statuses.Status(day)
	if err != nil {
		return err
	}
	st.HasEntry = has
	if err := t.statuses.SaveStatus(day, st); err != nil {
		return err
	}
	t.notifier.EntryStatusChanged(day)
	return nil
}

func (t *Tracker) HasSummary(day domain.DayKey) (bool, error) {
	st, err := t.statuses.Status(day)
	return st.HasSummary, err
}

func (t *Tracker) SetHasSummary(day domain.DayKey, has bool) error {
	st, err := t.statuses.Status(day)
	if err != nil {
		return err
	}
	st.HasSummary = has
	if err := t.statuses.SaveStatus(day, st); err != nil {
		return err
	}
	t.notifier.SummaryStatusChanged(day)
	return nil
}

func (t *Tracker) EntryMessageCount(day domain.DayKey) (int, error) {
	st, err := t.statuses.Status(day)
	return st.EntryMessageCount, err
}

func (t *Tracker) SetEntryMessageCount(day domain.DayKey, n int) error {
	st, err := t.statuses.Status(day)
	if err != nil {
		return err
	}
	st.EntryMessageCount = n
	if err := t.statuses.SaveStatus(day, st); err != nil {
		return err
	}
	t.notifier.EntryStatusChanged(day)
	return nil
}

func (t *Tracker) EntryUpdatedAt(day domain.DayKey) (*time.Time, error) {
	st, err := t.statuses.Status(day)
	return st.EntryUpdatedAt, err
}

func (t *Tracker) SetEntryUpdatedAt(day domain.DayKey, at time.Time) error {
	st, err := t.statuses.Status(day)
	if err != nil {
		return err
	}
	st.EntryUpdatedAt = &at
	if err := t.statuses.SaveStatus(day, st); err != nil {
		return err
	}
	t.notifier.EntryStatusChanged(day)
	return nil
}

// HasNewMessagesSinceEntry is the staleness predicate: true iff more raw
// user messages exist than were snapshotted at entry generation. Ignored
// messages count on purpose.
func (t *Tracker) HasNewMessagesSinceEntry(day domain.DayKey) (bool, error) {
	msgs, err := t.sessions.Messages(day)
	if err != nil {
		return false, err
	}
	st, err := t.statuses.Status(day)
	if err != nil {
		return false, err
	}
	return domain.UserMessageCount(msgs) > st.EntryMessageCount, nil
}

// EntryAction derives the affordance to offer for a day. It is a pure
// function of the status and the current user-message count.
func (t *Tracker) EntryAction(day domain.DayKey) (domain.EntryAction, error) {
	st, err := t.statuses.Status(day)
	if err != nil {
		return "", err
	}
	if !st.HasEntry {
		return domain.ActionGenerateEntry, nil
	}

	stale, err := t.HasNewMessagesSinceEntry(day)
	if err != nil {
		return "", err
	}
	if stale {
		return domain.ActionUpdateEntry, nil
	}
	return domain.ActionViewEntry, nil
}

// GenerateOrUpdateEntry concludes both the "generate" and "update" actions:
// it marks the entry present and re-snapshots the current user-message count
// so the day reads fresh again.
func (t *Tracker) GenerateOrUpdateEntry(ctx context.Context, day domain.DayKey) error {
	log := observability.LoggerFromContext(ctx).With("day", day.String())

	msgs, err := t.sessions.Messages(day)
	if err != nil {
		log.Error("failed to load session for entry", "error", err)
		return err
	}

	st, err := t.statuses.Status(day)
	if err != nil {
		return err
	}

	now := t.now()
	st.HasEntry = true
	st.EntryMessageCount = domain.UserMessageCount(msgs)
	st.EntryUpdatedAt = &now

	if err := t.statuses.SaveStatus(day, st); err != nil {
		log.Error("failed to save entry status", "error", err)
		return err
	}

	log.Info("entry snapshot taken", "user_messages", st.EntryMessageCount)
	t.notifier.EntryStatusChanged(day)
	return nil
}
