// Package lifecycle implements the daily content lifecycle: per-day chat
// sessions, chat/log mode gating, entry and summary staleness tracking, and
// the deferred companion replies.
package lifecycle

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/avelarde/daybook/internal/domain"
	"github.com/avelarde/daybook/internal/observability"
)

// Fixed transition notifications, one per target mode.
var modeNotifications = map[domain.Mode]struct {
	title string
	body  string
}{
	domain.ModeChat: {
		title: "Chat mode",
		body:  "I'm back with you. I'll reply to what you write.",
	},
	domain.ModeLog: {
		title: "Log mode",
		body:  "I'll stay quiet from here. Everything you write is kept for the day.",
	},
}

// Service owns a day's session log and the mode state machine. All mutations
// go through SaveMessages on the repository, and every mutation fans out a
// notification before returning.
type Service struct {
	sessions  domain.SessionRepository
	tracker   *Tracker
	responder domain.Responder
	notifier  domain.Notifier
	scheduler ReplyScheduler
	now       func() time.Time
	loc       *time.Location

	mu    sync.Mutex
	modes map[domain.DayKey]domain.Mode
}

// NewService wires the session side of the lifecycle. loc is the reference
// zone for time-of-day greetings; nil means UTC.
func NewService(
	sessions domain.SessionRepository,
	tracker *Tracker,
	resp domain.Responder,
	notifier domain.Notifier,
	scheduler ReplyScheduler,
	loc *time.Location,
) *Service {
	if notifier == nil {
		notifier = NewFanOut()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		sessions:  sessions,
		tracker:   tracker,
		responder: resp,
		notifier:  notifier,
		scheduler: scheduler,
		now:       time.Now,
		loc:       loc,
		modes:     make(map[domain.DayKey]domain.Mode),
	}
}

// Tracker exposes the content-status side of the lifecycle.
func (s *Service) Tracker() *Tracker {
	return s.tracker
}

// Mode returns the day's current mode. Days start in chat mode.
func (s *Service) Mode(day domain.DayKey) domain.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m, ok := s.modes[day]; ok {
		return m
	}
	return domain.ModeChat
}

// SetMode switches a day between chat and log. A real transition appends one
// system notification describing the new behavior; setting the current mode
// again is a no-op.
func (s *Service) SetMode(ctx context.Context, day domain.DayKey, mode domain.Mode) error {
	if mode != domain.ModeChat && mode != domain.ModeLog {
		mode = domain.ModeChat
	}
	if s.Mode(day) == mode {
		return nil
	}

	log := observability.LoggerFromContext(ctx).With("day", day.String(), "mode", string(mode))

	msgs, err := s.sessions.Messages(day)
	if err != nil {
		return err
	}

	msgs = s.ensureOpening(msgs, mode)

	note := modeNotifications[mode]
	msgs = append(msgs, domain.ChatMessage{
		ID:                 domain.MessageID(uuid.NewString()),
		Text:               note.body,
		IsUser:             false,
		CreatedAt:          s.now(),
		Mode:               mode,
		SystemNotification: true,
		NotificationTitle:  note.title,
	})

	if err := s.sessions.SaveMessages(day, msgs); err != nil {
		log.Error("failed to save mode notification", "error", err)
		return err
	}

	s.mu.Lock()
	s.modes[day] = mode
	s.mu.Unlock()

	log.Info("mode changed")
	s.notifier.SessionChanged(day)
	return nil
}

// Messages returns the day's log; empty for a day with no session.
func (s *Service) Messages(ctx context.Context, day domain.DayKey) ([]domain.ChatMessage, error) {
	return s.sessions.Messages(day)
}

// AppendUserMessage stores one user message. In chat mode it also schedules
// exactly one deferred companion reply; in log mode nothing is composed.
// The returned message is the stored user message, not the reply.
func (s *Service) AppendUserMessage(ctx context.Context, day domain.DayKey, text string) (domain.ChatMessage, error) {
	mode := s.Mode(day)
	log := observability.LoggerFromContext(ctx).With("day", day.String(), "mode", string(mode))

	msgs, err := s.sessions.Messages(day)
	if err != nil {
		return domain.ChatMessage{}, err
	}

	msgs = s.ensureOpening(msgs, mode)

	msg := domain.ChatMessage{
		ID:        domain.MessageID(uuid.NewString()),
		Text:      text,
		IsUser:    true,
		CreatedAt: s.now(),
		Mode:      mode,
	}
	msgs = append(msgs, msg)

	if err := s.sessions.SaveMessages(day, msgs); err != nil {
		log.Error("failed to save user message", "error", err)
		return domain.ChatMessage{}, err
	}

	log.Info("user message appended", "message_id", string(msg.ID))
	s.notifier.SessionChanged(day)

	if mode == domain.ModeChat {
		s.scheduler.Schedule(day, func() {
			s.appendCompanionReply(day, text)
		})
	}

	return msg, nil
}

// appendCompanionReply runs when the simulated latency elapses.
func (s *Service) appendCompanionReply(day domain.DayKey, userText string) {
	log := observability.Logger().With("day", day.String())

	msgs, err := s.sessions.Messages(day)
	if err != nil {
		log.Error("failed to load session for reply", "error", err)
		return
	}

	msgs = append(msgs, domain.ChatMessage{
		ID:        domain.MessageID(uuid.NewString()),
		Text:      s.responder.Reply(userText),
		IsUser:    false,
		CreatedAt: s.now(),
		Mode:      domain.ModeChat,
	})

	if err := s.sessions.SaveMessages(day, msgs); err != nil {
		log.Error("failed to save companion reply", "error", err)
		return
	}

	s.notifier.SessionChanged(day)
}

// RemoveMessage drops one message by identity. An absent id is a no-op, not
// an error.
func (s *Service) RemoveMessage(ctx context.Context, day domain.DayKey, id domain.MessageID) error {
	msgs, err := s.sessions.Messages(day)
	if err != nil {
		return err
	}

	kept := msgs[:0]
	for _, m := range msgs {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(msgs) {
		return nil
	}

	if err := s.sessions.SaveMessages(day, kept); err != nil {
		return err
	}

	observability.LoggerFromContext(ctx).Info("message removed",
		"day", day.String(), "message_id", string(id))
	s.notifier.SessionChanged(day)
	return nil
}

// ToggleIgnore flips the entry-exclusion annotation on one message. It never
// affects the staleness count. Absent ids are a no-op.
func (s *Service) ToggleIgnore(ctx context.Context, day domain.DayKey, id domain.MessageID) error {
	msgs, err := s.sessions.Messages(day)
	if err != nil {
		return err
	}

	found := false
	for i := range msgs {
		if msgs[i].ID == id {
			msgs[i].IgnoredInEntry = !msgs[i].IgnoredInEntry
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	if err := s.sessions.SaveMessages(day, msgs); err != nil {
		return err
	}

	s.notifier.SessionChanged(day)
	return nil
}

// ClearSession empties the day, cancels any pending reply, and resets the
// summary flag; the entry status and its snapshot survive. Idempotent.
func (s *Service) ClearSession(ctx context.Context, day domain.DayKey) error {
	s.scheduler.Cancel(day)

	if err := s.sessions.Clear(day); err != nil {
		return err
	}
	if err := s.tracker.SetHasSummary(day, false); err != nil {
		return err
	}

	observability.LoggerFromContext(ctx).Info("session cleared", "day", day.String())
	s.notifier.SessionChanged(day)
	return nil
}

// ComposeSummary scores the whole session and returns the reflective
// summary, marking the day as summarized.
func (s *Service) ComposeSummary(ctx context.Context, day domain.DayKey) (string, error) {
	msgs, err := s.sessions.Messages(day)
	if err != nil {
		return "", err
	}

	text := s.responder.ReflectiveSummary(msgs)
	if err := s.tracker.SetHasSummary(day, true); err != nil {
		return "", err
	}

	observability.LoggerFromContext(ctx).Info("summary composed", "day", day.String())
	return text, nil
}

// ensureOpening re-inserts the opening message whenever a session goes from
// empty to non-empty: a time-of-day greeting in chat mode, or the fixed log
// instruction.
func (s *Service) ensureOpening(msgs []domain.ChatMessage, mode domain.Mode) []domain.ChatMessage {
	if len(msgs) > 0 {
		return msgs
	}
	return append(msgs, domain.ChatMessage{
		ID:        domain.MessageID(uuid.NewString()),
		Text:      s.responder.OpeningPrompt(s.now().In(s.loc), mode),
		IsUser:    false,
		CreatedAt: s.now(),
		Mode:      mode,
	})
}
