// Package firestore backs the repositories with Cloud Firestore for
// deployments that already live on GCP.
package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/avelarde/daybook/internal/domain"
)

type Store struct {
	client *firestore.Client
}

// NewStore creates a Firestore store for the given project
// (DAYBOOK_GCP_PROJECT).
func NewStore(ctx context.Context, projectID string) (*Store, error) {
	if projectID == "" {
		return nil, fmt.Errorf("projectID is required for Firestore store")
	}

	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}

	return &Store{client: client}, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

// ─────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────

func (s *Store) dayDoc(day domain.DayKey) *firestore.DocumentRef {
	return s.client.Collection("days").Doc(day.String())
}

func (s *Store) messagesCol(day domain.DayKey) *firestore.CollectionRef {
	return s.dayDoc(day).Collection("messages")
}

func (s *Store) statusDoc(day domain.DayKey) *firestore.DocumentRef {
	return s.client.Collection("statuses").Doc(day.String())
}

// ─────────────────────────────────────────
// Firestore Types
// ─────────────────────────────────────────

type messageDoc struct {
	Position           int       `firestore:"position"`
	Text               string    `firestore:"text"`
	IsUser             bool      `firestore:"is_user"`
	CreatedAt          time.Time `firestore:"created_at"`
	IgnoredInEntry     bool      `firestore:"ignored_in_entry"`
	Mode               string    `firestore:"mode"`
	SystemNotification bool      `firestore:"system_notification"`
	NotificationTitle  string    `firestore:"notification_title"`
}

type statusDoc struct {
	HasEntry          bool       `firestore:"has_entry"`
	HasSummary        bool       `firestore:"has_summary"`
	EntryMessageCount int        `firestore:"entry_message_count"`
	EntryUpdatedAt    *time.Time `firestore:"entry_updated_at"`
}

// ─────────────────────────────────────────
// SessionRepository implementation
// ─────────────────────────────────────────

func (s *Store) Messages(day domain.DayKey) ([]domain.ChatMessage, error) {
	ctx := context.Background()

	iter := s.messagesCol(day).OrderBy("position", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	out := []domain.ChatMessage{}
	for {
		snap, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			return nil, fmt.Errorf("firestore Messages: %w", err)
		}

		var doc messageDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("decode messageDoc: %w", err)
		}

		out = append(out, domain.ChatMessage{
			ID:                 domain.MessageID(snap.Ref.ID),
			Text:               doc.Text,
			IsUser:             doc.IsUser,
			CreatedAt:          doc.CreatedAt,
			IgnoredInEntry:     doc.IgnoredInEntry,
			Mode:               domain.Mode(doc.Mode),
			SystemNotification: doc.SystemNotification,
			NotificationTitle:  doc.NotificationTitle,
		})
	}
	return out, nil
}

// SaveMessages is a full replace: existing message docs are deleted and the
// new log written, all in one batched write.
func (s *Store) SaveMessages(day domain.DayKey, msgs []domain.ChatMessage) error {
	ctx := context.Background()

	batch := s.client.Batch()

	existing, err := s.messagesCol(day).DocumentRefs(ctx).GetAll()
	if err != nil {
		return fmt.Errorf("firestore SaveMessages list: %w", err)
	}
	for _, ref := range existing {
		batch.Delete(ref)
	}

	for i, m := range msgs {
		doc := messageDoc{
			Position:           i,
			Text:               m.Text,
			IsUser:             m.IsUser,
			CreatedAt:          m.CreatedAt,
			IgnoredInEntry:     m.IgnoredInEntry,
			Mode:               string(m.Mode),
			SystemNotification: m.SystemNotification,
			NotificationTitle:  m.NotificationTitle,
		}
		batch.Set(s.messagesCol(day).Doc(string(m.ID)), doc)
	}

	if _, err := batch.Commit(ctx); err != nil {
		return fmt.Errorf("firestore SaveMessages commit: %w", err)
	}
	return nil
}

func (s *Store) Clear(day domain.DayKey) error {
	return s.SaveMessages(day, nil)
}

// ─────────────────────────────────────────
// StatusRepository implementation
// ─────────────────────────────────────────

func (s *Store) Status(day domain.DayKey) (domain.ContentStatus, error) {
	ctx := context.Background()

	snap, err := s.statusDoc(day).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.ContentStatus{}, nil // absence is normal
		}
		return domain.ContentStatus{}, fmt.Errorf("firestore Status: %w", err)
	}

	var doc statusDoc
	if err := snap.DataTo(&doc); err != nil {
		return domain.ContentStatus{}, fmt.Errorf("firestore Status decode: %w", err)
	}

	return domain.ContentStatus{
		HasEntry:          doc.HasEntry,
		HasSummary:        doc.HasSummary,
		EntryMessageCount: doc.EntryMessageCount,
		EntryUpdatedAt:    doc.EntryUpdatedAt,
	}, nil
}

func (s *Store) SaveStatus(day domain.DayKey, st domain.ContentStatus) error {
	ctx := context.Background()

	doc := statusDoc{
		HasEntry:          st.HasEntry,
		HasSummary:        st.HasSummary,
		EntryMessageCount: st.EntryMessageCount,
		EntryUpdatedAt:    st.EntryUpdatedAt,
	}

	if _, err := s.statusDoc(day).Set(ctx, doc); err != nil {
		return fmt.Errorf("firestore SaveStatus: %w", err)
	}
	return nil
}
