// Package sqlite backs the session and status repositories with a local
// SQLite file, the durable option for single-machine deployments.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/avelarde/daybook/internal/domain"
)

type Store struct {
	db *sql.DB
}

// NewStore opens (and if needed creates) the database at path.
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &Store{db: db}
	if err = store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS messages (
        day TEXT NOT NULL,
        position INTEGER NOT NULL,
        id TEXT NOT NULL, -- UUID
        text TEXT NOT NULL,
        is_user BOOLEAN NOT NULL,
        created_at DATETIME NOT NULL,
        ignored_in_entry BOOLEAN NOT NULL DEFAULT FALSE,
        mode TEXT NOT NULL DEFAULT '',
        system_notification BOOLEAN NOT NULL DEFAULT FALSE,
        notification_title TEXT NOT NULL DEFAULT '',
        PRIMARY KEY (day, position)
    );

    CREATE TABLE IF NOT EXISTS statuses (
        day TEXT PRIMARY KEY,
        has_entry BOOLEAN NOT NULL DEFAULT FALSE,
        has_summary BOOLEAN NOT NULL DEFAULT FALSE,
        entry_message_count INTEGER NOT NULL DEFAULT 0,
        entry_updated_at DATETIME
    );
    `
	_, err := s.db.Exec(schema)
	return err
}

// ─────────────────────────────────────────
// SessionRepository implementation
// ─────────────────────────────────────────

func (s *Store) Messages(day domain.DayKey) ([]domain.ChatMessage, error) {
	rows, err := s.db.Query(`
        SELECT id, text, is_user, created_at, ignored_in_entry, mode,
               system_notification, notification_title
        FROM messages WHERE day = ? ORDER BY position`, day.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	out := []domain.ChatMessage{}
	for rows.Next() {
		var (
			m    domain.ChatMessage
			id   string
			mode string
		)
		if err := rows.Scan(&id, &m.Text, &m.IsUser, &m.CreatedAt,
			&m.IgnoredInEntry, &mode, &m.SystemNotification, &m.NotificationTitle); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		m.ID = domain.MessageID(id)
		m.Mode = domain.Mode(mode)
		out = append(out, m)
	}
	return out, rows.Err()
}

// SaveMessages rewrites the day's log in one transaction; the position
// column preserves ordering across reads.
func (s *Store) SaveMessages(day domain.DayKey, msgs []domain.ChatMessage) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM messages WHERE day = ?", day.String()); err != nil {
		return fmt.Errorf("failed to clear day: %w", err)
	}

	stmt, err := tx.Prepare(`
        INSERT INTO messages
            (day, position, id, text, is_user, created_at, ignored_in_entry,
             mode, system_notification, notification_title)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare message insert: %w", err)
	}
	defer stmt.Close()

	for i, m := range msgs {
		_, err := stmt.Exec(day.String(), i, string(m.ID), m.Text, m.IsUser,
			m.CreatedAt, m.IgnoredInEntry, string(m.Mode),
			m.SystemNotification, m.NotificationTitle)
		if err != nil {
			return fmt.Errorf("failed to insert message: %w", err)
		}
	}

	return tx.Commit()
}

func (s *Store) Clear(day domain.DayKey) error {
	if _, err := s.db.Exec("DELETE FROM messages WHERE day = ?", day.String()); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// ─────────────────────────────────────────
// StatusRepository implementation
// ─────────────────────────────────────────

func (s *Store) Status(day domain.DayKey) (domain.ContentStatus, error) {
	var (
		st        domain.ContentStatus
		updatedAt sql.NullTime
	)
	err := s.db.QueryRow(`
        SELECT has_entry, has_summary, entry_message_count, entry_updated_at
        FROM statuses WHERE day = ?`, day.String()).
		Scan(&st.HasEntry, &st.HasSummary, &st.EntryMessageCount, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.ContentStatus{}, nil // absence is normal
		}
		return domain.ContentStatus{}, fmt.Errorf("failed to query status: %w", err)
	}
	if updatedAt.Valid {
		t := updatedAt.Time
		st.EntryUpdatedAt = &t
	}
	return st, nil
}

func (s *Store) SaveStatus(day domain.DayKey, st domain.ContentStatus) error {
	var updatedAt *time.Time
	if st.EntryUpdatedAt != nil {
		updatedAt = st.EntryUpdatedAt
	}

	_, err := s.db.Exec(`
        INSERT INTO statuses (day, has_entry, has_summary, entry_message_count, entry_updated_at)
        VALUES (?, ?, ?, ?, ?)
        ON CONFLICT(day) DO UPDATE SET
            has_entry = excluded.has_entry,
            has_summary = excluded.has_summary,
            entry_message_count = excluded.entry_message_count,
            entry_updated_at = excluded.entry_updated_at`,
		day.String(), st.HasEntry, st.HasSummary, st.EntryMessageCount, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to save status: %w", err)
	}
	return nil
}
