package domain

import "time"

// ChatMessage is one message in a day's session, from the user or the
// companion. Identity is the ID, never the content: two messages with the
// same text and timestamp are still distinct entities.
type ChatMessage struct {
	ID        MessageID
	Text      string
	IsUser    bool
	CreatedAt time.Time

	// IgnoredInEntry is a user annotation excluding the message from entry
	// generation. It does not affect the staleness count.
	IgnoredInEntry bool

	Mode Mode

	// System notifications are injected by the mode controller, not written
	// by either party.
	SystemNotification bool
	NotificationTitle  string
}

// UserMessageCount counts raw user messages, ignored ones included. This is
// the number snapshotted at entry generation and compared for staleness.
func UserMessageCount(msgs []ChatMessage) int {
	n := 0
	for _, m := range msgs {
		if m.IsUser {
			n++
		}
	}
	return n
}
