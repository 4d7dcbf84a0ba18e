package domain

import "time"

// ContentStatus tracks whether the derived artifacts for one day exist and
// how fresh the entry is.
type ContentStatus struct {
	HasEntry   bool
	HasSummary bool

	// EntryMessageCount is the user-message count snapshotted when the entry
	// was last generated. Only meaningful while HasEntry is true.
	EntryMessageCount int

	EntryUpdatedAt *time.Time
}

// EntryAction is the affordance a caller should offer for a day. It is
// derived, never stored.
type EntryAction string

const (
	ActionGenerateEntry EntryAction = "generate_entry"
	ActionViewEntry     EntryAction = "view_entry"
	ActionUpdateEntry   EntryAction = "update_entry"
)
