package domain

import "time"

type MessageID string

// Mode controls whether the companion composes replies for a day's session.
type Mode string

const (
	ModeChat Mode = "chat" // every user message gets a composed reply
	ModeLog  Mode = "log"  // messages are recorded, no replies
	ModeNone Mode = ""     // messages that predate mode tracking
)

type Timestamp = time.Time
