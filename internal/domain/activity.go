package domain

import "time"

// ActivityEntry is one line of the append-only activity feed. Entries are
// persisted oldest-first; reads reverse for display only.
type ActivityEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}
