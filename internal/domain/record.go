package domain

import "time"

// Meta carries the fields the store owns on every record: the generated id,
// the creation time, and the time of the last mutation (absent until the
// record is first updated). Entity structs embed it so the JSON documents
// keep the flat shape the dashboard expects.
type Meta struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// RecordMeta exposes the embedded Meta to the generic store.
func (m *Meta) RecordMeta() *Meta { return m }

// Record is the constraint satisfied by every stored entity (via *T with an
// embedded Meta).
type Record interface {
	RecordMeta() *Meta
}

// Touch marks the record as mutated now.
func (m *Meta) Touch(now time.Time) {
	t := now.UTC()
	m.UpdatedAt = &t
}
