package domain

import "time"

// Snapshot bundles every collection into one export/import payload. Nil
// slices (kinds absent from the payload) are left untouched on import; the
// ledger pointer works the same way.
type Snapshot struct {
	Tasks      []*Task         `json:"tasks,omitempty"`
	Clients    []*Client       `json:"clients,omitempty"`
	Prospects  []*Prospect     `json:"prospects,omitempty"`
	Projects   []*Project      `json:"projects,omitempty"`
	Financials *Ledger         `json:"financials,omitempty"`
	Tokens     []*TokenLog     `json:"tokens,omitempty"`
	Checkins   []*Checkin      `json:"checkins,omitempty"`
	Ideas      []*Idea         `json:"ideas,omitempty"`
	Reviews    []*WeeklyReview `json:"reviews,omitempty"`
	Activity   []ActivityEntry `json:"activity,omitempty"`
	ExportedAt time.Time       `json:"exportedAt"`
}
