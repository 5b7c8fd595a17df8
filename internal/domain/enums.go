package domain

// TaskStatus represents the lifecycle state of a task.
// Values are lowercase because they appear verbatim in the persisted JSON
// documents and the dashboard API.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

func (s TaskStatus) String() string { return string(s) }

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// ProspectStage represents the sales-pipeline stage of a prospect.
type ProspectStage string

const (
	ProspectStageLead       ProspectStage = "lead"
	ProspectStageProspect   ProspectStage = "prospect"
	ProspectStageQualified  ProspectStage = "qualified"
	ProspectStageClosed     ProspectStage = "closed"
	ProspectStageClosedLost ProspectStage = "closed-lost"
)

func (s ProspectStage) String() string { return string(s) }

func (s ProspectStage) IsValid() bool {
	switch s {
	case ProspectStageLead, ProspectStageProspect, ProspectStageQualified,
		ProspectStageClosed, ProspectStageClosedLost:
		return true
	}
	return false
}

// EntryType distinguishes the two sides of the financial ledger.
type EntryType string

const (
	EntryTypeRevenue EntryType = "revenue"
	EntryTypeExpense EntryType = "expense"
)

func (t EntryType) String() string { return string(t) }

func (t EntryType) IsValid() bool {
	return t == EntryTypeRevenue || t == EntryTypeExpense
}
