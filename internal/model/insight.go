package model

// Default sentinels used when a task field could not be extracted.
const (
	NoResponsible = "no responsible party assigned"
	NoDate        = "no date"
)

// Task is one action item detected in the minutes.
type Task struct {
	Text        string `json:"task"`
	Responsible string `json:"responsible"`
	DueDate     string `json:"due_date"`
}

// InsightRecord is the result of analysing one document.
// Tasks and Decisions keep the order of their source lines.
type InsightRecord struct {
	Tasks         []Task        `json:"tasks"`
	Decisions     []string      `json:"decisions"`
	Participation Participation `json:"participation"`
}

// NewInsightRecord returns a record with empty, non-nil collections.
func NewInsightRecord() InsightRecord {
	return InsightRecord{
		Tasks:         []Task{},
		Decisions:     []string{},
		Participation: NewParticipation(),
	}
}

// IsEmpty reports whether nothing was detected.
func (r InsightRecord) IsEmpty() bool {
	return len(r.Tasks) == 0 && len(r.Decisions) == 0 && r.Participation.Len() == 0
}
