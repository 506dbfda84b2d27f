package insight

import (
	"time"

	"meeting-insights/internal/insight/render"
	"meeting-insights/internal/model"
)

// AnalyzeInput carries the two text sources. An upload wins over Text.
type AnalyzeInput struct {
	Text     string
	FileName string // upload name; set whenever a file was sent
	Upload   []byte
}

// HasUpload reports whether a file was supplied, even an empty one.
func (in AnalyzeInput) HasUpload() bool {
	return in.FileName != "" || len(in.Upload) > 0
}

// Analysis is one stored analysis result.
type Analysis struct {
	ID        string              `json:"id"`
	Source    string              `json:"source"` // "upload" or "text"
	FileName  string              `json:"file_name,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
	Lines     int                 `json:"lines"`
	Record    model.InsightRecord `json:"insights"`
}

// AnalyzeOutput is the result of Analyze.
type AnalyzeOutput struct {
	Analysis Analysis
	Markdown string
}

// ExportInput selects a stored analysis and a format.
type ExportInput struct {
	ID     string
	Format string
}

// ExportOutput is a rendered document ready for download.
type ExportOutput struct {
	Format      render.Format
	FileName    string
	ContentType string
	Content     []byte
}

// ScheduleInput selects the analysis whose tasks go to the calendar.
type ScheduleInput struct {
	ID string
}

// ScheduledTask reports what happened to one task.
type ScheduledTask struct {
	Task    model.Task `json:"task"`
	Status  string     `json:"status"` // created, skipped, failed
	EventID string     `json:"event_id,omitempty"`
	Link    string     `json:"link,omitempty"`
	Reason  string     `json:"reason,omitempty"`
}

// ScheduleOutput summarizes a Schedule call.
type ScheduleOutput struct {
	Tasks   []ScheduledTask `json:"tasks"`
	Created int             `json:"created"`
	Skipped int             `json:"skipped"`
	Failed  int             `json:"failed"`
}

// PreviewInput is AnalyzeInput plus the formats to render.
type PreviewInput struct {
	AnalyzeInput
	Formats []render.Format
}

// PreviewOutput holds the record and its renderings keyed by format.
type PreviewOutput struct {
	Record   model.InsightRecord
	Lines    int
	Rendered map[render.Format][]byte
}

// Schedule statuses.
const (
	StatusCreated = "created"
	StatusSkipped = "skipped"
	StatusFailed  = "failed"
)
