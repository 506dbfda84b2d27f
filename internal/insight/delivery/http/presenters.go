package http

import (
	"meeting-insights/internal/insight"
	"meeting-insights/internal/model"
	"meeting-insights/pkg/response"
)

// --- Request DTOs ---

type analyzeReq struct {
	Text     string `json:"text"`
	FileName string `json:"-"`
	Upload   []byte `json:"-"`
}

func (r analyzeReq) toInput() insight.AnalyzeInput {
	return insight.AnalyzeInput{
		Text:     r.Text,
		FileName: r.FileName,
		Upload:   r.Upload,
	}
}

type exportReq struct {
	ID     string `form:"-"`
	Format string `form:"format"`
}

func (r exportReq) toInput() insight.ExportInput {
	format := r.Format
	if format == "" {
		format = "markdown"
	}
	return insight.ExportInput{ID: r.ID, Format: format}
}

// --- Response DTOs ---

type speakerResp struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type analysisResp struct {
	ID            string              `json:"id"`
	Source        string              `json:"source"`
	FileName      string              `json:"file_name,omitempty"`
	CreatedAt     response.DateTime   `json:"created_at"`
	Lines         int                 `json:"lines"`
	Insights      model.InsightRecord `json:"insights"`
	Participation []speakerResp       `json:"participation"`
}

func newAnalysisResp(a insight.Analysis) analysisResp {
	speakers := a.Record.Participation.Speakers()
	participation := make([]speakerResp, len(speakers))
	for i, s := range speakers {
		participation[i] = speakerResp{Name: s.Name, Count: s.Count}
	}
	return analysisResp{
		ID:            a.ID,
		Source:        a.Source,
		FileName:      a.FileName,
		CreatedAt:     response.DateTime(a.CreatedAt),
		Lines:         a.Lines,
		Insights:      a.Record,
		Participation: participation,
	}
}

type analyzeResp struct {
	analysisResp
	Markdown string `json:"markdown"`
}

func (h *handler) newAnalyzeResp(out insight.AnalyzeOutput) analyzeResp {
	return analyzeResp{
		analysisResp: newAnalysisResp(out.Analysis),
		Markdown:     out.Markdown,
	}
}

type detailResp struct {
	analysisResp
}

func (h *handler) newDetailResp(a insight.Analysis) detailResp {
	return detailResp{analysisResp: newAnalysisResp(a)}
}

type scheduleResp struct {
	Tasks   []insight.ScheduledTask `json:"tasks"`
	Created int                     `json:"created"`
	Skipped int                     `json:"skipped"`
	Failed  int                     `json:"failed"`
}

func (h *handler) newScheduleResp(out insight.ScheduleOutput) scheduleResp {
	return scheduleResp{
		Tasks:   out.Tasks,
		Created: out.Created,
		Skipped: out.Skipped,
		Failed:  out.Failed,
	}
}
