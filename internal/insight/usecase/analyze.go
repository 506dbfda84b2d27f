package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"meeting-insights/internal/insight"
	"meeting-insights/internal/insight/render"
)

// Analyze classifies the chosen text source and stores the result for export.
func (uc *implUseCase) Analyze(ctx context.Context, input insight.AnalyzeInput) (insight.AnalyzeOutput, error) {
	start := time.Now()

	text, source, err := uc.acquireText(input)
	if err != nil {
		return insight.AnalyzeOutput{}, err
	}

	record, stats := uc.classifier.AnalyzeWithStats(text)

	analysis := insight.Analysis{
		ID:        uuid.NewString(),
		Source:    source,
		FileName:  input.FileName,
		CreatedAt: start.UTC(),
		Lines:     stats.Lines,
		Record:    record,
	}
	if err := uc.repo.Save(ctx, analysis); err != nil {
		return insight.AnalyzeOutput{}, fmt.Errorf("failed to store analysis: %w", err)
	}

	uc.metrics.ObserveAnalysis(source, time.Since(start), lineCounts(stats))
	uc.l.Infof(ctx, "Analyze: id=%s source=%s lines=%d speakers=%d tasks=%d decisions=%d",
		analysis.ID, source, stats.Lines, record.Participation.Len(), len(record.Tasks), len(record.Decisions))

	return insight.AnalyzeOutput{
		Analysis: analysis,
		Markdown: render.Markdown(record),
	}, nil
}

// Preview runs the same pipeline as Analyze without storing, and renders every requested format.
func (uc *implUseCase) Preview(ctx context.Context, input insight.PreviewInput) (insight.PreviewOutput, error) {
	start := time.Now()

	text, source, err := uc.acquireText(input.AnalyzeInput)
	if err != nil {
		return insight.PreviewOutput{}, err
	}

	record, stats := uc.classifier.AnalyzeWithStats(text)
	uc.metrics.ObserveAnalysis(source, time.Since(start), lineCounts(stats))

	formats := input.Formats
	if len(formats) == 0 {
		formats = render.Formats()
	}

	out := insight.PreviewOutput{
		Record:   record,
		Lines:    stats.Lines,
		Rendered: make(map[render.Format][]byte, len(formats)),
	}
	for _, f := range formats {
		body, err := render.Render(f, record)
		if err != nil {
			return insight.PreviewOutput{}, fmt.Errorf("%w: %v", insight.ErrUnsupportedFormat, err)
		}
		out.Rendered[f] = body
	}

	uc.l.Debugf(ctx, "Preview: source=%s lines=%d formats=%v", source, stats.Lines, formats)
	return out, nil
}
