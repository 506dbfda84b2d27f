package usecase

import (
	"context"
	"errors"
	"fmt"

	"meeting-insights/internal/insight"
	"meeting-insights/internal/insight/render"
	"meeting-insights/internal/insight/repository"
)

// Detail returns a stored analysis.
func (uc *implUseCase) Detail(ctx context.Context, id string) (insight.Analysis, error) {
	a, err := uc.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return insight.Analysis{}, insight.ErrAnalysisNotFound
		}
		return insight.Analysis{}, fmt.Errorf("failed to load analysis: %w", err)
	}
	return a, nil
}

// Export renders a stored analysis in the requested format.
func (uc *implUseCase) Export(ctx context.Context, input insight.ExportInput) (insight.ExportOutput, error) {
	format, err := render.ParseFormat(input.Format)
	if err != nil {
		return insight.ExportOutput{}, fmt.Errorf("%w: %q", insight.ErrUnsupportedFormat, input.Format)
	}

	a, err := uc.Detail(ctx, input.ID)
	if err != nil {
		return insight.ExportOutput{}, err
	}

	body, err := render.Render(format, a.Record)
	if err != nil {
		return insight.ExportOutput{}, fmt.Errorf("failed to render %s: %w", format, err)
	}

	uc.metrics.IncExport(string(format))
	uc.l.Infof(ctx, "Export: id=%s format=%s bytes=%d", a.ID, format, len(body))

	return insight.ExportOutput{
		Format:      format,
		FileName:    format.FileName(),
		ContentType: format.ContentType(),
		Content:     body,
	}, nil
}
