package insight

import "context"

// UseCase defines the business logic interface for the insight domain.
type UseCase interface {
	// Analyze decodes the chosen text source, extracts insights and stores the result.
	Analyze(ctx context.Context, input AnalyzeInput) (AnalyzeOutput, error)

	// Detail returns a stored analysis.
	Detail(ctx context.Context, id string) (Analysis, error)

	// Export renders a stored analysis as a downloadable document.
	Export(ctx context.Context, input ExportInput) (ExportOutput, error)

	// Schedule creates all-day calendar events for the dated tasks of a stored analysis.
	Schedule(ctx context.Context, input ScheduleInput) (ScheduleOutput, error)

	// Preview analyzes and renders text without storing anything.
	Preview(ctx context.Context, input PreviewInput) (PreviewOutput, error)
}
