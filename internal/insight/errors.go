package insight

import "errors"

// Domain-specific errors for the insight package.
var (
	ErrEmptyInput        = errors.New("no text to analyze")
	ErrAnalysisNotFound  = errors.New("analysis not found")
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrInvalidEncoding   = errors.New("upload is not valid UTF-8 or UTF-16 text")
	ErrUploadTooLarge    = errors.New("upload exceeds the size limit")
	ErrCalendarDisabled  = errors.New("calendar integration is not configured")
)
