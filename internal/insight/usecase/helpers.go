package usecase

import (
	"errors"
	"fmt"

	"meeting-insights/internal/insight"
	"meeting-insights/internal/insight/classifier"
	"meeting-insights/pkg/metrics"
	"meeting-insights/pkg/textdecode"
)

// acquireText picks the upload over pasted text and returns NFC text plus its source label.
// A named upload wins even when empty. Only an empty string counts as no text;
// whitespace is analyzed like any other text.
func (uc *implUseCase) acquireText(input insight.AnalyzeInput) (string, string, error) {
	var (
		text   string
		source string
	)

	if input.HasUpload() {
		if uc.maxUploadBytes > 0 && int64(len(input.Upload)) > uc.maxUploadBytes {
			return "", "", fmt.Errorf("%w: %d > %d bytes", insight.ErrUploadTooLarge, len(input.Upload), uc.maxUploadBytes)
		}
		decoded, err := textdecode.Decode(input.Upload)
		if err != nil {
			if errors.Is(err, textdecode.ErrInvalidUTF8) {
				return "", "", insight.ErrInvalidEncoding
			}
			return "", "", fmt.Errorf("%w: %v", insight.ErrInvalidEncoding, err)
		}
		text, source = decoded, metrics.SourceUpload
	} else {
		text, source = textdecode.Normalize(input.Text), metrics.SourceText
	}

	if text == "" {
		return "", "", insight.ErrEmptyInput
	}
	return text, source, nil
}

// lineCounts flattens classifier stats into metric label values.
func lineCounts(stats classifier.Stats) map[string]int {
	out := make(map[string]int, len(stats.ByKind)+1)
	for kind, n := range stats.ByKind {
		out[kind.String()] = n
	}
	if stats.Participation > 0 {
		out["participation"] = stats.Participation
	}
	return out
}
