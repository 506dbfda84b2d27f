package render

import (
	"bytes"
	"encoding/json"

	"meeting-insights/internal/model"
)

// JSON serializes the record with keys tasks, decisions, participation.
// Accented characters are written as-is and HTML characters are not escaped.
func JSON(record model.InsightRecord) ([]byte, error) {
	if record.Tasks == nil {
		record.Tasks = []model.Task{}
	}
	if record.Decisions == nil {
		record.Decisions = []string{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(record); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
