package render

import (
	"errors"
	"fmt"
	"strings"

	"meeting-insights/internal/model"
)

// Format is an export format for an InsightRecord.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
)

var ErrUnknownFormat = errors.New("unknown export format")

// Formats lists the supported formats in presentation order.
func Formats() []Format {
	return []Format{FormatMarkdown, FormatHTML, FormatJSON}
}

// ParseFormat accepts the format name or its usual file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html", "htm":
		return FormatHTML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Extension returns the file extension without the dot.
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return "md"
	case FormatHTML:
		return "html"
	default:
		return "json"
	}
}

// FileName is the download name for this format.
func (f Format) FileName() string {
	return "meeting_insights." + f.Extension()
}

func (f Format) ContentType() string {
	switch f {
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	case FormatHTML:
		return "text/html; charset=utf-8"
	default:
		return "application/json; charset=utf-8"
	}
}

// Render produces the export body for record in format f.
func Render(f Format, record model.InsightRecord) ([]byte, error) {
	switch f {
	case FormatMarkdown:
		return []byte(Markdown(record)), nil
	case FormatHTML:
		return HTML(record)
	case FormatJSON:
		return JSON(record)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}
