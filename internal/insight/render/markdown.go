package render

import (
	"fmt"
	"strings"

	"meeting-insights/internal/model"
)

// Markdown renders the report with participation, tasks and decisions sections.
func Markdown(record model.InsightRecord) string {
	var b strings.Builder
	b.WriteString("## Meeting Insights\n\n")

	b.WriteString("### Participación por persona\n")
	if record.Participation.Len() > 0 {
		for _, s := range record.Participation.Speakers() {
			fmt.Fprintf(&b, "- %s: %d intervenciones\n", s.Name, s.Count)
		}
	} else {
		b.WriteString("- No se detectaron participantes\n")
	}

	b.WriteString("\n### Tareas detectadas\n")
	if len(record.Tasks) > 0 {
		for _, t := range record.Tasks {
			fmt.Fprintf(&b, "- %s (Responsable: %s, Fecha: %s)\n", t.Text, t.Responsible, t.DueDate)
		}
	} else {
		b.WriteString("- No se detectaron tareas\n")
	}

	b.WriteString("\n### Decisiones clave\n")
	if len(record.Decisions) > 0 {
		for _, d := range record.Decisions {
			fmt.Fprintf(&b, "- %s\n", d)
		}
	} else {
		b.WriteString("- No se detectaron decisiones\n")
	}

	return b.String()
}
