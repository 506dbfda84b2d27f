package render

import (
	"bytes"
	"html/template"

	"meeting-insights/internal/model"
)

var htmlReport = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>Meeting Insights</title>
</head>
<body>
<h2>Meeting Insights</h2>
<h3>Participación por persona</h3>
{{- if .Speakers}}
<table class="dataframe">
<thead><tr><th>Persona</th><th>Intervenciones</th></tr></thead>
<tbody>
{{- range .Speakers}}
<tr><td>{{.Name}}</td><td>{{.Count}}</td></tr>
{{- end}}
</tbody>
</table>
{{- else}}
<p>No hay datos</p>
{{- end}}
<h3>Tareas detectadas</h3>
{{- if .Tasks}}
<table class="dataframe">
<thead><tr><th>task</th><th>responsible</th><th>due_date</th></tr></thead>
<tbody>
{{- range .Tasks}}
<tr><td>{{.Text}}</td><td>{{.Responsible}}</td><td>{{.DueDate}}</td></tr>
{{- end}}
</tbody>
</table>
{{- else}}
<p>No hay tareas</p>
{{- end}}
<h3>Decisiones clave</h3>
{{- if .Decisions}}
<table class="dataframe">
<thead><tr><th>Decisiones</th></tr></thead>
<tbody>
{{- range .Decisions}}
<tr><td>{{.}}</td></tr>
{{- end}}
</tbody>
</table>
{{- else}}
<p>No hay decisiones</p>
{{- end}}
</body>
</html>
`))

type htmlView struct {
	Speakers  []model.Speaker
	Tasks     []model.Task
	Decisions []string
}

// HTML renders the report as a standalone document with one table per section.
func HTML(record model.InsightRecord) ([]byte, error) {
	var buf bytes.Buffer
	err := htmlReport.Execute(&buf, htmlView{
		Speakers:  record.Participation.Speakers(),
		Tasks:     record.Tasks,
		Decisions: record.Decisions,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
