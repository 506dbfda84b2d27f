package render_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeting-insights/internal/insight/render"
	"meeting-insights/internal/model"
)

func sampleRecord() model.InsightRecord {
	r := model.NewInsightRecord()
	r.Participation.Inc("Ana")
	r.Participation.Inc("Juan")
	r.Participation.Inc("Ana")
	r.Tasks = append(r.Tasks, model.Task{Text: "Juan: Revisar el informe.", Responsible: "Juan", DueDate: "2024-05-10"})
	r.Decisions = append(r.Decisions, "Vamos a priorizar el backlog.")
	return r
}

func TestMarkdown(t *testing.T) {
	want := "## Meeting Insights\n\n" +
		"### Participación por persona\n" +
		"- Ana: 2 intervenciones\n" +
		"- Juan: 1 intervenciones\n" +
		"\n### Tareas detectadas\n" +
		"- Juan: Revisar el informe. (Responsable: Juan, Fecha: 2024-05-10)\n" +
		"\n### Decisiones clave\n" +
		"- Vamos a priorizar el backlog.\n"

	assert.Equal(t, want, render.Markdown(sampleRecord()))
}

func TestMarkdownEmpty(t *testing.T) {
	out := render.Markdown(model.NewInsightRecord())

	assert.Contains(t, out, "- No se detectaron participantes\n")
	assert.Contains(t, out, "- No se detectaron tareas\n")
	assert.Contains(t, out, "- No se detectaron decisiones\n")
}

func TestHTML(t *testing.T) {
	rec := sampleRecord()
	rec.Decisions = append(rec.Decisions, "<script>alert(1)</script>")

	out, err := render.HTML(rec)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "<!DOCTYPE html>"))
	assert.Contains(t, string(out), `<meta charset="utf-8">`)
	assert.NotContains(t, string(out), "<script>")

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(out))
	require.NoError(t, err)

	tables := doc.Find("table")
	require.Equal(t, 3, tables.Length())

	var people []string
	tables.Eq(0).Find("tbody tr").Each(func(_ int, s *goquery.Selection) {
		people = append(people, s.Find("td").Eq(0).Text()+"="+s.Find("td").Eq(1).Text())
	})
	assert.Equal(t, []string{"Ana=2", "Juan=1"}, people)

	var headers []string
	tables.Eq(1).Find("thead th").Each(func(_ int, s *goquery.Selection) {
		headers = append(headers, s.Text())
	})
	assert.Equal(t, []string{"task", "responsible", "due_date"}, headers)

	cells := tables.Eq(1).Find("tbody td")
	assert.Equal(t, "Juan: Revisar el informe.", cells.Eq(0).Text())
	assert.Equal(t, "2024-05-10", cells.Eq(2).Text())

	decisions := tables.Eq(2).Find("tbody td")
	require.Equal(t, 2, decisions.Length())
	assert.Equal(t, "<script>alert(1)</script>", decisions.Eq(1).Text())
}

func TestHTMLEmpty(t *testing.T) {
	out, err := render.HTML(model.NewInsightRecord())
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(out))
	require.NoError(t, err)

	assert.Equal(t, 0, doc.Find("table").Length())
	var placeholders []string
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		placeholders = append(placeholders, s.Text())
	})
	assert.Equal(t, []string{"No hay datos", "No hay tareas", "No hay decisiones"}, placeholders)
}

func TestJSON(t *testing.T) {
	rec := sampleRecord()
	rec.Decisions = append(rec.Decisions, "Decisión: usar <main> & revisar")

	out, err := render.JSON(rec)
	require.NoError(t, err)

	s := string(out)
	assert.True(t, strings.HasPrefix(s, "{\n  \"tasks\": ["))
	assert.Contains(t, s, "Decisión: usar <main> & revisar")
	assert.Contains(t, s, "\"participation\": {\n    \"Ana\": 2,\n    \"Juan\": 1\n  }")
	assert.Less(t, strings.Index(s, `"tasks"`), strings.Index(s, `"decisions"`))
	assert.Less(t, strings.Index(s, `"decisions"`), strings.Index(s, `"participation"`))

	var back model.InsightRecord
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, rec.Tasks, back.Tasks)
	assert.Equal(t, rec.Decisions, back.Decisions)
	assert.Equal(t, rec.Participation.Speakers(), back.Participation.Speakers())
}

func TestJSONEmptyRecord(t *testing.T) {
	out, err := render.JSON(model.InsightRecord{})
	require.NoError(t, err)

	assert.JSONEq(t, `{"tasks":[],"decisions":[],"participation":{}}`, string(out))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    render.Format
		wantErr bool
	}{
		{in: "markdown", want: render.FormatMarkdown},
		{in: "MD", want: render.FormatMarkdown},
		{in: " html ", want: render.FormatHTML},
		{in: "json", want: render.FormatJSON},
		{in: "pdf", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := render.ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, render.ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatMetadata(t *testing.T) {
	assert.Equal(t, "meeting_insights.md", render.FormatMarkdown.FileName())
	assert.Equal(t, "meeting_insights.html", render.FormatHTML.FileName())
	assert.Equal(t, "meeting_insights.json", render.FormatJSON.FileName())
	assert.Equal(t, "text/html; charset=utf-8", render.FormatHTML.ContentType())
}

func TestRender(t *testing.T) {
	rec := sampleRecord()
	for _, f := range render.Formats() {
		out, err := render.Render(f, rec)
		require.NoError(t, err, f)
		assert.NotEmpty(t, out, f)
	}

	_, err := render.Render(render.Format("pdf"), rec)
	assert.ErrorIs(t, err, render.ErrUnknownFormat)
}
