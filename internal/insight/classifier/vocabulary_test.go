package classifier_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeting-insights/internal/insight/classifier"
)

func TestDefaultVocabulary(t *testing.T) {
	v := classifier.DefaultVocabulary()
	require.NoError(t, v.Validate())
	assert.Equal(t, []string{"es", "en"}, v.Languages())
	assert.Len(t, v.ResponsibleRules, 6)
	assert.Equal(t, "responsable-label", v.ResponsibleRules[0].Name)
	assert.Contains(t, v.IgnoreNames, "Fecha")
	assert.Contains(t, v.IgnoreNames, "Decisions")
}

func TestLoadVocabulary(t *testing.T) {
	t.Run("empty path uses default", func(t *testing.T) {
		v, err := classifier.LoadVocabulary("")
		require.NoError(t, err)
		assert.Equal(t, classifier.DefaultVocabulary(), v)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := classifier.LoadVocabulary(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("custom file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "vocab.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
sentinels: {no_responsible: "Sin responsable", no_date: "Sin fecha"}
ignore_names: [Fecha]
task_verbs:
  - {lang: es, words: [desplegar]}
decision_phrases:
  - {lang: es, words: [se aprueba]}
decision_cues: []
responsible_rules:
  - {name: dueno, lang: es, phrase: "Dueño:", position: after}
annotation_labels: ["Dueño:"]
`), 0o600))

		v, err := classifier.LoadVocabulary(path)
		require.NoError(t, err)

		c, err := classifier.New(v)
		require.NoError(t, err)

		got := c.Analyze("Ana: Se aprueba el presupuesto\nDesplegar v2. Dueño: Luis – 2024-09-09")
		assert.Equal(t, []string{"Se aprueba el presupuesto"}, got.Decisions)
		require.Len(t, got.Tasks, 1)
		assert.Equal(t, "Desplegar v2.", got.Tasks[0].Text)
		assert.Equal(t, "Luis", got.Tasks[0].Responsible)
		assert.Equal(t, "2024-09-09", got.Tasks[0].DueDate)
	})
}

func TestParseVocabularyErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "unknown key", yaml: `sentinelz: {}`},
		{name: "no sentinels", yaml: `
task_verbs: [{lang: en, words: [fix]}]
decision_phrases: [{lang: en, words: [we agree]}]
responsible_rules: [{name: a, phrase: "Owner:", position: after}]
`},
		{name: "no verbs", yaml: `
sentinels: {no_responsible: x, no_date: y}
decision_phrases: [{lang: en, words: [we agree]}]
responsible_rules: [{name: a, phrase: "Owner:", position: after}]
`},
		{name: "no decision phrases", yaml: `
sentinels: {no_responsible: x, no_date: y}
task_verbs: [{lang: en, words: [fix]}]
responsible_rules: [{name: a, phrase: "Owner:", position: after}]
`},
		{name: "no responsible rules", yaml: `
sentinels: {no_responsible: x, no_date: y}
task_verbs: [{lang: en, words: [fix]}]
decision_phrases: [{lang: en, words: [we agree]}]
`},
		{name: "bad position", yaml: `
sentinels: {no_responsible: x, no_date: y}
task_verbs: [{lang: en, words: [fix]}]
decision_phrases: [{lang: en, words: [we agree]}]
responsible_rules: [{name: a, phrase: "Owner:", position: middle}]
`},
		{name: "empty phrase", yaml: `
sentinels: {no_responsible: x, no_date: y}
task_verbs: [{lang: en, words: [fix]}]
decision_phrases: [{lang: en, words: [we agree]}]
responsible_rules: [{name: a, position: after}]
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := classifier.ParseVocabulary([]byte(tt.yaml))
			assert.ErrorIs(t, err, classifier.ErrInvalidVocabulary)
		})
	}
}
