package classifier

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultVocabularyYAML []byte

// Rule positions for responsible-party phrasings.
const (
	PositionAfter  = "after"  // "Responsable: Ana"
	PositionBefore = "before" // "Luis se encarga de"
)

// Vocabulary is the configuration data behind the classifier.
// It can be extended without touching the classification algorithm.
type Vocabulary struct {
	Sentinels        Sentinels         `yaml:"sentinels"`
	IgnoreNames      []string          `yaml:"ignore_names"`
	TaskVerbs        []WordSet         `yaml:"task_verbs"`
	DecisionPhrases  []WordSet         `yaml:"decision_phrases"`
	DecisionCues     []WordSet         `yaml:"decision_cues"`
	ResponsibleRules []ResponsibleRule `yaml:"responsible_rules"`
	AnnotationLabels []string          `yaml:"annotation_labels"`
}

// Sentinels are the placeholders used when a task field is not found.
type Sentinels struct {
	NoResponsible string `yaml:"no_responsible"`
	NoDate        string `yaml:"no_date"`
}

// WordSet is a list of words or phrases tagged with their language.
type WordSet struct {
	Lang  string   `yaml:"lang"`
	Words []string `yaml:"words"`
}

// ResponsibleRule is one phrasing that names the owner of a task.
type ResponsibleRule struct {
	Name     string `yaml:"name"`
	Lang     string `yaml:"lang"`
	Phrase   string `yaml:"phrase"`
	Position string `yaml:"position"`
}

var ErrInvalidVocabulary = errors.New("invalid vocabulary")

// DefaultVocabulary returns the embedded es/en vocabulary.
func DefaultVocabulary() Vocabulary {
	v, err := ParseVocabulary(defaultVocabularyYAML)
	if err != nil {
		panic(fmt.Sprintf("classifier: embedded vocabulary: %v", err))
	}
	return v
}

// LoadVocabulary reads a vocabulary file. An empty path yields the default vocabulary.
func LoadVocabulary(path string) (Vocabulary, error) {
	if path == "" {
		return DefaultVocabulary(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("read vocabulary %q: %w", path, err)
	}
	return ParseVocabulary(data)
}

// ParseVocabulary decodes and validates vocabulary YAML. Unknown keys are rejected.
func ParseVocabulary(data []byte) (Vocabulary, error) {
	var v Vocabulary
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&v); err != nil {
		return Vocabulary{}, fmt.Errorf("%w: %v", ErrInvalidVocabulary, err)
	}
	if err := v.Validate(); err != nil {
		return Vocabulary{}, err
	}
	return v, nil
}

// Validate checks that every list the classifier needs is populated.
func (v Vocabulary) Validate() error {
	switch {
	case v.Sentinels.NoResponsible == "" || v.Sentinels.NoDate == "":
		return fmt.Errorf("%w: sentinels must not be empty", ErrInvalidVocabulary)
	case len(words(v.TaskVerbs)) == 0:
		return fmt.Errorf("%w: task_verbs is empty", ErrInvalidVocabulary)
	case len(words(v.DecisionPhrases)) == 0:
		return fmt.Errorf("%w: decision_phrases is empty", ErrInvalidVocabulary)
	case len(v.ResponsibleRules) == 0:
		return fmt.Errorf("%w: responsible_rules is empty", ErrInvalidVocabulary)
	}

	for i, r := range v.ResponsibleRules {
		if r.Phrase == "" {
			return fmt.Errorf("%w: responsible rule %d has no phrase", ErrInvalidVocabulary, i)
		}
		if r.Position != PositionAfter && r.Position != PositionBefore {
			return fmt.Errorf("%w: responsible rule %q: position must be %q or %q",
				ErrInvalidVocabulary, r.Name, PositionAfter, PositionBefore)
		}
	}
	return nil
}

// Languages lists the language tags present in the vocabulary, in first-seen order.
func (v Vocabulary) Languages() []string {
	seen := map[string]bool{}
	var langs []string
	add := func(lang string) {
		if lang != "" && !seen[lang] {
			seen[lang] = true
			langs = append(langs, lang)
		}
	}
	for _, sets := range [][]WordSet{v.TaskVerbs, v.DecisionPhrases, v.DecisionCues} {
		for _, s := range sets {
			add(s.Lang)
		}
	}
	for _, r := range v.ResponsibleRules {
		add(r.Lang)
	}
	return langs
}

// words flattens word sets, dropping blanks.
func words(sets []WordSet) []string {
	var out []string
	for _, s := range sets {
		for _, w := range s.Words {
			if w != "" {
				out = append(out, w)
			}
		}
	}
	return out
}
