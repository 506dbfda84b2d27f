// Package classifier extracts participation, decisions and action items from
// meeting minutes with a single pass of per-line pattern rules.
//
// Each line is checked, in order, for a "Name:" speaker prefix (always), a
// decision phrase, and a task verb. A decision phrase always consumes the
// line, even when the decision itself is dropped because it reads like a task.
package classifier

import (
	"strings"
	"sync"

	"meeting-insights/internal/model"
)

// Kind is the outcome of classifying one line.
type Kind int

const (
	KindNone            Kind = iota
	KindDecision             // appended to decisions
	KindDecisionDropped      // decision phrase found, but the remainder reads like a task
	KindTask                 // appended to tasks
	KindTaskSkipped          // task verb found, but the line carries a decision cue
)

func (k Kind) String() string {
	switch k {
	case KindDecision:
		return "decision"
	case KindDecisionDropped:
		return "decision_dropped"
	case KindTask:
		return "task"
	case KindTaskSkipped:
		return "task_skipped"
	default:
		return "none"
	}
}

// LineResult describes how a single line was classified.
type LineResult struct {
	Number   int    // 1-based line number
	Line     string // trimmed line
	Speaker  string // participant credited for the line, "" if none
	Kind     Kind
	Decision string     // set when Kind == KindDecision
	Task     model.Task // set when Kind == KindTask
}

// Stats counts line outcomes of one analysis.
type Stats struct {
	Lines         int
	Participation int
	ByKind        map[Kind]int
}

// Classifier is safe for concurrent use; it holds only compiled, read-only rules.
type Classifier struct {
	rules *ruleSet
}

// New compiles a vocabulary into a Classifier.
func New(v Vocabulary) (*Classifier, error) {
	rs, err := compile(v)
	if err != nil {
		return nil, err
	}
	return &Classifier{rules: rs}, nil
}

var (
	defaultOnce       sync.Once
	defaultClassifier *Classifier
)

// Default returns the Classifier built from the embedded vocabulary.
func Default() *Classifier {
	defaultOnce.Do(func() {
		c, err := New(DefaultVocabulary())
		if err != nil {
			panic("classifier: default vocabulary does not compile: " + err.Error())
		}
		defaultClassifier = c
	})
	return defaultClassifier
}

// Analyze runs the default classifier over text.
func Analyze(text string) model.InsightRecord {
	return Default().Analyze(text)
}

// Analyze builds a fresh InsightRecord from text. It never fails: text without
// matches yields empty collections.
func (c *Classifier) Analyze(text string) model.InsightRecord {
	record, _ := c.AnalyzeWithStats(text)
	return record
}

// AnalyzeWithStats is Analyze plus per-kind line counts.
func (c *Classifier) AnalyzeWithStats(text string) (model.InsightRecord, Stats) {
	record := model.NewInsightRecord()
	stats := Stats{ByKind: map[Kind]int{}}

	for i, line := range Lines(text) {
		res := c.ClassifyLine(i+1, line)
		stats.Lines++

		if res.Speaker != "" {
			record.Participation.Inc(res.Speaker)
			stats.Participation++
		}
		if res.Kind != KindNone {
			stats.ByKind[res.Kind]++
		}

		switch res.Kind {
		case KindDecision:
			record.Decisions = append(record.Decisions, res.Decision)
		case KindTask:
			record.Tasks = append(record.Tasks, res.Task)
		}
	}

	return record, stats
}

// Explain classifies every line and returns the per-line outcomes.
func (c *Classifier) Explain(text string) []LineResult {
	lines := Lines(text)
	out := make([]LineResult, 0, len(lines))
	for i, line := range lines {
		out = append(out, c.ClassifyLine(i+1, line))
	}
	return out
}

// ClassifyLine applies the participation, decision and task rules to one line.
func (c *Classifier) ClassifyLine(number int, raw string) LineResult {
	rs := c.rules
	line := strings.TrimSpace(raw)
	res := LineResult{Number: number, Line: line}

	if name, ok := rs.speaker(line); ok {
		res.Speaker = name
	}

	if rs.hasDecisionPhrase(line) {
		decision := speakerPrefixPattern.ReplaceAllString(line, "")
		if rs.hasTaskVerb(decision) {
			res.Kind = KindDecisionDropped
			return res
		}
		res.Kind = KindDecision
		res.Decision = decision
		return res
	}

	if !rs.hasTaskVerb(line) {
		return res
	}
	if rs.hasDecisionCue(line) {
		res.Kind = KindTaskSkipped
		return res
	}

	res.Kind = KindTask
	res.Task = model.Task{
		Text:        rs.taskText(line),
		Responsible: firstMatch(rs.responsible, line, rs.sentinels.NoResponsible),
		DueDate:     firstMatch(rs.dates, line, rs.sentinels.NoDate),
	}
	return res
}

// Sentinels returns the placeholders this classifier emits.
func (c *Classifier) Sentinels() Sentinels {
	return c.rules.sentinels
}
