package classifier

import (
	"regexp"
	"strings"
)

const (
	// nameClass is a speaker or owner name: letters (accented included) and spaces.
	nameClass = `[\p{L} ]+`
	// nonWord mirrors a Unicode-aware \b: letters, marks, digits and '_' are word characters.
	nonWord = `[^\p{L}\p{M}\p{N}_]`
	// space also covers Unicode separators such as NBSP.
	space = `[\s\p{Z}]`
)

var (
	participantPattern   = regexp.MustCompile(`^\*?` + space + `*(\p{L}+):`)
	speakerPrefixPattern = regexp.MustCompile(`^\p{L}+:` + space + `*`)
	isoDatePattern       = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	dateSuffixPattern    = regexp.MustCompile(`– \d{4}-\d{2}-\d{2}`)
)

// extractor pulls one field out of a line.
type extractor interface {
	extract(line string) (string, bool)
}

// firstMatch evaluates extractors in priority order and returns the first success,
// falling back to the sentinel when none match.
func firstMatch[E extractor](rules []E, line, sentinel string) string {
	for _, r := range rules {
		if v, ok := r.extract(line); ok {
			return v
		}
	}
	return sentinel
}

// responsibleRule captures an owner name around a fixed phrase.
type responsibleRule struct {
	name    string
	pattern *regexp.Regexp
}

func (r responsibleRule) extract(line string) (string, bool) {
	m := r.pattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

type patternExtractor struct {
	pattern *regexp.Regexp
}

func (p patternExtractor) extract(line string) (string, bool) {
	m := p.pattern.FindString(line)
	return m, m != ""
}

// ruleSet is a compiled Vocabulary.
type ruleSet struct {
	ignore      map[string]struct{}
	taskVerb    *regexp.Regexp
	decision    *regexp.Regexp
	cues        []string
	responsible []responsibleRule
	dates       []patternExtractor
	annotation  *regexp.Regexp
	sentinels   Sentinels
}

func compile(v Vocabulary) (*ruleSet, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}

	rs := &ruleSet{
		ignore:    make(map[string]struct{}, len(v.IgnoreNames)),
		sentinels: v.Sentinels,
		dates:     []patternExtractor{{pattern: isoDatePattern}},
	}
	for _, name := range v.IgnoreNames {
		rs.ignore[name] = struct{}{}
	}

	var err error
	rs.taskVerb, err = regexp.Compile(`(?i)(?:^|` + nonWord + `)(?:` + alternation(words(v.TaskVerbs)) + `)(?:` + nonWord + `|$)`)
	if err != nil {
		return nil, err
	}
	rs.decision, err = regexp.Compile(`(?i)(?:` + alternation(words(v.DecisionPhrases)) + `)`)
	if err != nil {
		return nil, err
	}

	for _, cue := range words(v.DecisionCues) {
		rs.cues = append(rs.cues, strings.ToLower(cue))
	}

	for _, r := range v.ResponsibleRules {
		expr := `(?i)` + regexp.QuoteMeta(r.Phrase) + space + `*(` + nameClass + `)`
		if r.Position == PositionBefore {
			expr = `(?i)(` + nameClass + `)` + space + `+` + regexp.QuoteMeta(r.Phrase)
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, err
		}
		rs.responsible = append(rs.responsible, responsibleRule{name: r.Name, pattern: re})
	}

	if len(v.AnnotationLabels) > 0 {
		rs.annotation, err = regexp.Compile(`(?:` + alternation(v.AnnotationLabels) + `).*$`)
		if err != nil {
			return nil, err
		}
	}

	return rs, nil
}

// alternation joins literals into a regexp alternation.
func alternation(literals []string) string {
	quoted := make([]string, 0, len(literals))
	for _, l := range literals {
		quoted = append(quoted, regexp.QuoteMeta(l))
	}
	return strings.Join(quoted, "|")
}

// speaker returns the leading "Name:" of a trimmed line if it counts as a participant.
func (rs *ruleSet) speaker(line string) (string, bool) {
	m := participantPattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	name := strings.TrimSpace(m[1])
	if _, ignored := rs.ignore[name]; ignored {
		return "", false
	}
	return name, true
}

func (rs *ruleSet) hasDecisionPhrase(line string) bool {
	return rs.decision.MatchString(line)
}

func (rs *ruleSet) hasTaskVerb(line string) bool {
	return rs.taskVerb.MatchString(line)
}

func (rs *ruleSet) hasDecisionCue(line string) bool {
	lower := strings.ToLower(line)
	for _, cue := range rs.cues {
		if strings.Contains(lower, cue) {
			return true
		}
	}
	return false
}

// taskText strips the responsible annotation and "– YYYY-MM-DD" markers.
func (rs *ruleSet) taskText(line string) string {
	text := line
	if rs.annotation != nil {
		text = strings.TrimSpace(rs.annotation.ReplaceAllString(text, ""))
	}
	return strings.TrimSpace(dateSuffixPattern.ReplaceAllString(text, ""))
}
