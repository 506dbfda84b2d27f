package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Participation tallies speaker lines per name.
// Names are case-sensitive and remembered in order of first appearance
// so every rendering of the same record is identical.
type Participation struct {
	names  []string
	counts map[string]int
}

// Speaker is one participation entry.
type Speaker struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func NewParticipation() Participation {
	return Participation{names: []string{}, counts: map[string]int{}}
}

// Inc adds one intervention for name.
func (p *Participation) Inc(name string) {
	if p.counts == nil {
		p.counts = map[string]int{}
	}
	if _, ok := p.counts[name]; !ok {
		p.names = append(p.names, name)
	}
	p.counts[name]++
}

// Count returns the tally for name (0 when absent).
func (p Participation) Count(name string) int {
	return p.counts[name]
}

// Len returns the number of distinct speakers.
func (p Participation) Len() int {
	return len(p.names)
}

// Speakers returns the tally in first-appearance order.
func (p Participation) Speakers() []Speaker {
	out := make([]Speaker, 0, len(p.names))
	for _, name := range p.names {
		out = append(out, Speaker{Name: name, Count: p.counts[name]})
	}
	return out
}

// Map returns a copy of the tally as a plain map.
func (p Participation) Map() map[string]int {
	out := make(map[string]int, len(p.counts))
	for k, v := range p.counts {
		out[k] = v
	}
	return out
}

// MarshalJSON writes the tally as a JSON object, keys in first-appearance order.
func (p Participation) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range p.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalNoEscape(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		fmt.Fprintf(&buf, ":%d", p.counts[name])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object of name -> count, keeping document key order.
func (p *Participation) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("participation: expected object, got %v", tok)
	}

	*p = NewParticipation()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("participation: expected string key, got %v", tok)
		}
		var count int
		if err := dec.Decode(&count); err != nil {
			return fmt.Errorf("participation: count for %q: %w", name, err)
		}
		if count < 0 {
			return fmt.Errorf("participation: negative count for %q", name)
		}
		if _, seen := p.counts[name]; !seen {
			p.names = append(p.names, name)
		}
		p.counts[name] = count
	}
	_, err = dec.Token()
	return err
}

func marshalNoEscape(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
