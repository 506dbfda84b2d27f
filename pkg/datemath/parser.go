package datemath

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ISODate is the layout of task due dates.
const ISODate = "2006-01-02"

var ErrNotADate = errors.New("not an ISO date")

// Parser resolves due dates to days in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Madrid"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// ParseDueDate turns a YYYY-MM-DD due date into midnight of that day.
// Sentinels and impossible dates such as 2024-02-30 return ErrNotADate.
func (p *Parser) ParseDueDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(ISODate, strings.TrimSpace(s), p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrNotADate, s)
	}
	return t, nil
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// NextDay returns midnight of the following day, the exclusive end of an all-day event.
func (p *Parser) NextDay(startOfDay time.Time) time.Time {
	return p.StartOfDay(startOfDay).AddDate(0, 0, 1)
}
