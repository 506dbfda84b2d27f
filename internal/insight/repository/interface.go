package repository

import (
	"context"
	"errors"

	"meeting-insights/internal/insight"
)

// ErrNotFound is returned when an id is unknown or has expired.
var ErrNotFound = errors.New("analysis not found")

// Repository stores analyses so they can be exported or scheduled later.
type Repository interface {
	Save(ctx context.Context, a insight.Analysis) error
	Get(ctx context.Context, id string) (insight.Analysis, error)
	Len() int
}
