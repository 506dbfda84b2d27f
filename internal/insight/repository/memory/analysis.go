// Package memory keeps analyses in a size-bounded LRU whose entries expire.
package memory

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"meeting-insights/internal/insight"
	"meeting-insights/internal/insight/repository"
)

const (
	DefaultSize = 256
	DefaultTTL  = 30 * time.Minute
)

type implRepository struct {
	cache *expirable.LRU[string, insight.Analysis]
}

// New creates an in-memory repository. Non-positive size or ttl fall back to defaults.
func New(size int, ttl time.Duration) repository.Repository {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &implRepository{
		cache: expirable.NewLRU[string, insight.Analysis](size, nil, ttl),
	}
}

func (r *implRepository) Save(ctx context.Context, a insight.Analysis) error {
	r.cache.Add(a.ID, a)
	return nil
}

func (r *implRepository) Get(ctx context.Context, id string) (insight.Analysis, error) {
	a, ok := r.cache.Get(id)
	if !ok {
		return insight.Analysis{}, repository.ErrNotFound
	}
	return a, nil
}

func (r *implRepository) Len() int {
	return r.cache.Len()
}
