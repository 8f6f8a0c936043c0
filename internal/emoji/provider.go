package emoji

import (
	"context"
	"time"

	apperrors "github.com/Spiderpig86/gittr/internal/errors"
	"github.com/Spiderpig86/gittr/internal/logger"
)

// Cache persists the last refreshed catalog between runs.
type Cache interface {
	Get(key string, v any) (time.Time, bool, error)
	Set(key string, v any) error
}

// Provider owns the in-memory catalog for the process lifetime.
type Provider struct {
	remote    Source
	fallback  Source
	cache     Cache
	catalog   []Emoji
	updatedAt time.Time
}

// NewProvider seeds the catalog from the cache entry of remote when there is
// one, otherwise from the bundled catalog. cache may be nil.
func NewProvider(ctx context.Context, remote Source, cache Cache) (*Provider, error) {
	p := &Provider{
		remote:   remote,
		fallback: BundledSource{},
		cache:    cache,
	}

	if p.loadCached(ctx) {
		return p, nil
	}

	catalog, err := p.fallback.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	p.catalog = catalog
	logger.Debug(ctx, "catalog loaded", "source", p.fallback.ID(), "count", len(catalog))
	return p, nil
}

func (p *Provider) loadCached(ctx context.Context) bool {
	if p.cache == nil || p.remote == nil {
		return false
	}

	var cached []Emoji
	updatedAt, ok, err := p.cache.Get(p.remote.ID(), &cached)
	if err != nil {
		logger.Warn(ctx, "ignoring cached emoji catalog", "error", err)
		return false
	}
	if !ok || len(cached) == 0 {
		return false
	}

	p.catalog = cached
	p.updatedAt = updatedAt
	logger.Debug(ctx, "catalog loaded", "source", "cache", "count", len(cached), "updated_at", updatedAt)
	return true
}

// Catalog returns the cached catalog, or fetches a fresh one from the remote
// source when forceRefresh is set. A failed refresh returns ErrCatalogFetch
// and leaves the cached catalog as it was.
func (p *Provider) Catalog(ctx context.Context, forceRefresh bool) ([]Emoji, error) {
	if !forceRefresh {
		return p.snapshot(), nil
	}

	if p.remote == nil {
		return nil, apperrors.ErrCatalogFetch.WithContext("reason", "no remote source configured")
	}

	fresh, err := p.remote.Fetch(ctx)
	if err != nil {
		return nil, apperrors.ErrCatalogFetch.WithError(err).WithContext("source", p.remote.ID())
	}

	p.catalog = fresh
	p.updatedAt = time.Now()

	if p.cache != nil {
		if err := p.cache.Set(p.remote.ID(), fresh); err != nil {
			logger.Warn(ctx, "could not persist the refreshed catalog", "error", err)
		}
	}

	logger.Info(ctx, "catalog refreshed", "source", p.remote.ID(), "count", len(fresh))
	return p.snapshot(), nil
}

// UpdatedAt is the time of the last successful refresh, zero when the
// bundled catalog is in use.
func (p *Provider) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Provider) snapshot() []Emoji {
	out := make([]Emoji, len(p.catalog))
	copy(out, p.catalog)
	return out
}
