package templates

import (
	"context"
	"errors"
	"time"

	"github.com/madsmiley/mailbridge/pkg/cache"
)

// DefaultCacheTTL bounds staleness when the admin surface edits rows behind
// the cache's back without invalidating.
const DefaultCacheTTL = 5 * time.Minute

// CachedFinder is a read-through cache over a Finder. Keys mirror the two
// storage lookups exactly, so a cached entry can never answer a different
// query than the one that produced it. Misses are not cached.
type CachedFinder struct {
	next  Finder
	cache cache.Cache[Template]
	ttl   time.Duration
}

// NewCachedFinder wraps next with a read-through cache. A non-positive ttl
// falls back to [DefaultCacheTTL].
func NewCachedFinder(next Finder, c cache.Cache[Template], ttl time.Duration) *CachedFinder {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedFinder{next: next, cache: c, ttl: ttl}
}

// FindActive implements Finder.
func (f *CachedFinder) FindActive(ctx context.Context, slug, language, variation string) (*Template, error) {
	return f.lookup(ctx, exactKey(slug, language, variation), func(ctx context.Context) (*Template, error) {
		return f.next.FindActive(ctx, slug, language, variation)
	})
}

// FindActiveAnyLanguage implements Finder.
func (f *CachedFinder) FindActiveAnyLanguage(ctx context.Context, slug, variation string) (*Template, error) {
	return f.lookup(ctx, anyLanguageKey(slug, variation), func(ctx context.Context) (*Template, error) {
		return f.next.FindActiveAnyLanguage(ctx, slug, variation)
	})
}

func (f *CachedFinder) lookup(ctx context.Context, key string, find func(ctx context.Context) (*Template, error)) (*Template, error) {
	t, err := cache.GetOrSet(ctx, f.cache, key, f.ttl, func(ctx context.Context) (Template, error) {
		row, err := find(ctx)
		if err != nil {
			return Template{}, err
		}
		return *row, nil
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Invalidate drops the cached entries a row with these coordinates can have
// populated: its exact key and the any-language keys for its variation and
// the generic variation. Call it after creating, updating, or deleting a row.
func (f *CachedFinder) Invalidate(ctx context.Context, slug, language, variation string) error {
	errs := []error{
		f.cache.Delete(ctx, exactKey(slug, language, variation)),
		f.cache.Delete(ctx, anyLanguageKey(slug, variation)),
	}
	if variation != "" {
		errs = append(errs, f.cache.Delete(ctx, anyLanguageKey(slug, "")))
	}
	return errors.Join(errs...)
}

func exactKey(slug, language, variation string) string {
	return "tpl:" + slug + ":" + language + ":" + variation
}

func anyLanguageKey(slug, variation string) string {
	return "tpl:any:" + slug + ":" + variation
}
