package templates_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/madsmiley/mailbridge/pkg/cache"
	"github.com/madsmiley/mailbridge/pkg/templates"
)

// countingFinder counts lookups so tests can assert when the cache answers.
type countingFinder struct {
	inner   fakeFinder
	exact   int
	anyLang int
}

func (f *countingFinder) FindActive(ctx context.Context, slug, language, variation string) (*templates.Template, error) {
	f.exact++
	return f.inner.FindActive(ctx, slug, language, variation)
}

func (f *countingFinder) FindActiveAnyLanguage(ctx context.Context, slug, variation string) (*templates.Template, error) {
	f.anyLang++
	return f.inner.FindActiveAnyLanguage(ctx, slug, variation)
}

func TestCachedFinder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("second lookup served from cache", func(t *testing.T) {
		t.Parallel()

		finder := &countingFinder{inner: fakeFinder{rows: []templates.Template{
			row(1, "welcome_email", "en", "", "hello"),
		}}}
		c := cache.NewMemory[templates.Template](0)
		defer c.Close()
		cached := templates.NewCachedFinder(finder, c, time.Minute)

		first, err := cached.FindActive(ctx, "welcome_email", "en", "")
		require.NoError(t, err)
		second, err := cached.FindActive(ctx, "welcome_email", "en", "")
		require.NoError(t, err)

		require.Equal(t, first, second)
		require.Equal(t, 1, finder.exact)
	})

	t.Run("misses are not cached", func(t *testing.T) {
		t.Parallel()

		finder := &countingFinder{}
		c := cache.NewMemory[templates.Template](0)
		defer c.Close()
		cached := templates.NewCachedFinder(finder, c, time.Minute)

		_, err := cached.FindActive(ctx, "absent", "en", "")
		require.ErrorIs(t, err, templates.ErrNotFound)
		_, err = cached.FindActive(ctx, "absent", "en", "")
		require.ErrorIs(t, err, templates.ErrNotFound)

		require.Equal(t, 2, finder.exact)
	})

	t.Run("exact and any-language keys do not collide", func(t *testing.T) {
		t.Parallel()

		finder := &countingFinder{inner: fakeFinder{rows: []templates.Template{
			row(1, "welcome_email", "en", "", "hello"),
		}}}
		c := cache.NewMemory[templates.Template](0)
		defer c.Close()
		cached := templates.NewCachedFinder(finder, c, time.Minute)

		_, err := cached.FindActive(ctx, "welcome_email", "en", "")
		require.NoError(t, err)
		_, err = cached.FindActiveAnyLanguage(ctx, "welcome_email", "")
		require.NoError(t, err)

		require.Equal(t, 1, finder.exact)
		require.Equal(t, 1, finder.anyLang)
	})

	t.Run("invalidate forces the next lookup through", func(t *testing.T) {
		t.Parallel()

		finder := &countingFinder{inner: fakeFinder{rows: []templates.Template{
			row(1, "welcome_email", "fr", "admin", "bonjour"),
		}}}
		c := cache.NewMemory[templates.Template](0)
		defer c.Close()
		cached := templates.NewCachedFinder(finder, c, time.Minute)

		_, err := cached.FindActive(ctx, "welcome_email", "fr", "admin")
		require.NoError(t, err)
		_, err = cached.FindActiveAnyLanguage(ctx, "welcome_email", "admin")
		require.NoError(t, err)

		require.NoError(t, cached.Invalidate(ctx, "welcome_email", "fr", "admin"))

		_, err = cached.FindActive(ctx, "welcome_email", "fr", "admin")
		require.NoError(t, err)
		_, err = cached.FindActiveAnyLanguage(ctx, "welcome_email", "admin")
		require.NoError(t, err)

		require.Equal(t, 2, finder.exact)
		require.Equal(t, 2, finder.anyLang)
	})
}
