package mailbridge

import (
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/madsmiley/mailbridge/pkg/cache"
	"github.com/madsmiley/mailbridge/pkg/emailtype"
	"github.com/madsmiley/mailbridge/pkg/mailer"
	"github.com/madsmiley/mailbridge/pkg/templates"
)

// Option configures the Bridge.
type Option func(*Bridge)

// WithConfig sets the mailer behavior settings. The zero Config works:
// English default language, send history on.
func WithConfig(cfg Config) Option {
	return func(b *Bridge) { b.config = cfg }
}

// WithTemplateFinder supplies stored-template lookups, typically a
// *postgres.TemplateStore. Without it only registered defaults resolve.
func WithTemplateFinder(f templates.Finder) Option {
	return func(b *Bridge) { b.finder = f }
}

// WithTemplateCache wraps the configured finder in a read-through cache.
// The wrap happens at the end of New, so option order does not matter.
func WithTemplateCache(c cache.Cache[templates.Template], ttl time.Duration) Option {
	return func(b *Bridge) {
		b.cacheWrap = func(f templates.Finder) templates.Finder {
			return templates.NewCachedFinder(f, c, ttl)
		}
	}
}

// WithRedisTemplateCache wraps the configured finder in a Redis-backed
// read-through cache so several instances share one warm cache. The wrap
// happens at the end of New, so option order does not matter.
func WithRedisTemplateCache(client goredis.UniversalClient, prefix string, ttl time.Duration) Option {
	return func(b *Bridge) {
		b.cacheWrap = func(f templates.Finder) templates.Finder {
			c := cache.NewRedis[templates.Template](client, prefix)
			return templates.NewCachedFinder(f, c, ttl)
		}
	}
}

// WithLogStore enables send history.
func WithLogStore(s mailer.LogStore) Option {
	return func(b *Bridge) { b.logStore = s }
}

// WithEmailTypeStore supplies the display mirror for registered types, used
// by SyncEmailTypes.
func WithEmailTypeStore(s emailtype.Store) Option {
	return func(b *Bridge) { b.typeStore = s }
}

// WithSiteInfo supplies the site identity behind the site variables.
func WithSiteInfo(s SiteInfo) Option {
	return func(b *Bridge) { b.site = s }
}

// WithLogger sets the structured logger.
// If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(b *Bridge) {
		if l != nil {
			b.log = l
		}
	}
}

// WithRegistrars queues registrars for the registration sweep New runs.
func WithRegistrars(registrars ...Registrar) Option {
	return func(b *Bridge) {
		b.registrars = append(b.registrars, registrars...)
	}
}

// WithoutCoreTypes skips the built-in welcome and notification types for
// hosts that define their whole catalog themselves.
func WithoutCoreTypes() Option {
	return func(b *Bridge) { b.skipCore = true }
}
