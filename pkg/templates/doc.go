// Package templates resolves email templates for a (slug, language, variant)
// request. Stored rows authored through the admin surface are searched across
// six fallback tiers from most to least specific; when no row matches, the
// email-type registry's default subject and content are synthesized instead.
//
// The search order, first hit wins:
//
//	1. slug + language + variant
//	2. slug + language, generic variation
//	3. slug + English + variant
//	4. slug + English, generic variation
//	5. slug + variant, any language
//	6. slug, generic variation, any language
//	7. registry defaults for slug
//
// Stored rows come from a [Finder], typically the Postgres store, optionally
// wrapped in a [CachedFinder]:
//
//	finder := templates.NewCachedFinder(store, cache.NewMemory[templates.Template](time.Minute), 0)
//	resolver := templates.NewResolver(finder, registry, "en")
//	rendered, err := resolver.Resolve(ctx, "welcome_email", "fr", "premium")
package templates
