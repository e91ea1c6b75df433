package templates

import (
	"context"
	"errors"

	"github.com/madsmiley/mailbridge/pkg/emailtype"
)

// englishLanguage is the hard-coded safety net of the fallback search,
// matching the English fallback inside default values.
const englishLanguage = "en"

// Resolver selects the template content for a (slug, language, variant)
// request. Stored rows are searched across six tiers from most to least
// specific; when none matches, the registry's default content for the slug is
// synthesized instead.
//
// Variant specificity and language specificity are independent axes, with the
// variant checked first at each language tier: content authored for the exact
// request beats broader fallbacks, and the requested language beats the
// English safety net, but a variant match still beats a language match when
// only one of the two can be satisfied.
type Resolver struct {
	finder          Finder
	registry        *emailtype.Registry
	defaultLanguage string
}

// NewResolver creates a resolver over stored rows and registered defaults.
// defaultLanguage substitutes for requests that carry no language; empty
// means English.
func NewResolver(finder Finder, registry *emailtype.Registry, defaultLanguage string) *Resolver {
	if defaultLanguage == "" {
		defaultLanguage = englishLanguage
	}
	return &Resolver{
		finder:          finder,
		registry:        registry,
		defaultLanguage: defaultLanguage,
	}
}

// Resolve runs the fallback search, first hit wins:
//
//	1. slug + language + variant            (variant requests only)
//	2. slug + language, generic
//	3. slug + "en" + variant                (non-English variant requests)
//	4. slug + "en", generic                 (non-English requests)
//	5. slug + variant, any language         (variant requests only)
//	6. slug, generic, any language
//
// then registry defaults for the slug. A storage failure aborts the search
// and surfaces as [ErrLookupFailed]; a miss on every tier with no registry
// default is [ErrNotFound].
func (r *Resolver) Resolve(ctx context.Context, slug, language, variant string) (*Rendered, error) {
	if language == "" {
		language = r.defaultLanguage
	}

	if variant != "" {
		if t, err := r.find(ctx, slug, language, variant); err != nil {
			return nil, err
		} else if t != nil {
			return renderedFromRow(t), nil
		}
	}

	if t, err := r.find(ctx, slug, language, ""); err != nil {
		return nil, err
	} else if t != nil {
		return renderedFromRow(t), nil
	}

	if language != englishLanguage && variant != "" {
		if t, err := r.find(ctx, slug, englishLanguage, variant); err != nil {
			return nil, err
		} else if t != nil {
			return renderedFromRow(t), nil
		}
	}

	if language != englishLanguage {
		if t, err := r.find(ctx, slug, englishLanguage, ""); err != nil {
			return nil, err
		} else if t != nil {
			return renderedFromRow(t), nil
		}
	}

	if variant != "" {
		if t, err := r.findAnyLanguage(ctx, slug, variant); err != nil {
			return nil, err
		} else if t != nil {
			return renderedFromRow(t), nil
		}
	}

	if t, err := r.findAnyLanguage(ctx, slug, ""); err != nil {
		return nil, err
	} else if t != nil {
		return renderedFromRow(t), nil
	}

	return r.renderedFromDefaults(slug, language, variant)
}

func (r *Resolver) find(ctx context.Context, slug, language, variation string) (*Template, error) {
	t, err := r.finder.FindActive(ctx, slug, language, variation)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Join(ErrLookupFailed, err)
	}
	return t, nil
}

func (r *Resolver) findAnyLanguage(ctx context.Context, slug, variation string) (*Template, error) {
	t, err := r.finder.FindActiveAnyLanguage(ctx, slug, variation)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Join(ErrLookupFailed, err)
	}
	return t, nil
}

func renderedFromRow(t *Template) *Rendered {
	return &Rendered{
		Subject:   t.Subject,
		Content:   t.Content,
		Language:  t.Language,
		Variation: t.Variation,
		Status:    t.Status,
	}
}

// renderedFromDefaults synthesizes a template from the registry entry for
// slug. Subject and content resolve independently, so a flat subject can pair
// with per-language content.
func (r *Resolver) renderedFromDefaults(slug, language, variant string) (*Rendered, error) {
	if r.registry == nil {
		return nil, ErrNotFound
	}

	def, ok := r.registry.Get(slug)
	if !ok || def.DefaultContent == nil || def.DefaultContent.IsZero() {
		return nil, ErrNotFound
	}

	var subject string
	if def.DefaultSubject != nil && !def.DefaultSubject.IsZero() {
		subject = def.DefaultSubject.Resolve(language, variant)
	}

	return &Rendered{
		Subject:   subject,
		Content:   def.DefaultContent.Resolve(language, variant),
		Language:  language,
		Variation: variant,
		Status:    StatusActive,
	}, nil
}
