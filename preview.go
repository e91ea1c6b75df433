package mailbridge

import (
	"context"

	"github.com/madsmiley/mailbridge/pkg/placeholder"
	"github.com/madsmiley/mailbridge/pkg/sanitizer"
)

// Preview is a rendered example of a template: resolved, substituted with
// the type's preview values, and sanitized for safe display in an admin
// surface. Nothing is sent.
type Preview struct {
	Subject   string
	HTML      string
	Language  string
	Variation string
}

// Preview renders an example of the template for (slug, language, variant)
// using the registered preview values. Unknown tokens stay verbatim, which
// is exactly what an admin wants to see.
func (b *Bridge) Preview(ctx context.Context, slug, language, variant string) (*Preview, error) {
	rendered, err := b.resolver.Resolve(ctx, slug, language, variant)
	if err != nil {
		return nil, err
	}

	var vars placeholder.Vars
	if def, ok := b.registry.Get(slug); ok {
		vars = def.PreviewVars(language, variant)
	}

	return &Preview{
		Subject:   placeholder.Replace(rendered.Subject, vars),
		HTML:      sanitizer.SanitizeEmailHTML(placeholder.Replace(rendered.Content, vars)),
		Language:  rendered.Language,
		Variation: rendered.Variation,
	}, nil
}
