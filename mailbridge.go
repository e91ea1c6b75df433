package mailbridge

import (
	"context"
	"errors"
	"log/slog"

	"github.com/madsmiley/mailbridge/pkg/emailtype"
	"github.com/madsmiley/mailbridge/pkg/logger"
	"github.com/madsmiley/mailbridge/pkg/mailer"
	"github.com/madsmiley/mailbridge/pkg/placeholder"
	"github.com/madsmiley/mailbridge/pkg/templates"
)

// Type aliases - public API
type (
	// Config holds mailer behavior settings.
	Config = mailer.Config

	// SendParams describes one templated send.
	SendParams = mailer.SendParams

	// Vars is the substitution value map.
	Vars = placeholder.Vars

	// Definition is the declared contract of an email type.
	Definition = emailtype.Definition

	// Variable declares one required substitution key.
	Variable = emailtype.Variable

	// Variation declares an allowed variant key.
	Variation = emailtype.Variation

	// DefaultValue is the polymorphic shape of default subjects, content,
	// and preview values.
	DefaultValue = emailtype.DefaultValue

	// Text is a flat default value, the same string for every language.
	Text = emailtype.Text

	// PerLanguage holds one value per language, in declaration order.
	PerLanguage = emailtype.PerLanguage

	// PerLanguageVariants holds per-variant values inside each language.
	PerLanguageVariants = emailtype.PerLanguageVariants

	// Registrar contributes email type definitions during the sweep.
	Registrar = emailtype.Registrar

	// RegistrarFunc adapts a plain function to Registrar.
	RegistrarFunc = emailtype.RegistrarFunc

	// Rendered is a resolved template before substitution.
	Rendered = templates.Rendered

	// Sender is the delivery interface providers implement.
	Sender = mailer.Sender

	// Email is a fully-prepared message.
	Email = mailer.Email

	// SiteInfo describes the sending site.
	SiteInfo = mailer.SiteInfo

	// StaticSite is a fixed-value SiteInfo.
	StaticSite = mailer.StaticSite

	// LogEntry records one send attempt.
	LogEntry = mailer.LogEntry

	// LogStore persists send history.
	LogStore = mailer.LogStore
)

// Bridge is the assembled library: registry, resolver, and mailer behind one
// handle. Construct it once at startup, register types, then send.
type Bridge struct {
	registry *emailtype.Registry
	resolver *templates.Resolver
	mailer   *mailer.Mailer

	finder     templates.Finder
	cacheWrap  func(templates.Finder) templates.Finder
	logStore   mailer.LogStore
	typeStore  emailtype.Store
	site       mailer.SiteInfo
	registrars []emailtype.Registrar
	config     Config
	log        *slog.Logger
	skipCore   bool
}

// ErrNoSender rejects construction without a delivery provider.
var ErrNoSender = errors.New("mailbridge: a sender is required")

// New assembles a Bridge around a delivery provider. Registration sweeps run
// inside New; RegisterEmailType can add more types afterwards, before the
// first send.
func New(sender mailer.Sender, opts ...Option) (*Bridge, error) {
	if sender == nil {
		return nil, ErrNoSender
	}
	b := &Bridge{
		registry: emailtype.NewRegistry(),
		log:      logger.NewNope(),
	}
	for _, opt := range opts {
		opt(b)
	}

	// Caching wraps after all options apply, so the finder and cache options
	// compose in any order.
	if b.cacheWrap != nil && b.finder != nil {
		b.finder = b.cacheWrap(b.finder)
	}

	if !b.skipCore {
		b.registry.Sweep(emailtype.CoreRegistrar())
	}
	b.registry.Sweep(b.registrars...)

	b.resolver = templates.NewResolver(b.finderOrNone(), b.registry, b.config.DefaultLanguage)

	mailerOpts := []mailer.Option{mailer.WithLogger(b.log)}
	if b.logStore != nil {
		mailerOpts = append(mailerOpts, mailer.WithLogStore(b.logStore))
	}
	if b.site != nil {
		mailerOpts = append(mailerOpts, mailer.WithSiteInfo(b.site))
	}
	b.mailer = mailer.New(b.resolver, b.registry, sender, b.config, mailerOpts...)

	return b, nil
}

// finderOrNone substitutes an always-missing finder when storage is not
// configured, leaving registry defaults as the only template source.
func (b *Bridge) finderOrNone() templates.Finder {
	if b.finder != nil {
		return b.finder
	}
	return noStore{}
}

type noStore struct{}

func (noStore) FindActive(context.Context, string, string, string) (*templates.Template, error) {
	return nil, templates.ErrNotFound
}

func (noStore) FindActiveAnyLanguage(context.Context, string, string) (*templates.Template, error) {
	return nil, templates.ErrNotFound
}

// Send delivers one templated email.
func (b *Bridge) Send(ctx context.Context, params SendParams) error {
	return b.mailer.Send(ctx, params)
}

// RegisterEmailType adds or replaces a type definition. Call during startup,
// before the first send.
func (b *Bridge) RegisterEmailType(id string, def Definition) error {
	return b.registry.Register(id, def)
}

// EmailTypes returns a copy of the registered definitions keyed by id.
func (b *Bridge) EmailTypes() map[string]Definition {
	return b.registry.Types()
}

// EmailTypeIDs returns the registered ids in registration order.
func (b *Bridge) EmailTypeIDs() []string {
	return b.registry.IDs()
}

// Resolve runs the template fallback search without sending.
func (b *Bridge) Resolve(ctx context.Context, slug, language, variant string) (*Rendered, error) {
	return b.resolver.Resolve(ctx, slug, language, variant)
}

// SyncEmailTypes mirrors the registered definitions to the configured type
// store so the admin surface can list them. No-op without a store.
func (b *Bridge) SyncEmailTypes(ctx context.Context) error {
	if b.typeStore == nil {
		return nil
	}
	return b.registry.SyncToStore(ctx, b.typeStore)
}
