package mailer

import (
	"context"
	"errors"
	"log/slog"
	"maps"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/madsmiley/mailbridge/pkg/emailtype"
	"github.com/madsmiley/mailbridge/pkg/logger"
	"github.com/madsmiley/mailbridge/pkg/placeholder"
	"github.com/madsmiley/mailbridge/pkg/sanitizer"
	"github.com/madsmiley/mailbridge/pkg/templates"
)

// Mailer orchestrates templated sends: resolve, validate, substitute,
// deliver, log.
type Mailer struct {
	resolver *templates.Resolver
	registry *emailtype.Registry
	sender   Sender
	logs     LogStore
	site     SiteInfo
	config   Config
	log      *slog.Logger
	now      func() time.Time
}

// Option customizes a Mailer.
type Option func(*Mailer)

// WithLogStore enables send history. Without it nothing is recorded.
func WithLogStore(s LogStore) Option {
	return func(m *Mailer) { m.logs = s }
}

// WithSiteInfo supplies the site identity behind the site_name, site_url,
// and site_description variables.
func WithSiteInfo(s SiteInfo) Option {
	return func(m *Mailer) { m.site = s }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Mailer) {
		if l != nil {
			m.log = l
		}
	}
}

// WithClock overrides the time source. Tests use it to pin current_date and
// current_time.
func WithClock(now func() time.Time) Option {
	return func(m *Mailer) {
		if now != nil {
			m.now = now
		}
	}
}

// New creates a Mailer. The resolver, registry, and sender are required;
// history, site identity, and logging arrive through options.
func New(resolver *templates.Resolver, registry *emailtype.Registry, sender Sender, cfg Config, opts ...Option) *Mailer {
	if cfg.DateFormat == "" {
		cfg.DateFormat = "January 2, 2006"
	}
	if cfg.TimeFormat == "" {
		cfg.TimeFormat = "3:04 PM"
	}
	m := &Mailer{
		resolver: resolver,
		registry: registry,
		sender:   sender,
		config:   cfg,
		log:      logger.NewNope(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SendParams describes one templated send.
type SendParams struct {
	// Slug selects the email type and its templates.
	Slug string

	// Variables are the substitution values. The type's declared variables
	// must all be present; extra keys are allowed and substituted too.
	Variables placeholder.Vars

	// To is the explicit recipient. When empty, the "to" variable is used,
	// then "user_email".
	To string

	// Language and Variation select the template; both may be empty.
	Language  string
	Variation string

	// Optional envelope overrides passed through to the provider.
	From    string
	ReplyTo string
	CC      []string
	BCC     []string
	Headers map[string]string
}

// Send resolves the template for params.Slug, checks the type's variable
// contract, substitutes, and delivers as HTML. Every failure exit writes a
// best-effort failed log entry; a log write problem never masks the send
// error. Successful sends are recorded unless logging is disabled.
func (m *Mailer) Send(ctx context.Context, params SendParams) error {
	recipient := m.recipient(params)

	rendered, err := m.resolver.Resolve(ctx, params.Slug, params.Language, params.Variation)
	if errors.Is(err, templates.ErrNotFound) {
		m.logFailure(ctx, params.Slug, recipient, "", ErrTemplateNotFound.Error())
		return ErrTemplateNotFound
	}
	if err != nil {
		m.logFailure(ctx, params.Slug, recipient, "", err.Error())
		return err
	}

	if def, ok := m.registry.Get(params.Slug); ok {
		if missing := def.MissingVariables(params.Variables); len(missing) > 0 {
			missErr := &MissingVariablesError{Slug: params.Slug, Keys: missing}
			m.logFailure(ctx, params.Slug, recipient, "", missErr.Error())
			return missErr
		}
	}

	if recipient == "" {
		m.logFailure(ctx, params.Slug, "", "", ErrNoRecipient.Error())
		return ErrNoRecipient
	}

	vars := m.siteVars(params.Variables)
	subject := placeholder.Replace(rendered.Subject, vars)
	body := placeholder.Replace(rendered.Content, vars)

	email := &Email{
		To:      []string{recipient},
		Subject: subject,
		HTML:    body,
		Text:    sanitizer.StripTags(body),
		From:    params.From,
		ReplyTo: params.ReplyTo,
		CC:      params.CC,
		BCC:     params.BCC,
		Headers: params.Headers,
	}

	if err := m.sender.Send(ctx, email); err != nil {
		// The provider error stays out of stored history; it may carry
		// addresses or API details that do not belong in a shared table.
		m.logFailure(ctx, params.Slug, recipient, subject, "email delivery failed")
		m.log.ErrorContext(ctx, "email delivery failed",
			slog.String("slug", params.Slug),
			slog.String("error", err.Error()))
		return errors.Join(ErrDeliveryFailed, err)
	}

	if !m.config.DisableLogging {
		m.record(ctx, LogEntry{
			ID:           uuid.New(),
			TemplateSlug: params.Slug,
			Recipient:    recipient,
			Subject:      subject,
			Status:       LogStatusSent,
			SentAt:       m.now(),
		})
	}
	m.log.InfoContext(ctx, "email sent",
		slog.String("slug", params.Slug),
		slog.String("language", rendered.Language),
		slog.String("variation", rendered.Variation))
	return nil
}

// recipient applies the precedence chain: explicit address, then the "to"
// variable, then "user_email".
func (m *Mailer) recipient(params SendParams) string {
	if to := strings.TrimSpace(params.To); to != "" {
		return to
	}
	for _, key := range []string{"to", "user_email"} {
		if v, ok := params.Variables[key].(string); ok {
			if to := strings.TrimSpace(v); to != "" {
				return to
			}
		}
	}
	return ""
}

// siteVars merges the site variables over the caller's map. Site values win
// on collision so templates can rely on them being authentic.
func (m *Mailer) siteVars(callerVars placeholder.Vars) placeholder.Vars {
	vars := maps.Clone(callerVars)
	if vars == nil {
		vars = make(placeholder.Vars, 5)
	}

	if m.site != nil {
		vars["site_name"] = m.site.SiteName()
		vars["site_url"] = m.site.SiteURL()
		vars["site_description"] = m.site.SiteDescription()
	}
	now := m.now()
	vars["current_date"] = now.Format(m.config.DateFormat)
	vars["current_time"] = now.Format(m.config.TimeFormat)
	return vars
}

// logFailure writes a failed entry regardless of the logging setting.
// Best effort: a storage problem is logged and swallowed.
func (m *Mailer) logFailure(ctx context.Context, slug, recipient, subject, message string) {
	m.record(ctx, LogEntry{
		ID:           uuid.New(),
		TemplateSlug: slug,
		Recipient:    recipient,
		Subject:      subject,
		Status:       LogStatusFailed,
		ErrorMessage: message,
		SentAt:       m.now(),
	})
}

func (m *Mailer) record(ctx context.Context, entry LogEntry) {
	if m.logs == nil {
		return
	}
	if err := m.logs.Insert(ctx, entry); err != nil {
		m.log.ErrorContext(ctx, "failed to write email log entry",
			slog.String("slug", entry.TemplateSlug),
			slog.String("status", entry.Status),
			slog.String("error", err.Error()))
	}
}
