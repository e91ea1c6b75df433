package mailbridge_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	mailbridge "github.com/madsmiley/mailbridge"
	"github.com/madsmiley/mailbridge/pkg/cache"
	"github.com/madsmiley/mailbridge/pkg/templates"
)

type captureSender struct {
	sent []*mailbridge.Email
}

func (s *captureSender) Send(_ context.Context, email *mailbridge.Email) error {
	s.sent = append(s.sent, email)
	return nil
}

type staticFinder struct {
	rows []templates.Template
}

func (f *staticFinder) FindActive(_ context.Context, slug, language, variation string) (*templates.Template, error) {
	for i := range f.rows {
		t := &f.rows[i]
		if t.Slug == slug && t.Language == language && t.Variation == variation {
			return t, nil
		}
	}
	return nil, templates.ErrNotFound
}

func (f *staticFinder) FindActiveAnyLanguage(_ context.Context, slug, variation string) (*templates.Template, error) {
	for i := range f.rows {
		t := &f.rows[i]
		if t.Slug == slug && t.Variation == variation {
			return t, nil
		}
	}
	return nil, templates.ErrNotFound
}

type captureLogStore struct {
	entries []mailbridge.LogEntry
}

func (s *captureLogStore) Insert(_ context.Context, entry mailbridge.LogEntry) error {
	s.entries = append(s.entries, entry)
	return nil
}

func TestBridge_SendWithCoreTypes(t *testing.T) {
	t.Parallel()

	sender := &captureSender{}
	bridge, err := mailbridge.New(sender,
		mailbridge.WithSiteInfo(mailbridge.StaticSite{Name: "Acme", URL: "https://acme.test"}))
	require.NoError(t, err)

	require.Contains(t, bridge.EmailTypeIDs(), "welcome_email")
	require.Contains(t, bridge.EmailTypeIDs(), "notification")

	err = bridge.Send(context.Background(), mailbridge.SendParams{
		Slug: "welcome_email",
		Variables: mailbridge.Vars{
			"user_name":  "Alice",
			"user_email": "alice@example.com",
			"site_name":  "placeholder",
			"site_url":   "placeholder",
		},
	})
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	email := sender.sent[0]
	require.Equal(t, []string{"alice@example.com"}, email.To)
	require.Equal(t, "Welcome Alice!", email.Subject)
	// Configured site identity overrides the caller's site_name.
	require.Contains(t, email.HTML, "Welcome to Acme, Alice!")
}

func TestBridge_WithoutCoreTypes(t *testing.T) {
	t.Parallel()

	bridge, err := mailbridge.New(&captureSender{}, mailbridge.WithoutCoreTypes())
	require.NoError(t, err)
	require.Empty(t, bridge.EmailTypeIDs())
}

func TestBridge_RegisterEmailType(t *testing.T) {
	t.Parallel()

	sender := &captureSender{}
	bridge, err := mailbridge.New(sender, mailbridge.WithoutCoreTypes())
	require.NoError(t, err)

	require.NoError(t, bridge.RegisterEmailType("invoice_ready", mailbridge.Definition{
		Name:           "Invoice Ready",
		Variables:      []mailbridge.Variable{{Key: "invoice_url", Label: "Invoice URL"}},
		DefaultSubject: mailbridge.Text("Your invoice is ready"),
		DefaultContent: mailbridge.Text(`<p>Download: <a href="{{invoice_url}}">invoice</a></p>`),
	}))

	err = bridge.Send(context.Background(), mailbridge.SendParams{
		Slug: "invoice_ready",
		To:   "bob@example.com",
		Variables: mailbridge.Vars{
			"invoice_url": "https://acme.test/inv/42",
		},
	})
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	require.Contains(t, sender.sent[0].HTML, "https://acme.test/inv/42")
}

func TestBridge_StoredTemplateBeatsDefaults(t *testing.T) {
	t.Parallel()

	finder := &staticFinder{rows: []templates.Template{{
		Slug:     "welcome_email",
		Language: "en",
		Subject:  "Stored subject",
		Content:  "<p>stored body</p>",
		Status:   templates.StatusActive,
	}}}

	sender := &captureSender{}
	bridge, err := mailbridge.New(sender, mailbridge.WithTemplateFinder(finder))
	require.NoError(t, err)

	err = bridge.Send(context.Background(), mailbridge.SendParams{
		Slug: "welcome_email",
		Variables: mailbridge.Vars{
			"user_name":  "Alice",
			"user_email": "alice@example.com",
			"site_name":  "Acme",
			"site_url":   "https://acme.test",
		},
	})
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	require.Equal(t, "Stored subject", sender.sent[0].Subject)
}

func TestBridge_TemplateCacheServesRepeats(t *testing.T) {
	t.Parallel()

	finder := &staticFinder{rows: []templates.Template{{
		Slug:     "welcome_email",
		Language: "en",
		Subject:  "Cached subject",
		Content:  "<p>body</p>",
		Status:   templates.StatusActive,
	}}}
	c := cache.NewMemory[templates.Template](0)
	defer c.Close()

	bridge, err := mailbridge.New(&captureSender{},
		mailbridge.WithTemplateFinder(finder),
		mailbridge.WithTemplateCache(c, time.Minute))
	require.NoError(t, err)

	first, err := bridge.Resolve(context.Background(), "welcome_email", "en", "")
	require.NoError(t, err)

	// The cached row answers even after the backing store changes.
	finder.rows[0].Subject = "Changed subject"
	second, err := bridge.Resolve(context.Background(), "welcome_email", "en", "")
	require.NoError(t, err)
	require.Equal(t, first.Subject, second.Subject)
}

func TestBridge_TemplateCacheBeforeFinder(t *testing.T) {
	t.Parallel()

	finder := &staticFinder{rows: []templates.Template{{
		Slug:     "welcome_email",
		Language: "en",
		Subject:  "Cached subject",
		Content:  "<p>body</p>",
		Status:   templates.StatusActive,
	}}}
	c := cache.NewMemory[templates.Template](0)
	defer c.Close()

	// Option order must not matter: the cache wraps the finder even when it
	// is configured first.
	bridge, err := mailbridge.New(&captureSender{},
		mailbridge.WithTemplateCache(c, time.Minute),
		mailbridge.WithTemplateFinder(finder))
	require.NoError(t, err)

	first, err := bridge.Resolve(context.Background(), "welcome_email", "en", "")
	require.NoError(t, err)

	finder.rows[0].Subject = "Changed subject"
	second, err := bridge.Resolve(context.Background(), "welcome_email", "en", "")
	require.NoError(t, err)
	require.Equal(t, first.Subject, second.Subject)
}

func TestBridge_ZeroConfigRecordsSentHistory(t *testing.T) {
	t.Parallel()

	sender := &captureSender{}
	logs := &captureLogStore{}
	bridge, err := mailbridge.New(sender,
		mailbridge.WithLogStore(logs))
	require.NoError(t, err)

	err = bridge.Send(context.Background(), mailbridge.SendParams{
		Slug: "welcome_email",
		Variables: mailbridge.Vars{
			"user_name":  "Alice",
			"user_email": "alice@example.com",
			"site_name":  "Acme",
			"site_url":   "https://acme.test",
		},
	})
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	// No WithConfig means the zero Config, which keeps send history on.
	require.Len(t, logs.entries, 1)
	require.Equal(t, "sent", logs.entries[0].Status)
}

func TestBridge_Preview(t *testing.T) {
	t.Parallel()

	bridge, err := mailbridge.New(&captureSender{}, mailbridge.WithoutCoreTypes())
	require.NoError(t, err)

	require.NoError(t, bridge.RegisterEmailType("weekly_digest", mailbridge.Definition{
		Name:           "Weekly Digest",
		Variables:      []mailbridge.Variable{{Key: "user_name", Label: "User Name"}},
		DefaultSubject: mailbridge.Text("Your week, {{user_name}}"),
		DefaultContent: mailbridge.Text(`<p>Hi {{user_name}}</p><script>alert(1)</script>`),
		PreviewValues: map[string]mailbridge.DefaultValue{
			"user_name": mailbridge.Text("Jane"),
		},
	}))

	preview, err := bridge.Preview(context.Background(), "weekly_digest", "en", "")
	require.NoError(t, err)
	require.Equal(t, "Your week, Jane", preview.Subject)
	require.Equal(t, "<p>Hi Jane</p>", preview.HTML)
}

func TestBridge_PreviewKeepsUnknownTokens(t *testing.T) {
	t.Parallel()

	bridge, err := mailbridge.New(&captureSender{}, mailbridge.WithoutCoreTypes())
	require.NoError(t, err)

	require.NoError(t, bridge.RegisterEmailType("bare", mailbridge.Definition{
		Name:           "Bare",
		DefaultContent: mailbridge.Text("<p>{{mystery}}</p>"),
	}))

	preview, err := bridge.Preview(context.Background(), "bare", "en", "")
	require.NoError(t, err)
	require.Equal(t, "<p>{{mystery}}</p>", preview.HTML)
}
