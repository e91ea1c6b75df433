package emailtype_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/madsmiley/mailbridge/pkg/emailtype"
)

func TestLoadDir(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"welcome_email.yaml": &fstest.MapFile{Data: []byte(`
name: Welcome Email
description: Sent when a new user registers
plugin: shop
variables:
  user_name: User name
  user_email: User email address
default_subject: "Welcome {{user_name}}!"
default_content:
  en:
    "": "<h1>Welcome, {{user_name}}!</h1>"
    admin: "<p>New user: {{user_name}}</p>"
  fr:
    "": "<h1>Bienvenue, {{user_name}} !</h1>"
languages: [en, fr]
variations:
  admin: Admin phrasing
preview_values:
  user_name: Ana
`)},
		"password_reset.yml": &fstest.MapFile{Data: []byte(`
name: Password Reset
default_subject:
  en: Reset your password
  fr: Réinitialisez votre mot de passe
default_content: "<p>{{reset_url}}</p>"
variables:
  reset_url: Reset URL
`)},
		"README.md": &fstest.MapFile{Data: []byte("ignored")},
	}

	r := emailtype.NewRegistry()
	require.NoError(t, emailtype.LoadDirStrict(fsys, r))
	require.Equal(t, 2, r.Len())

	welcome, ok := r.Get("welcome_email")
	require.True(t, ok)
	require.Equal(t, "Welcome Email", welcome.Name)
	require.Equal(t, "shop", welcome.Plugin)
	require.Equal(t, []emailtype.Variable{
		{Key: "user_name", Label: "User name"},
		{Key: "user_email", Label: "User email address"},
	}, welcome.Variables)
	require.Equal(t, []string{"en", "fr"}, welcome.Languages)
	require.Equal(t, []emailtype.Variation{{Key: "admin", Label: "Admin phrasing"}}, welcome.Variations)

	require.Equal(t, "Welcome {{user_name}}!", welcome.DefaultSubject.Resolve("de", "admin"))
	require.Equal(t, "<p>New user: {{user_name}}</p>", welcome.DefaultContent.Resolve("en", "admin"))
	require.Equal(t, "<h1>Bienvenue, {{user_name}} !</h1>", welcome.DefaultContent.Resolve("fr", ""))
	require.Equal(t, "Ana", welcome.PreviewVars("en", "")["user_name"])

	reset, ok := r.Get("password_reset")
	require.True(t, ok)
	require.Equal(t, "Réinitialisez votre mot de passe", reset.DefaultSubject.Resolve("fr", ""))
	require.Equal(t, "Reset your password", reset.DefaultSubject.Resolve("de", ""))
	require.Equal(t, "<p>{{reset_url}}</p>", reset.DefaultContent.Resolve("fr", "admin"))
}

func TestLoadDirStrict_InvalidShape(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"broken.yaml": &fstest.MapFile{Data: []byte(`
name: Broken
default_content:
  en: "flat"
  fr:
    "": "nested"
`)},
	}

	r := emailtype.NewRegistry()
	err := emailtype.LoadDirStrict(fsys, r)
	require.ErrorIs(t, err, emailtype.ErrInvalidDefinition)
}

func TestDefaultValue_JSON(t *testing.T) {
	t.Parallel()

	data, err := emailtype.PerLanguage{
		{Lang: "en", Text: "Hello"},
		{Lang: "fr", Text: "Bonjour"},
	}.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, `{"en":"Hello","fr":"Bonjour"}`, string(data))

	data, err = emailtype.PerLanguageVariants{
		{Lang: "en", Variants: []emailtype.VariantText{
			{Variant: "", Text: "Hello"},
			{Variant: "admin", Text: "Hi admin"},
		}},
	}.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, `{"en":{"":"Hello","admin":"Hi admin"}}`, string(data))
}
