package emailtype_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/madsmiley/mailbridge/pkg/emailtype"
)

func TestText_Resolve(t *testing.T) {
	t.Parallel()

	v := emailtype.Text("Hello")
	require.Equal(t, "Hello", v.Resolve("en", ""))
	require.Equal(t, "Hello", v.Resolve("fr", "admin"))
	require.False(t, v.IsZero())
	require.True(t, emailtype.Text("").IsZero())
}

func TestPerLanguage_Resolve(t *testing.T) {
	t.Parallel()

	v := emailtype.PerLanguage{
		{Lang: "de", Text: "Hallo"},
		{Lang: "en", Text: "Hello"},
		{Lang: "fr", Text: "Bonjour"},
	}

	t.Run("exact language", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Bonjour", v.Resolve("fr", ""))
	})

	t.Run("english fallback for absent language", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Hello", v.Resolve("es", ""))
	})

	t.Run("variant is ignored for flat values", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Bonjour", v.Resolve("fr", "admin"))
	})

	t.Run("first entry when no english either", func(t *testing.T) {
		t.Parallel()
		noEn := emailtype.PerLanguage{
			{Lang: "de", Text: "Hallo"},
			{Lang: "fr", Text: "Bonjour"},
		}
		require.Equal(t, "Hallo", noEn.Resolve("es", ""))
	})

	t.Run("empty value resolves to empty string", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "", emailtype.PerLanguage{}.Resolve("en", ""))
		require.True(t, emailtype.PerLanguage{}.IsZero())
	})
}

func TestPerLanguageVariants_Resolve(t *testing.T) {
	t.Parallel()

	v := emailtype.PerLanguageVariants{
		{Lang: "en", Variants: []emailtype.VariantText{
			{Variant: "", Text: "Hello"},
			{Variant: "admin", Text: "Hello admin"},
		}},
		{Lang: "fr", Variants: []emailtype.VariantText{
			{Variant: "", Text: "Bonjour"},
			{Variant: "admin", Text: "Bonjour admin"},
		}},
	}

	t.Run("exact language and variant", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Bonjour admin", v.Resolve("fr", "admin"))
	})

	t.Run("generic entry for language", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Bonjour", v.Resolve("fr", ""))
	})

	t.Run("generic entry when variant absent", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Bonjour", v.Resolve("fr", "customer"))
	})

	t.Run("english fallback for absent language", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Hello", v.Resolve("de", ""))
		require.Equal(t, "Hello admin", v.Resolve("de", "admin"))
	})

	t.Run("first variant when language has no generic", func(t *testing.T) {
		t.Parallel()
		noGeneric := emailtype.PerLanguageVariants{
			{Lang: "fr", Variants: []emailtype.VariantText{
				{Variant: "admin", Text: "Bonjour admin"},
				{Variant: "customer", Text: "Bonjour client"},
			}},
		}
		require.Equal(t, "Bonjour admin", noGeneric.Resolve("fr", ""))
	})

	t.Run("first value anywhere when nothing else matches", func(t *testing.T) {
		t.Parallel()
		noEn := emailtype.PerLanguageVariants{
			{Lang: "de", Variants: []emailtype.VariantText{
				{Variant: "admin", Text: "Hallo admin"},
			}},
		}
		require.Equal(t, "Hallo admin", noEn.Resolve("es", ""))
	})

	t.Run("empty value resolves to empty string", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "", emailtype.PerLanguageVariants{}.Resolve("en", ""))
		require.True(t, emailtype.PerLanguageVariants{}.IsZero())
	})
}
