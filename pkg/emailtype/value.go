package emailtype

// fallbackLanguage is the hard-coded safety-net language consulted when a
// default value has nothing for the requested language.
const fallbackLanguage = "en"

// DefaultValue is the polymorphic default for a subject or content: a single
// text for every language, a text per language, or a text per language and
// variant. Entries are ordered so the "first registered value" fallback is
// deterministic, which Go maps cannot guarantee.
//
// Resolution order, first match wins:
//  1. a plain Text value is returned as-is
//  2. requested language: exact variant, then generic, then first entry
//  3. English, same sub-order, when the requested language misses
//  4. the first value present, or "" when empty
type DefaultValue interface {
	// Resolve picks the concrete text for a language and variant.
	// An empty variant means the generic value.
	Resolve(language, variant string) string

	// IsZero reports whether the value holds no text at all.
	IsZero() bool

	sealedValue()
}

// Text is the same text for every language and variant.
type Text string

func (Text) sealedValue() {}

// IsZero reports whether the text is empty.
func (t Text) IsZero() bool { return t == "" }

// Resolve returns the text unchanged; Text is the universal base case.
func (t Text) Resolve(language, variant string) string { return string(t) }

// LangText pairs a language code with its text.
type LangText struct {
	Lang string
	Text string
}

// PerLanguage holds one text per language, in registration order.
type PerLanguage []LangText

func (PerLanguage) sealedValue() {}

// IsZero reports whether no languages are present.
func (v PerLanguage) IsZero() bool { return len(v) == 0 }

// Resolve returns the text for language, falling back to English and then to
// the first registered entry.
func (v PerLanguage) Resolve(language, variant string) string {
	for _, e := range v {
		if e.Lang == language {
			return e.Text
		}
	}
	if language != fallbackLanguage {
		for _, e := range v {
			if e.Lang == fallbackLanguage {
				return e.Text
			}
		}
	}
	if len(v) > 0 {
		return v[0].Text
	}
	return ""
}

// VariantText pairs a variant key with its text. An empty key is the generic
// text for the language.
type VariantText struct {
	Variant string
	Text    string
}

// LangVariants holds the per-variant texts of one language.
type LangVariants struct {
	Lang     string
	Variants []VariantText
}

// PerLanguageVariants holds per-variant texts per language, in registration
// order on both axes.
type PerLanguageVariants []LangVariants

func (PerLanguageVariants) sealedValue() {}

// IsZero reports whether no texts are present.
func (v PerLanguageVariants) IsZero() bool {
	for _, g := range v {
		if len(g.Variants) > 0 {
			return false
		}
	}
	return true
}

// Resolve returns the text for (language, variant), preferring the exact
// variant, then the generic entry, then the first variant of the language;
// English is tried the same way before falling back to the first text present.
func (v PerLanguageVariants) Resolve(language, variant string) string {
	if text, ok := v.resolveLanguage(language, variant); ok {
		return text
	}
	if language != fallbackLanguage {
		if text, ok := v.resolveLanguage(fallbackLanguage, variant); ok {
			return text
		}
	}
	for _, g := range v {
		if len(g.Variants) > 0 {
			return g.Variants[0].Text
		}
	}
	return ""
}

func (v PerLanguageVariants) resolveLanguage(language, variant string) (string, bool) {
	for _, g := range v {
		if g.Lang != language {
			continue
		}
		if variant != "" {
			for _, e := range g.Variants {
				if e.Variant == variant {
					return e.Text, true
				}
			}
		}
		for _, e := range g.Variants {
			if e.Variant == "" {
				return e.Text, true
			}
		}
		if len(g.Variants) > 0 {
			return g.Variants[0].Text, true
		}
	}
	return "", false
}
