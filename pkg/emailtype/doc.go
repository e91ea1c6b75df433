// Package emailtype holds the registry of declared email types.
//
// An email type is the contract behind a template slug: display metadata, the
// variable keys a caller must supply, default subject and content used when
// no stored template row matches, and the languages and variants the type
// offers. Types are registered once at startup during a registration sweep
// and looked up at render time; a snapshot can be mirrored to storage for the
// admin surface.
//
// # Default values
//
// Default subject and content are polymorphic: the same text for every
// language, a text per language, or a text per language and variant. The
// three shapes share the [DefaultValue] interface, so a single registration
// serves all of them:
//
//	emailtype.Text("Welcome {{user_name}}!")
//
//	emailtype.PerLanguage{
//	    {Lang: "en", Text: "Welcome {{user_name}}!"},
//	    {Lang: "fr", Text: "Bienvenue {{user_name}} !"},
//	}
//
//	emailtype.PerLanguageVariants{
//	    {Lang: "en", Variants: []emailtype.VariantText{
//	        {Variant: "", Text: "Welcome!"},
//	        {Variant: "admin", Text: "A user signed up."},
//	    }},
//	}
//
// Resolution prefers the requested language and variant, falls back to the
// language's generic text, then to English, then to the first registered
// value.
//
// # Registration
//
// The host broadcasts one sweep at startup; registration must complete before
// the first render observes the registry (it is intentionally unlocked):
//
//	registry := emailtype.NewRegistry()
//	registry.Sweep(
//	    emailtype.CoreRegistrar(),
//	    emailtype.LoadDir(definitionsFS),
//	    shop.EmailTypes(),
//	)
package emailtype
