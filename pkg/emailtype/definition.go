package emailtype

import "github.com/madsmiley/mailbridge/pkg/placeholder"

// Variable declares one required substitution key and its human-readable
// label shown in the admin surface.
type Variable struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Variation declares an allowed variant key and its display label.
type Variation struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Definition is the declared contract of an email type: display metadata, the
// required variable set, default subject/content, and the allowed languages
// and variants. Definitions live in the in-memory registry; a snapshot may be
// mirrored to storage for display, but rendering always reads the registry.
type Definition struct {
	// Name and Description are display strings for the admin surface.
	Name        string
	Description string

	// Variables lists the required substitution keys in declaration order.
	// A caller must supply every key; an empty value is acceptable, absence
	// is not.
	Variables []Variable

	// Plugin is a free-text origin tag. Not semantically enforced.
	Plugin string

	// DefaultSubject and DefaultContent are used when no stored template row
	// matches a request. A type with a zero DefaultContent cannot be sent
	// without a stored row.
	DefaultSubject DefaultValue
	DefaultContent DefaultValue

	// PreviewValues holds example substitution values per variable key, in
	// the same polymorphic shape as the defaults. Used only for previews.
	PreviewValues map[string]DefaultValue

	// Languages restricts the language codes offered in the admin surface.
	// Empty means unrestricted.
	Languages []string

	// Variations lists the variant keys this type offers. Empty means the
	// type has no variants.
	Variations []Variation
}

// MissingVariables returns the declared keys absent from vars, in declaration
// order. Presence is all that counts; empty values pass.
func (d Definition) MissingVariables(vars placeholder.Vars) []string {
	var missing []string
	for _, v := range d.Variables {
		if _, ok := vars[v.Key]; !ok {
			missing = append(missing, v.Key)
		}
	}
	return missing
}

// PreviewVars resolves the definition's preview values for a language and
// variant into a substitution map.
func (d Definition) PreviewVars(language, variant string) placeholder.Vars {
	if len(d.PreviewValues) == 0 {
		return nil
	}
	vars := make(placeholder.Vars, len(d.PreviewValues))
	for key, value := range d.PreviewValues {
		if value == nil {
			continue
		}
		vars[key] = value.Resolve(language, variant)
	}
	return vars
}
