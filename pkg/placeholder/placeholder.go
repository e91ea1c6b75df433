package placeholder

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// Vars holds substitution values keyed by placeholder name.
type Vars map[string]any

// Replace substitutes {{name}} tokens in template with values from vars.
// Each token is resolved at most once against the original template, so a
// value that itself contains {{...}} is never re-expanded. Tokens without a
// matching key are left verbatim.
//
// Example:
//
//	template: "Hello, {{name}}! Visit {{site_url}}."
//	vars: Vars{"name": "Ana", "site_url": "https://example.com"}
//	returns: "Hello, Ana! Visit https://example.com."
func Replace(template string, vars Vars) string {
	if len(vars) == 0 || !strings.Contains(template, "{{") {
		return template
	}

	var b strings.Builder
	b.Grow(len(template))

	rest := template
	for {
		start := strings.Index(rest, "{{")
		if start < 0 {
			b.WriteString(rest)
			break
		}
		close := strings.Index(rest[start:], "}}")
		if close < 0 {
			b.WriteString(rest)
			break
		}
		end := start + close + 2

		// A later "{{" before the closer starts the real token; everything up
		// to it is literal text ("{{a{{b}}" replaces only b).
		if inner := strings.LastIndex(rest[start+2:end-2], "{{"); inner >= 0 {
			start += 2 + inner
		}
		key := rest[start+2 : end-2]

		if value, ok := vars[key]; ok {
			b.WriteString(rest[:start])
			b.WriteString(Stringify(value))
		} else {
			b.WriteString(rest[:end])
		}
		rest = rest[end:]
	}

	return b.String()
}

// Stringify converts a substitution value to its string form. Scalars render
// via fmt; composite values (maps, slices, structs) render as an indented
// JSON dump so they never leak into the output unresolved.
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	case error:
		return val.Error()
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct, reflect.Pointer:
		if data, err := json.MarshalIndent(v, "", "  "); err == nil {
			return string(data)
		}
	}

	return fmt.Sprintf("%v", v)
}
