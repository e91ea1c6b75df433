package emailtype

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadDir returns a Registrar that reads email type definitions from YAML
// files in fsys. Each file declares one type; the file name (without
// extension) is the type id.
//
// Example structure:
//
//	welcome_email.yaml
//	order_shipped.yml
//
// File format:
//
//	name: Welcome Email
//	description: Sent when a new user registers
//	plugin: shop
//	variables:
//	  user_name: User name
//	  user_email: User email address
//	default_subject: "Welcome {{user_name}}!"
//	default_content:
//	  en:
//	    "": "<h1>Welcome, {{user_name}}!</h1>"
//	    admin: "<p>New user: {{user_name}}</p>"
//	  fr:
//	    "": "<h1>Bienvenue, {{user_name}} !</h1>"
//	languages: [en, fr]
//	variations:
//	  admin: Admin phrasing
//	preview_values:
//	  user_name: Ana
//
// default_subject, default_content and each preview value accept the three
// default shapes: a plain string, a mapping by language, or a mapping by
// language and variant. Mapping order in the file is preserved.
//
// Loading stops at the first unreadable or undecodable file; the registry
// keeps whatever was registered before the failure, matching the
// last-registered-wins semantics of repeated sweeps.
func LoadDir(fsys fs.FS) Registrar {
	return RegistrarFunc(func(r *Registry) {
		_ = loadDir(fsys, r)
	})
}

// LoadDirStrict is LoadDir with the decoding error surfaced, for hosts that
// treat a malformed definition file as a startup failure.
func LoadDirStrict(fsys fs.FS, r *Registry) error {
	return loadDir(fsys, r)
}

func loadDir(fsys fs.FS, r *Registry) error {
	return fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(filePath))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		id := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))
		def, err := decodeDefinition(data)
		if err != nil {
			return fmt.Errorf("decoding %q: %w", filePath, err)
		}

		return r.Register(id, def)
	})
}

func decodeDefinition(data []byte) (Definition, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Definition{}, err
	}
	if len(doc.Content) == 0 {
		return Definition{}, fmt.Errorf("%w: empty document", ErrInvalidDefinition)
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return Definition{}, fmt.Errorf("%w: top level must be a mapping", ErrInvalidDefinition)
	}

	var def Definition
	var err error
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i].Value, root.Content[i+1]

		switch key {
		case "name":
			def.Name = value.Value
		case "description":
			def.Description = value.Value
		case "plugin":
			def.Plugin = value.Value
		case "variables":
			def.Variables, err = decodeOrderedPairs(value, func(k, v string) Variable {
				return Variable{Key: k, Label: v}
			})
		case "variations":
			def.Variations, err = decodeOrderedPairs(value, func(k, v string) Variation {
				return Variation{Key: k, Label: v}
			})
		case "languages":
			err = value.Decode(&def.Languages)
		case "default_subject":
			def.DefaultSubject, err = decodeValue(value)
		case "default_content":
			def.DefaultContent, err = decodeValue(value)
		case "preview_values":
			def.PreviewValues, err = decodePreviewValues(value)
		}
		if err != nil {
			return Definition{}, fmt.Errorf("%w: field %q: %v", ErrInvalidDefinition, key, err)
		}
	}

	return def, nil
}

func decodeOrderedPairs[T any](node *yaml.Node, pair func(key, value string) T) ([]T, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected a mapping, got %s", kindName(node.Kind))
	}
	out := make([]T, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		out = append(out, pair(node.Content[i].Value, node.Content[i+1].Value))
	}
	return out, nil
}

func decodePreviewValues(node *yaml.Node) (map[string]DefaultValue, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected a mapping, got %s", kindName(node.Kind))
	}
	out := make(map[string]DefaultValue, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		value, err := decodeValue(node.Content[i+1])
		if err != nil {
			return nil, err
		}
		out[node.Content[i].Value] = value
	}
	return out, nil
}

// decodeValue maps a YAML node onto the DefaultValue shape it spells:
// scalar, mapping of scalars (by language), or mapping of mappings (by
// language and variant). Shapes must not be mixed within one value.
func decodeValue(node *yaml.Node) (DefaultValue, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return Text(node.Value), nil

	case yaml.MappingNode:
		if len(node.Content) == 0 {
			return Text(""), nil
		}
		switch node.Content[1].Kind {
		case yaml.ScalarNode:
			v := make(PerLanguage, 0, len(node.Content)/2)
			for i := 0; i+1 < len(node.Content); i += 2 {
				if node.Content[i+1].Kind != yaml.ScalarNode {
					return nil, fmt.Errorf("mixed value shapes under language %q", node.Content[i].Value)
				}
				v = append(v, LangText{Lang: node.Content[i].Value, Text: node.Content[i+1].Value})
			}
			return v, nil

		case yaml.MappingNode:
			v := make(PerLanguageVariants, 0, len(node.Content)/2)
			for i := 0; i+1 < len(node.Content); i += 2 {
				group := node.Content[i+1]
				if group.Kind != yaml.MappingNode {
					return nil, fmt.Errorf("mixed value shapes under language %q", node.Content[i].Value)
				}
				variants := make([]VariantText, 0, len(group.Content)/2)
				for j := 0; j+1 < len(group.Content); j += 2 {
					variants = append(variants, VariantText{
						Variant: group.Content[j].Value,
						Text:    group.Content[j+1].Value,
					})
				}
				v = append(v, LangVariants{Lang: node.Content[i].Value, Variants: variants})
			}
			return v, nil
		}
	}
	return nil, fmt.Errorf("unsupported value shape (%s)", kindName(node.Kind))
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	default:
		return "unknown"
	}
}
