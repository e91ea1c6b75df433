package emailtype

import (
	"bytes"
	"encoding/json"
)

// JSON shapes mirror the registration shapes: a string, an object keyed by
// language, or an object keyed by language and then variant. Key order follows
// entry order so the serialized snapshot reads like the registration.

// MarshalJSON encodes the text as a JSON string.
func (t Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

// MarshalJSON encodes the value as {"lang": "text", ...} in entry order.
func (v PerLanguage) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range v {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, e.Lang); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSONString(&buf, e.Text); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON encodes the value as {"lang": {"variant": "text", ...}, ...}
// in entry order.
func (v PerLanguageVariants) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, g := range v {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, g.Lang); err != nil {
			return nil, err
		}
		buf.WriteString(":{")
		for j, e := range g.Variants {
			if j > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(&buf, e.Variant); err != nil {
				return nil, err
			}
			buf.WriteByte(':')
			if err := writeJSONString(&buf, e.Text); err != nil {
				return nil, err
			}
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(data)
	return nil
}
