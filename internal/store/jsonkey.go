package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// SetJSONKey loads the JSON object at path, sets key to value and writes
// it back indented. Other top-level entries are kept verbatim (same
// order, same number literals, same nested key order); only whitespace
// is normalized. A missing or empty file starts from an empty object; a
// file that is not a JSON object is an error and is left untouched.
func SetJSONKey(path, key string, value any) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("empty path")
	}
	obj := orderedmap.New[string, json.RawMessage]()

	b, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	if len(bytes.TrimSpace(b)) > 0 {
		if err := json.Unmarshal(b, obj); err != nil {
			return fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
		}
	}

	raw, err := encodeRaw(value)
	if err != nil {
		return fmt.Errorf("serializing %s: %w", key, err)
	}
	obj.Set(key, raw)

	out, err := encodeObject(obj)
	if err != nil {
		return fmt.Errorf("serializing %s: %w", filepath.Base(path), err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, out, 0o644)
}

// encodeRaw marshals v without HTML escaping so paths keep <, > and &.
func encodeRaw(v any) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return json.RawMessage(bytes.TrimSpace(buf.Bytes())), nil
}

// encodeObject writes obj in insertion order with two-space indentation.
// The map's own MarshalJSON is avoided because it HTML-escapes raw values.
func encodeObject(obj *orderedmap.OrderedMap[string, json.RawMessage]) ([]byte, error) {
	var flat bytes.Buffer
	flat.WriteByte('{')
	for p := obj.Oldest(); p != nil; p = p.Next() {
		if flat.Len() > 1 {
			flat.WriteByte(',')
		}
		k, err := encodeRaw(p.Key)
		if err != nil {
			return nil, err
		}
		flat.Write(k)
		flat.WriteByte(':')
		flat.Write(p.Value)
	}
	flat.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, flat.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}
