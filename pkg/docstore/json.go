package docstore

import (
	"bytes"
	"encoding/json"
)

// MarshalCanonical serializes a value to the canonical JSON form
// persisted by the store: two-space indentation, object keys in
// ascending lexicographic order at every nesting level, and no HTML
// or solidus escaping.
//
// Key ordering comes from a marshal/remarshal round trip: the value
// is first marshaled normally, decoded into generic maps, and encoded
// again. encoding/json writes map keys in sorted order, so the second
// pass is canonical regardless of struct field order. Numbers survive
// the round trip verbatim via json.Number.
func MarshalCanonical(v interface{}) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var tree interface{}
	if err := dec.Decode(&tree); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tree); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
