package types

import (
	"encoding/json"
	"fmt"
)

// Serialize renders v in its canonical JSON wire form. Scalar and
// collection fields of an entity appear as siblings of its base fields in
// one flat object. Field order follows the struct definition and id-keyed
// maps are emitted with their keys in sorted order, so the output is
// deterministic and may be byte-compared.
func Serialize(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("serialize: %w", err)
	}
	return string(data), nil
}

// Deserialize decodes the JSON text into v. Malformed or
// schema-mismatched input is reported as an error wrapping
// ErrDeserialize; decoding never panics.
func Deserialize(data string, v any) error {
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return fmt.Errorf("%w: %v", ErrDeserialize, err)
	}
	return nil
}
