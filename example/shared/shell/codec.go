package shell

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// EncodeJSON marshals v into JSON. A nil map is encoded as an empty object,
// so JSONB columns never hold a JSON null.
func EncodeJSON(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}

	if string(data) == "null" {
		return []byte("{}"), nil
	}

	return data, nil
}

// EncodeJSONIndent marshals v into indented JSON for humans.
func EncodeJSONIndent(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}

	return data, nil
}

// DecodeJSON unmarshals data into a new T.
func DecodeJSON[T any](data []byte) (T, error) {
	var v T
	if len(data) == 0 {
		return v, nil
	}

	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("decode json: %w", err)
	}

	return v, nil
}
