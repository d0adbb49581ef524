package forms

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// FilledData maps field names to caller-supplied values. A name missing
// from the map means "not provided" and is distinct from a name mapped to
// an empty string; the renderer treats the two differently.
type FilledData map[string]string

// Lookup reports the value for name and whether the caller supplied one.
func (d FilledData) Lookup(name string) (string, bool) {
	v, ok := d[name]
	return v, ok
}

// filledDataSchema constrains the payload to a flat object of scalars.
// Nested objects and arrays have no rendering and are rejected up front.
const filledDataSchema = `{
	"type": "object",
	"additionalProperties": {
		"type": ["string", "number", "boolean", "null"]
	}
}`

var filledDataValidator = jsonschema.MustCompileString("filled_data.json", filledDataSchema)

// ParseFilledData decodes and validates a JSON-encoded value map. Scalar
// values are coerced to strings; JSON null becomes the empty string, which
// renders as the "not provided" placeholder.
func ParseFilledData(raw []byte) (FilledData, error) {
	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid filled data JSON: %w", err)
	}
	if err := filledDataValidator.Validate(doc); err != nil {
		return nil, fmt.Errorf("invalid filled data: %w", err)
	}

	obj := doc.(map[string]any)
	data := make(FilledData, len(obj))
	for name, val := range obj {
		data[name] = coerceScalar(val)
	}
	return data, nil
}

func coerceScalar(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		return fmt.Sprintf("%t", x)
	default:
		return fmt.Sprint(x)
	}
}
