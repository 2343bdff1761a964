// Package profile loads the caller-supplied known data for a fill pass: a
// flat JSON object mapping field names to values, plus an optional
// resume_path. Key order in the file is preserved so that equal-score fuzzy
// matches resolve deterministically.
package profile

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/form-autofill/internal/forms"
)

// resumePathKey is the reserved profile key holding the resume file path.
const resumePathKey = "resume_path"

//go:embed schema.json
var schemaJSON string

// Profile is one caller-supplied data set for form filling.
type Profile struct {
	Data forms.KnownData
}

// Load reads and validates a profile JSON file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse validates profile JSON against the embedded schema and decodes it
// preserving key order.
func Parse(data []byte) (*Profile, error) {
	if err := validate(data); err != nil {
		return nil, err
	}

	pairs, resumePath, err := decodeOrdered(data)
	if err != nil {
		return nil, err
	}

	return &Profile{Data: forms.NewKnownData(pairs, resumePath)}, nil
}

// validate checks the document against the embedded JSON Schema: a flat
// object with string values only.
func validate(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaJSON)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("profile validation failed to run: %w", err)
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}

// decodeOrdered scans the JSON object token by token. encoding/json maps
// would randomize key order and lose the documented first-key tie-break.
func decodeOrdered(data []byte) ([]forms.Pair, string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, "", fmt.Errorf("profile must be a JSON object, got %v", tok)
	}

	var pairs []forms.Pair
	var resumePath string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, "", fmt.Errorf("failed to parse profile JSON: %w", err)
		}
		key := keyTok.(string)

		var value string
		if err := dec.Decode(&value); err != nil {
			return nil, "", fmt.Errorf("profile value for %q is not a string: %w", key, err)
		}

		if key == resumePathKey {
			resumePath = value
			continue
		}
		pairs = append(pairs, forms.Pair{Key: key, Value: value})
	}

	if _, err := dec.Token(); err != nil && err != io.EOF {
		return nil, "", fmt.Errorf("failed to parse profile JSON: %w", err)
	}

	return pairs, resumePath, nil
}
