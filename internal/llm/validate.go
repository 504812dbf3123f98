package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiled holds compiled schemas keyed by Schema.Name.
var compiled sync.Map // map[string]*jsonschema.Schema

// CompileSchema checks that s is a well-formed JSON Schema and caches the
// compiled form for later response validation. Calling it at startup makes
// a broken schema fail fast instead of on the first request.
func CompileSchema(s *Schema) error {
	_, err := compileSchema(s)
	return err
}

// validateResponse checks raw against schema. A nil schema accepts
// anything. Failures are reported as *ErrInvalidResponse.
func validateResponse(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}

	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("invalid JSON: %w", err),
		}
	}

	sch, err := compileSchema(schema)
	if err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     err,
		}
	}

	if err := sch.Validate(parsed); err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("schema validation failed: %w", err),
		}
	}

	return nil
}

func compileSchema(s *Schema) (*jsonschema.Schema, error) {
	if s == nil || s.Name == "" {
		return nil, fmt.Errorf("schema must have a name")
	}
	if cached, ok := compiled.Load(s.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// AddResource wants plain decoded JSON (map[string]any, []any, float64),
	// not the typed literals schemas are written with.
	defBytes, err := json.Marshal(s.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema %q: %w", s.Name, err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(defBytes))
	if err != nil {
		return nil, fmt.Errorf("parse schema %q: %w", s.Name, err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", s.Name)
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add schema %q: %w", s.Name, err)
	}

	sch, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %q: %w", s.Name, err)
	}

	compiled.Store(s.Name, sch)
	return sch, nil
}
