package content

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Authored files are hand-edited JSON; the schemas catch structural mistakes
// at load instead of surfacing them later as odd runtime behavior.

var lessonSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":           map[string]any{"type": "string", "minLength": 1},
		"activity_id":  map[string]any{"type": "string", "minLength": 1},
		"module_id":    map[string]any{"type": "string", "minLength": 1},
		"title":        map[string]any{"type": "string", "minLength": 1},
		"introduction": map[string]any{"type": "string"},
		"sections": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title":   map[string]any{"type": "string", "minLength": 1},
					"content": map[string]any{"type": "string", "minLength": 1},
				},
				"required":             []any{"title", "content"},
				"additionalProperties": false,
			},
		},
		"key_points":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"practical_tips": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"resources": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"type":  map[string]any{"type": "string"},
					"title": map[string]any{"type": "string"},
					"url":   map[string]any{"type": "string"},
				},
				"required":             []any{"type", "title"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"id", "activity_id", "module_id", "title", "sections"},
	"additionalProperties": false,
}

var quizSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":             map[string]any{"type": "string", "minLength": 1},
		"activity_id":    map[string]any{"type": "string", "minLength": 1},
		"module_id":      map[string]any{"type": "string", "minLength": 1},
		"title":          map[string]any{"type": "string", "minLength": 1},
		"description":    map[string]any{"type": "string"},
		"passing_score":  map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
		"time_limit_min": map[string]any{"type": "integer", "minimum": 0},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":     map[string]any{"type": "string", "minLength": 1},
					"number": map[string]any{"type": "integer", "minimum": 1},
					"text":   map[string]any{"type": "string", "minLength": 1},
					"type":   map[string]any{"enum": []any{"multiple_choice", "true_false"}},
					"options": map[string]any{
						"type":     "array",
						"minItems": 2,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id":   map[string]any{"type": "string", "minLength": 1},
								"text": map[string]any{"type": "string", "minLength": 1},
							},
							"required":             []any{"id", "text"},
							"additionalProperties": false,
						},
					},
					"correct_option": map[string]any{"type": "string", "minLength": 1},
					"explanation":    map[string]any{"type": "string"},
					"points":         map[string]any{"type": "integer", "minimum": 1},
				},
				"required":             []any{"id", "number", "text", "type", "options", "correct_option", "points"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"id", "activity_id", "module_id", "title", "passing_score", "questions"},
	"additionalProperties": false,
}

var schemaCache sync.Map // map[string]*jsonschema.Schema

// validateAgainst checks raw JSON against a named schema definition.
func validateAgainst(name string, definition map[string]any, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledSchema(name, definition)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", name, err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// compiledSchema returns a cached compiled schema or compiles and caches it.
func compiledSchema(name string, definition map[string]any) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value (any), not raw bytes.
	defBytes, err := json.Marshal(definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(name, compiled)
	return compiled, nil
}
