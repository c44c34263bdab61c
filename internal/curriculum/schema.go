package curriculum

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/a11ytutor/internal/rules"
)

const schemaURL = "schema://curriculum.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func stringProp() map[string]any { return map[string]any{"type": "string"} }

func stringList() map[string]any {
	return map[string]any{"type": "array", "items": stringProp()}
}

func opEnum() []any {
	ops := rules.Ops()
	out := make([]any, len(ops))
	for i, op := range ops {
		out[i] = string(op)
	}
	return out
}

// curriculumSchema describes the YAML document shape. Semantic checks (rule
// fields per op, duplicate IDs, keyword contents) are left to New.
func curriculumSchema() map[string]any {
	rule := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"op":       map[string]any{"type": "string", "enum": opEnum()},
			"selector": stringProp(),
			"id":       stringProp(),
			"index":    map[string]any{"type": "integer", "minimum": 0},
			"attr":     stringProp(),
			"property": stringProp(),
			"value":    stringProp(),
			"values":   stringList(),
			"pattern":  stringProp(),
			"min":      map[string]any{"type": "integer", "minimum": 1},
			"equals":   map[string]any{"type": "integer", "minimum": 0},
			"before":   stringProp(),
			"after":    stringProp(),
			"rules":    map[string]any{"type": "array", "items": map[string]any{"$ref": "#/$defs/rule"}, "minItems": 1},
			"rule":     map[string]any{"$ref": "#/$defs/rule"},
			"message":  stringProp(),
		},
		"required":             []any{"op"},
		"additionalProperties": false,
	}

	question := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"prompt": stringProp(),
			"groups": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items":    map[string]any{"type": "string", "minLength": 1},
				},
			},
		},
		"required":             []any{"prompt", "groups"},
		"additionalProperties": false,
	}

	exercise := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":           map[string]any{"type": "string", "minLength": 1},
			"title":        map[string]any{"type": "string", "minLength": 1},
			"kind":         map[string]any{"type": "string", "enum": []any{string(KindCode), string(KindQuiz)}},
			"initial":      stringProp(),
			"requirement":  stringProp(),
			"failure":      stringProp(),
			"rule":         map[string]any{"$ref": "#/$defs/rule"},
			"pass_percent": map[string]any{"type": "integer", "minimum": 1, "maximum": 100},
			"questions":    map[string]any{"type": "array", "items": map[string]any{"$ref": "#/$defs/question"}},
		},
		"required": []any{"id", "title", "kind"},
		"allOf": []any{
			map[string]any{
				"if":   map[string]any{"properties": map[string]any{"kind": map[string]any{"const": string(KindCode)}}},
				"then": map[string]any{"required": []any{"rule", "failure"}},
			},
			map[string]any{
				"if":   map[string]any{"properties": map[string]any{"kind": map[string]any{"const": string(KindQuiz)}}},
				"then": map[string]any{"required": []any{"questions"}},
			},
		},
		"additionalProperties": false,
	}

	return map[string]any{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type":    "object",
		"properties": map[string]any{
			"groups": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name":      map[string]any{"type": "string", "minLength": 1},
						"exercises": map[string]any{"type": "array", "items": map[string]any{"$ref": "#/$defs/exercise"}},
					},
					"required":             []any{"name", "exercises"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"groups"},
		"additionalProperties": false,
		"$defs": map[string]any{
			"rule":     rule,
			"question": question,
			"exercise": exercise,
		},
	}
}

// getCompiledSchema compiles the curriculum schema once.
func getCompiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		// The compiler wants a parsed JSON value; round-trip the map so
		// every number and slice has the shape it expects.
		raw, err := json.Marshal(curriculumSchema())
		if err != nil {
			schemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		def, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			schemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}

// validateShape checks a decoded YAML value against the curriculum schema.
func validateShape(doc any) error {
	schema, err := getCompiledSchema()
	if err != nil {
		return fmt.Errorf("curriculum schema: %w", err)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode curriculum for validation: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("decode curriculum for validation: %w", err)
	}
	if err := schema.Validate(inst); err != nil {
		return fmt.Errorf("curriculum schema validation failed: %w", err)
	}
	return nil
}
