package api

import (
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// generateRequestSchema bounds the request envelope before it reaches the
// service layer. Distribution contents are the allocator's concern; this
// only rejects structurally bad bodies.
const generateRequestSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["contentId", "chapter_name"],
  "properties": {
    "contentId": {"type": "string", "minLength": 1},
    "chapter_name": {"type": "string", "minLength": 1},
    "learning_objectives": {
      "oneOf": [
        {"type": "string"},
        {"type": "array", "items": {"type": "string"}},
        {"type": "null"}
      ]
    },
    "total_questions": {"type": "integer", "minimum": 1, "maximum": 100},
    "question_type_distribution": {
      "type": "object",
      "additionalProperties": {"type": "number", "minimum": 0}
    },
    "difficulty_distribution": {
      "type": "object",
      "additionalProperties": {"type": "number", "minimum": 0}
    },
    "blooms_taxonomy_distribution": {
      "type": "object",
      "additionalProperties": {"type": "number", "minimum": 0}
    },
    "session_id": {"type": "string"},
    "max_chunks": {"type": "integer", "minimum": 1, "maximum": 1000},
    "max_chars": {"type": "integer", "minimum": 1000, "maximum": 500000}
  },
  "additionalProperties": false
}`

func compileRequestSchema() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(generateRequestSchema))
	if err != nil {
		return nil, fmt.Errorf("parse request schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	const url = "schema://generate-request.json"
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile request schema: %w", err)
	}
	return compiled, nil
}
