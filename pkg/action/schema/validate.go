// Package schema provides advisory validation of persisted action documents.
// Hydration itself stays best-effort; validation exists so import surfaces
// can reject documents with mistyped fields before they silently collapse to
// defaults.
package schema

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// actionSchema describes the persisted form of an action. No key is
// required since absent keys hydrate to defaults. Unknown keys are
// allowed for forward compatibility.
const actionSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"icon": {"type": "string"},
		"title": {"type": "string"},
		"txData": {"type": "string"},
		"eol": {"type": "string"},
		"binary": {"type": "boolean"},
		"timerIntervalMs": {"type": "integer", "minimum": 1},
		"timerMode": {"type": "integer"},
		"autoExecuteOnConnect": {"type": "boolean"}
	}
}`

// Validator validates action documents against the embedded schema.
// The schema is compiled once on first use.
type Validator struct {
	once     sync.Once
	compiled *jsonschema.Schema
	compErr  error
}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks doc against the action document schema. Returns nil if
// valid, or an error describing the validation failures.
func (v *Validator) Validate(doc map[string]any) error {
	compiled, err := v.compile()
	if err != nil {
		return fmt.Errorf("failed to compile schema: %w", err)
	}
	return compiled.Validate(doc)
}

func (v *Validator) compile() (*jsonschema.Schema, error) {
	v.once.Do(func() {
		var schemaMap any
		if err := json.Unmarshal([]byte(actionSchema), &schemaMap); err != nil {
			v.compErr = fmt.Errorf("failed to unmarshal schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("action.json", schemaMap); err != nil {
			v.compErr = fmt.Errorf("failed to add resource: %w", err)
			return
		}
		v.compiled, v.compErr = c.Compile("action.json")
	})
	return v.compiled, v.compErr
}
