// Package schema validates externally supplied resume data against the
// canonical record shape before any rendering happens. Validation is
// all-or-nothing: a record either decodes into a fully-typed
// model.ResumeRecord or fails with a *SchemaError naming every violation.
package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"cvforge/resume/model"
)

//go:embed record.schema.json
var recordSchemaJSON string

// SchemaError reports shape or type violations in an input record.
// The schema is permissive on omission and strict on type mismatch, so a
// missing top-level key never appears here, but a section supplied with the
// wrong type always does.
type SchemaError struct {
	Violations []Violation
}

// Violation names a single offending field and why it was rejected.
type Violation struct {
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	if len(e.Violations) == 0 {
		return "schema validation failed"
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Reason))
	}
	return "schema validation failed: " + strings.Join(parts, "; ")
}

// Validate checks a generic structured value against the canonical record
// shape and decodes it into a typed ResumeRecord. Absent top-level keys are
// treated as empty sections; present keys with the wrong type are a
// *SchemaError.
func Validate(input map[string]any) (model.ResumeRecord, error) {
	if input == nil {
		input = map[string]any{}
	}

	schemaLoader := gojsonschema.NewStringLoader(recordSchemaJSON)
	docLoader := gojsonschema.NewGoLoader(input)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return model.ResumeRecord{}, fmt.Errorf("validate record: %w", err)
	}
	if !result.Valid() {
		schemaErr := &SchemaError{}
		for _, re := range result.Errors() {
			schemaErr.Violations = append(schemaErr.Violations, Violation{
				Field:  re.Field(),
				Reason: re.Description(),
			})
		}
		return model.ResumeRecord{}, schemaErr
	}

	// The structural gate passed, so this round-trip cannot lose or coerce
	// values; it only attaches types.
	raw, err := json.Marshal(input)
	if err != nil {
		return model.ResumeRecord{}, fmt.Errorf("encode record: %w", err)
	}
	var record model.ResumeRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return model.ResumeRecord{}, fmt.Errorf("decode record: %w", err)
	}
	return record, nil
}

// ParseYAML decodes a YAML document and validates it as a resume record.
// YAML is the interchange format the extraction collaborator produces.
func ParseYAML(data []byte) (model.ResumeRecord, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return model.ResumeRecord{}, &SchemaError{Violations: []Violation{
			{Field: "(root)", Reason: fmt.Sprintf("invalid YAML: %v", err)},
		}}
	}
	return Validate(raw)
}
