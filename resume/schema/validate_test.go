package schema

import (
	"errors"
	"strings"
	"testing"
)

func validInput() map[string]any {
	return map[string]any{
		"personal_info": map[string]any{
			"name":  "A B",
			"email": "a@b.com",
		},
		"experience": []any{
			map[string]any{
				"company":       "X",
				"location":      "Y",
				"dates":         "Jan 2020 - Present",
				"title":         "Eng",
				"bullet_points": []any{"Did thing"},
			},
		},
		"skills": map[string]any{
			"categories": []any{
				map[string]any{"name": "Languages", "items": []any{"Go"}},
			},
		},
	}
}

func TestValidateHappyPath(t *testing.T) {
	record, err := Validate(validInput())
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if record.PersonalInfo.Name != "A B" {
		t.Fatalf("name = %q", record.PersonalInfo.Name)
	}
	if len(record.Experience) != 1 || record.Experience[0].BulletPoints[0] != "Did thing" {
		t.Fatalf("experience decoded wrong: %+v", record.Experience)
	}
	if len(record.Skills.Categories) != 1 || record.Skills.Categories[0].Items[0] != "Go" {
		t.Fatalf("skills decoded wrong: %+v", record.Skills)
	}
}

func TestValidateMissingKeysAreEmptySections(t *testing.T) {
	input := validInput()
	delete(input, "skills")
	// projects, education, certifications, extracurriculars never set

	record, err := Validate(input)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(record.Projects) != 0 || len(record.Education) != 0 || len(record.Skills.Categories) != 0 {
		t.Fatalf("missing sections should decode empty: %+v", record)
	}
}

func TestValidateRejectsWrongSectionType(t *testing.T) {
	input := validInput()
	input["skills"] = "Go, Python"

	_, err := Validate(input)
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected *SchemaError, got %T: %v", err, err)
	}
	if !strings.Contains(schemaErr.Error(), "skills") {
		t.Fatalf("error does not name offending field: %v", schemaErr)
	}
}

func TestValidateRejectsMalformedSkillCategory(t *testing.T) {
	input := validInput()
	input["skills"] = map[string]any{
		"categories": []any{
			map[string]any{"name": "Languages"}, // items missing
		},
	}

	_, err := Validate(input)
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected *SchemaError, got %T: %v", err, err)
	}
}

func TestValidateRejectsScalarExperience(t *testing.T) {
	input := validInput()
	input["experience"] = "ten years"

	if _, err := Validate(input); err == nil {
		t.Fatalf("expected SchemaError for scalar experience section")
	}
}

func TestValidateAllOrNothing(t *testing.T) {
	input := validInput()
	input["projects"] = []any{map[string]any{"name": 42}}

	record, err := Validate(input)
	if err == nil {
		t.Fatalf("expected SchemaError")
	}
	if record.PersonalInfo.Name != "" {
		t.Fatalf("failed validation must not return a partial record")
	}
}

func TestParseYAML(t *testing.T) {
	doc := `
personal_info:
  name: A B
  email: a@b.com
experience:
  - company: X
    location: Y
    dates: Jan 2020 - Present
    title: Eng
    bullet_points:
      - Did thing
skills:
  categories: []
`
	record, err := ParseYAML([]byte(doc))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if record.Experience[0].Company != "X" {
		t.Fatalf("yaml decode wrong: %+v", record.Experience)
	}
}

func TestParseYAMLInvalidDocument(t *testing.T) {
	_, err := ParseYAML([]byte("::not yaml::\n\t-"))
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected *SchemaError for invalid YAML, got %T: %v", err, err)
	}
}
