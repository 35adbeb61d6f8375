package sitecontent

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrDocumentInvalid wraps any structural validation failure of a stored
// document.
var ErrDocumentInvalid = errors.New("sitecontent: document invalid")

const documentSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["fr", "en"],
  "properties": {
    "fr": {"$ref": "#/$defs/content"},
    "en": {"$ref": "#/$defs/content"}
  },
  "$defs": {
    "content": {
      "type": "object",
      "required": ["header", "footer", "home", "about", "projects", "blog", "contact"],
      "properties": {
        "theme": {"type": "string"},
        "header": {"type": "object"},
        "footer": {"type": "object"},
        "home": {"type": "object"},
        "about": {"type": "object"},
        "projects": {"type": "object"},
        "blog": {"type": "object"},
        "contact": {"type": "object"}
      }
    }
  }
}`

var (
	compiledSchema     *jsonschema.Schema
	compileSchemaOnce  sync.Once
	compileSchemaError error
)

func documentValidator() (*jsonschema.Schema, error) {
	compileSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource("site_content.json", strings.NewReader(documentSchema)); err != nil {
			compileSchemaError = err
			return
		}
		compiledSchema, compileSchemaError = compiler.Compile("site_content.json")
	})
	return compiledSchema, compileSchemaError
}

// ValidateDocument checks that raw JSON holds a complete bilingual document:
// both language sub-documents present, each with every top-level section.
// Unknown extra fields are tolerated so older readers survive newer writers.
func ValidateDocument(raw []byte) error {
	validator, err := documentValidator()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDocumentInvalid, err)
	}

	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("%w: %v", ErrDocumentInvalid, err)
	}

	if err := validator.Validate(payload); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("%w: %s", ErrDocumentInvalid, summarizeValidation(validationErr))
		}
		return fmt.Errorf("%w: %v", ErrDocumentInvalid, err)
	}

	return nil
}

func summarizeValidation(err *jsonschema.ValidationError) string {
	parts := []string{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			location := strings.TrimSpace(node.InstanceLocation)
			if location == "" {
				location = "#"
			}
			parts = append(parts, fmt.Sprintf("%s: %s", location, strings.TrimSpace(node.Message)))
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return strings.Join(parts, "; ")
}
