package editor

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// ErrUnknownPath rejects operations on paths the schema does not describe.
	ErrUnknownPath = errors.New("editor: unknown field path")
	// ErrNotAList rejects row operations on non-list fields.
	ErrNotAList = errors.New("editor: field is not a list")
	// ErrLastRow refuses to remove the only remaining row of a list.
	ErrLastRow = errors.New("editor: list keeps at least one row")
)

// Form is a schema-driven editing buffer over a JSON document. Values are
// held in their form representation: comma-separated text for CSV fields,
// at-least-one-row slices for lists. Keys the schema does not describe pass
// through hydration and extraction untouched.
type Form struct {
	schema Schema

	mu     sync.RWMutex
	values map[string]any
}

// NewForm creates an empty form for schema.
func NewForm(schema Schema) *Form {
	return &Form{
		schema: schema,
		values: map[string]any{},
	}
}

// Hydrate fills the form from doc, replacing any buffered edits. doc must
// marshal to a JSON object.
func (f *Form) Hydrate(doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("editor: encode document: %w", err)
	}

	values := map[string]any{}
	if err := json.Unmarshal(raw, &values); err != nil {
		return fmt.Errorf("editor: decode document: %w", err)
	}

	formify(f.schema.Fields, values)

	f.mu.Lock()
	f.values = values
	f.mu.Unlock()
	return nil
}

// Extract converts the buffered values back into document shape and
// unmarshals them into target.
func (f *Form) Extract(target any) error {
	f.mu.RLock()
	values := cloneMap(f.values)
	f.mu.RUnlock()

	deformify(f.schema.Fields, values)

	raw, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("editor: encode values: %w", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("editor: decode values: %w", err)
	}
	return nil
}

// Value returns the buffered value at a dotted path. List rows are addressed
// by numeric segments, e.g. "contact.cards.0.title".
func (f *Form) Value(path string) (any, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	value, err := getAt(f.values, splitPath(path))
	if err != nil {
		return nil, err
	}
	return cloneValue(value), nil
}

// Set replaces the buffered value at a dotted path.
func (f *Form) Set(path string, value any) error {
	segments := splitPath(path)
	if _, ok := schemaFieldAt(f.schema.Fields, segments); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPath, path)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return setAt(f.values, segments, value)
}

// AppendRow adds an empty row to the list at path.
func (f *Form) AppendRow(path string) error {
	segments := splitPath(path)
	field, ok := schemaFieldAt(f.schema.Fields, segments)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPath, path)
	}
	if field.Kind != KindStringList && field.Kind != KindRowList {
		return fmt.Errorf("%w: %s", ErrNotAList, path)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	list, err := listAt(f.values, segments)
	if err != nil {
		return err
	}
	list = append(list, zeroValue(field))
	return setAt(f.values, segments, list)
}

// RemoveRow drops one row from the list at path. The last row always stays.
func (f *Form) RemoveRow(path string, index int) error {
	segments := splitPath(path)
	field, ok := schemaFieldAt(f.schema.Fields, segments)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPath, path)
	}
	if field.Kind != KindStringList && field.Kind != KindRowList {
		return fmt.Errorf("%w: %s", ErrNotAList, path)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	list, err := listAt(f.values, segments)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(list) {
		return fmt.Errorf("editor: row %d out of range at %s", index, path)
	}
	if len(list) <= 1 {
		return ErrLastRow
	}

	list = append(list[:index], list[index+1:]...)
	return setAt(f.values, segments, list)
}

// Validate runs every text rule of the schema against the buffered values.
// Failures come back as a validation.Errors map keyed by field path.
func (f *Form) Validate() error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	issues := validation.Errors{}
	validateFields(f.schema.Fields, f.values, "", issues)
	if len(issues) > 0 {
		return issues
	}
	return nil
}

func validateFields(fields []Field, node map[string]any, prefix string, issues validation.Errors) {
	for _, field := range fields {
		path := field.Name
		if prefix != "" {
			path = prefix + "." + field.Name
		}
		value := node[field.Name]

		switch field.Kind {
		case KindGroup:
			if child, ok := value.(map[string]any); ok {
				validateFields(field.Fields, child, path, issues)
			}
		case KindText:
			if len(field.Rules) == 0 {
				continue
			}
			text, _ := value.(string)
			if err := validation.Validate(text, field.Rules...); err != nil {
				issues[path] = err
			}
		case KindRowList:
			rows, _ := value.([]any)
			for i, row := range rows {
				if m, ok := row.(map[string]any); ok {
					validateFields(field.Fields, m, fmt.Sprintf("%s.%d", path, i), issues)
				}
			}
		}
	}
}

// formify rewrites a freshly decoded document into form representation.
func formify(fields []Field, node map[string]any) {
	for _, field := range fields {
		switch field.Kind {
		case KindGroup:
			child, ok := node[field.Name].(map[string]any)
			if !ok {
				child = map[string]any{}
				node[field.Name] = child
			}
			formify(field.Fields, child)
		case KindText:
			if _, ok := node[field.Name].(string); !ok {
				node[field.Name] = ""
			}
		case KindCSV:
			node[field.Name] = joinCSV(toStrings(node[field.Name]))
		case KindStringList:
			list := toAnySlice(node[field.Name])
			if len(list) == 0 {
				list = []any{""}
			}
			node[field.Name] = list
		case KindRowList:
			list := toAnySlice(node[field.Name])
			if len(list) == 0 {
				list = []any{zeroRow(field.Fields)}
			}
			for _, row := range list {
				if m, ok := row.(map[string]any); ok {
					formify(field.Fields, m)
				}
			}
			node[field.Name] = list
		}
	}
}

// deformify rewrites form representation back into document shape.
func deformify(fields []Field, node map[string]any) {
	for _, field := range fields {
		switch field.Kind {
		case KindGroup:
			if child, ok := node[field.Name].(map[string]any); ok {
				deformify(field.Fields, child)
			}
		case KindCSV:
			text, _ := node[field.Name].(string)
			node[field.Name] = splitCSV(text)
		case KindRowList:
			for _, row := range toAnySlice(node[field.Name]) {
				if m, ok := row.(map[string]any); ok {
					deformify(field.Fields, m)
				}
			}
		}
	}
}

func zeroValue(field Field) any {
	switch field.Kind {
	case KindStringList:
		return ""
	case KindRowList:
		return zeroRow(field.Fields)
	default:
		return ""
	}
}

func zeroRow(fields []Field) map[string]any {
	row := map[string]any{}
	for _, field := range fields {
		switch field.Kind {
		case KindGroup:
			row[field.Name] = zeroRow(field.Fields)
		case KindStringList:
			row[field.Name] = []any{""}
		case KindRowList:
			row[field.Name] = []any{zeroRow(field.Fields)}
		default:
			row[field.Name] = ""
		}
	}
	return row
}

// splitCSV tokenizes comma-separated text: split, trim, drop empties.
func splitCSV(text string) []any {
	parts := strings.Split(text, ",")
	out := make([]any, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func joinCSV(values []string) string {
	return strings.Join(values, ", ")
}

func toStrings(value any) []string {
	list := toAnySlice(value)
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func toAnySlice(value any) []any {
	list, _ := value.([]any)
	return list
}

func splitPath(path string) []string {
	return strings.Split(path, ".")
}

func isIndexSegment(segment string) bool {
	_, err := strconv.Atoi(segment)
	return err == nil
}

// schemaFieldAt resolves the field a path addresses, skipping numeric row
// segments. Inside a string list a numeric segment still addresses the list
// field itself.
func schemaFieldAt(fields []Field, segments []string) (Field, bool) {
	var current Field
	found := false
	for _, segment := range segments {
		if isIndexSegment(segment) {
			if !found {
				return Field{}, false
			}
			switch current.Kind {
			case KindRowList:
				fields = current.Fields
			case KindStringList:
				// row of strings, stays on the list field
			default:
				return Field{}, false
			}
			continue
		}
		f, ok := findField(fields, segment)
		if !ok {
			return Field{}, false
		}
		current = f
		found = true
		fields = f.Fields
	}
	return current, found
}

func getAt(root any, segments []string) (any, error) {
	current := root
	for _, segment := range segments {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrUnknownPath, segment)
			}
			current = value
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("%w: %s", ErrUnknownPath, segment)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnknownPath, segment)
		}
	}
	return current, nil
}

func setAt(root map[string]any, segments []string, value any) error {
	if len(segments) == 0 {
		return ErrUnknownPath
	}

	parent, err := getAt(root, segments[:len(segments)-1])
	if err != nil {
		return err
	}

	last := segments[len(segments)-1]
	switch node := parent.(type) {
	case map[string]any:
		node[last] = value
		return nil
	case []any:
		index, err := strconv.Atoi(last)
		if err != nil || index < 0 || index >= len(node) {
			return fmt.Errorf("%w: %s", ErrUnknownPath, last)
		}
		node[index] = value
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownPath, last)
	}
}

func listAt(root map[string]any, segments []string) ([]any, error) {
	value, err := getAt(root, segments)
	if err != nil {
		return nil, err
	}
	list, ok := value.([]any)
	if !ok {
		return nil, ErrNotAList
	}
	return list, nil
}

func cloneMap(input map[string]any) map[string]any {
	if input == nil {
		return nil
	}
	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = cloneValue(value)
	}
	return out
}

func cloneValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return cloneMap(typed)
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return value
	}
}
