package editor

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Kind classifies how a field is edited and how its value maps onto the
// underlying document.
type Kind string

const (
	// KindGroup nests further fields under an object key.
	KindGroup Kind = "group"
	// KindText edits a plain string.
	KindText Kind = "text"
	// KindCSV edits a string list as one comma-separated text input.
	KindCSV Kind = "csv"
	// KindStringList edits a string list as removable rows of text.
	KindStringList Kind = "string_list"
	// KindRowList edits a list of objects as removable structured rows.
	KindRowList Kind = "row_list"
)

// Field describes one editable node of a document.
type Field struct {
	// Name is the JSON key of the node.
	Name string
	Kind Kind
	// Rules apply to KindText values at validation time.
	Rules []validation.Rule
	// Fields nests children for KindGroup, and the row template for
	// KindRowList.
	Fields []Field
}

// Schema is the full descriptor of an editable document. It replaces
// hand-written per-section mapping code: hydration, extraction, row
// management and validation all walk this tree.
type Schema struct {
	Name   string
	Fields []Field
}

// Group builds a nested field group.
func Group(name string, fields ...Field) Field {
	return Field{Name: name, Kind: KindGroup, Fields: fields}
}

// Text builds a plain string field with optional validation rules.
func Text(name string, rules ...validation.Rule) Field {
	return Field{Name: name, Kind: KindText, Rules: rules}
}

// CSV builds a string-list field edited as comma-separated text.
func CSV(name string) Field {
	return Field{Name: name, Kind: KindCSV}
}

// StringList builds a string-list field edited as rows.
func StringList(name string) Field {
	return Field{Name: name, Kind: KindStringList}
}

// RowList builds an object-list field whose rows follow the given template.
func RowList(name string, rowFields ...Field) Field {
	return Field{Name: name, Kind: KindRowList, Fields: rowFields}
}

// find returns the child field named name.
func findField(fields []Field, name string) (Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
