package sitecontent

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed data/default_content.json
var defaultsFS embed.FS

// DefaultContent returns the built-in bilingual document used to seed the
// store when no persisted document exists. Each call returns a fresh copy.
func DefaultContent() (LocalizedSiteContent, error) {
	var doc LocalizedSiteContent

	raw, err := defaultsFS.ReadFile("data/default_content.json")
	if err != nil {
		return doc, fmt.Errorf("sitecontent: read default document: %w", err)
	}

	if err := json.Unmarshal(raw, &doc); err != nil {
		return doc, fmt.Errorf("sitecontent: decode default document: %w", err)
	}

	return doc, nil
}

// MustDefaultContent is DefaultContent for wiring paths where the embedded
// document is known to be valid.
func MustDefaultContent() LocalizedSiteContent {
	doc, err := DefaultContent()
	if err != nil {
		panic(err)
	}
	return doc
}
