package editor

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var readTimePattern = regexp.MustCompile(`^[0-9]+\s?min$`)

var yearPattern = regexp.MustCompile(`^[0-9]{4}$`)

// ArticleSchema describes the per-language article editing form.
func ArticleSchema() Schema {
	return Schema{
		Name: "article",
		Fields: []Field{
			Text("title", validation.Required, validation.Length(3, 0)),
			Text("category", validation.Required),
			Text("readTime", validation.Required, validation.Match(readTimePattern)),
			Text("author"),
			Text("date", validation.Required),
			Text("summary", validation.Required, validation.Length(10, 0)),
			CSV("tags"),
		},
	}
}

// ProjectSchema describes the per-language project editing form.
func ProjectSchema() Schema {
	return Schema{
		Name: "project",
		Fields: []Field{
			Text("category", validation.Required),
			Text("title", validation.Required, validation.Length(3, 0)),
			Text("client", validation.Required, validation.Length(2, 0)),
			Text("year", validation.Required, validation.Match(yearPattern)),
			Text("context", validation.Required),
			Text("mission", validation.Required),
			StringList("deliverables"),
			StringList("results"),
		},
	}
}
