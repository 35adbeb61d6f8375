package records

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/carnelle/portfolio/internal/sitecontent"
)

// Status is the publication state of a record.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	return s == StatusDraft || s == StatusPublished
}

// LocalizedContent carries one locale payload per supported language.
type LocalizedContent[L any] struct {
	FR L `json:"fr"`
	EN L `json:"en"`
}

// Language returns the payload for lang, falling back to the default
// language for unsupported codes.
func (c LocalizedContent[L]) Language(lang sitecontent.Language) L {
	if lang == sitecontent.LanguageEN {
		return c.EN
	}
	return c.FR
}

// WithLanguage returns a copy with one locale payload replaced.
func (c LocalizedContent[L]) WithLanguage(lang sitecontent.Language, payload L) LocalizedContent[L] {
	if lang == sitecontent.LanguageEN {
		c.EN = payload
	} else {
		c.FR = payload
	}
	return c
}

// Record is one entry of an ordered, bilingual collection. SortIndex drives
// the public ordering; entries sharing an index keep their arrival order.
type Record[L any] struct {
	ID        uuid.UUID           `json:"id"`
	Status    Status              `json:"status"`
	SortIndex int                 `json:"sortIndex"`
	Content   LocalizedContent[L] `json:"content"`
}

var (
	readTimePattern = regexp.MustCompile(`^[0-9]+\s?min$`)
	yearPattern     = regexp.MustCompile(`^[0-9]{4}$`)
)

// ArticleLocale is the per-language payload of a journal article.
type ArticleLocale struct {
	Title    string   `json:"title"`
	Category string   `json:"category"`
	ReadTime string   `json:"readTime"`
	Author   string   `json:"author"`
	Date     string   `json:"date"`
	Summary  string   `json:"summary"`
	Tags     []string `json:"tags"`
}

// Validate enforces the article editing rules.
func (a ArticleLocale) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Title, validation.Required, validation.Length(3, 0)),
		validation.Field(&a.Category, validation.Required),
		validation.Field(&a.ReadTime, validation.Required, validation.Match(readTimePattern)),
		validation.Field(&a.Date, validation.Required),
		validation.Field(&a.Summary, validation.Required, validation.Length(10, 0)),
	)
}

// ProjectLocale is the per-language payload of a portfolio project.
type ProjectLocale struct {
	Category     string   `json:"category"`
	Title        string   `json:"title"`
	Client       string   `json:"client"`
	Year         string   `json:"year"`
	Context      string   `json:"context"`
	Mission      string   `json:"mission"`
	Deliverables []string `json:"deliverables"`
	Results      []string `json:"results"`
}

// Validate enforces the project editing rules.
func (p ProjectLocale) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required, validation.Length(3, 0)),
		validation.Field(&p.Category, validation.Required),
		validation.Field(&p.Client, validation.Required, validation.Length(2, 0)),
		validation.Field(&p.Year, validation.Required, validation.Match(yearPattern)),
		validation.Field(&p.Context, validation.Required),
		validation.Field(&p.Mission, validation.Required),
	)
}
