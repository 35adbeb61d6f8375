package editor

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Row templates shared by several sections.
func valueLabelRow() []Field {
	return []Field{Text("value"), Text("label")}
}

func titleDescriptionRow() []Field {
	return []Field{Text("title"), Text("description")}
}

func titleDetailRow() []Field {
	return []Field{Text("title"), Text("detail")}
}

func ctaGroup(name string) Field {
	return Group(name, Text("eyebrow"), Text("title"), Text("lead"), Text("button"))
}

func emptyableGroup(name string) Field {
	return Group(name, Text("eyebrow"), Text("title"), Text("empty"))
}

// SiteContentSchema describes every editable field of a single-language site
// document: nesting, list shapes and the admin validation rules.
func SiteContentSchema() Schema {
	return Schema{
		Name: "site_content",
		Fields: []Field{
			Text("theme"),
			Group("header",
				Text("brandTitle", validation.Required, validation.Length(2, 0)),
				Text("subtitle", validation.Required, validation.Length(3, 0)),
				Text("brandLogoUrl"),
				Text("brandLogoAlt"),
				Group("nav",
					Text("home"), Text("about"), Text("projects"),
					Text("blog"), Text("contact"), Text("admin"),
				),
			),
			Group("footer",
				Text("rights"),
				Text("contactLabel"),
				Text("email", validation.Required, is.Email),
				Text("copyright"),
			),
			Group("home",
				Group("hero",
					Text("eyebrow"), Text("title"), Text("lead"),
					Text("imageUrl"), Text("imageAlt"),
					Group("actions", Text("primary"), Text("secondary")),
					CSV("tags"),
				),
				Group("panel",
					Text("pill"), Text("title"),
					StringList("list"),
					RowList("micro", valueLabelRow()...),
				),
				Group("proof",
					RowList("cards", Text("pill"), Text("title"), Text("text")),
				),
				Group("services",
					Text("eyebrow"), Text("title"), Text("lead"),
					RowList("cards", Text("title"), Text("text"), StringList("items")),
				),
				Group("process",
					Text("eyebrow"), Text("title"),
					RowList("steps", Text("number"), Text("title"), Text("text")),
				),
				Group("showcase",
					Text("eyebrow"), Text("title"),
					RowList("cards", Text("pill"), Text("title"), Text("text"), Text("meta")),
				),
				Group("testimonials",
					Text("eyebrow"), Text("title"),
					RowList("items", Text("text"), Text("author")),
				),
				ctaGroup("cta"),
				Group("media",
					Text("eyebrow"), Text("title"), Text("lead"),
					Text("photos"), Text("videos"), Text("docs"), Text("audio"),
					Text("emptyPhotos"), Text("emptyVideos"), Text("emptyDocs"), Text("emptyAudio"),
				),
			),
			Group("about",
				Group("hero",
					Text("eyebrow"), Text("title"), Text("lead"),
					Text("imageUrl"), Text("imageAlt"),
					RowList("metrics", valueLabelRow()...),
					Text("cardTitle"),
					StringList("cardList"),
				),
				Group("values",
					Text("eyebrow"), Text("title"),
					RowList("items", titleDescriptionRow()...),
				),
				Group("timeline",
					Text("eyebrow"), Text("title"),
					RowList("items", titleDetailRow()...),
				),
				Group("highlights",
					Text("title"),
					RowList("items", titleDetailRow()...),
				),
				Group("partners",
					Text("eyebrow"), Text("title"),
					StringList("items"),
					RowList("logos", Text("name"), Text("url")),
				),
				emptyableGroup("partnerMedia"),
				emptyableGroup("publications"),
				emptyableGroup("showreel"),
				Group("pressKit",
					Text("eyebrow"), Text("title"),
					RowList("items", titleDescriptionRow()...),
				),
				ctaGroup("cta"),
			),
			Group("projects",
				Group("hero",
					Text("eyebrow"), Text("title"), Text("lead"),
					Text("imageUrl"), Text("imageAlt"),
					Text("panelTitle"),
					StringList("bullets"),
				),
				Group("media",
					Text("eyebrow"), Text("title"),
					Text("emptyPhoto"), Text("emptyVideo"), Text("emptyDoc"),
				),
				ctaGroup("cta"),
			),
			Group("blog",
				Group("hero",
					Text("eyebrow"), Text("title"), Text("lead"),
					Text("imageUrl"), Text("imageAlt"),
					Text("listTitle"),
					StringList("list"),
				),
				Group("resources",
					Text("eyebrow"), Text("title"),
					Text("pdfTitle"), Text("audioTitle"),
					Text("emptyPdf"), Text("emptyAudio"),
					Text("hint"),
				),
				ctaGroup("cta"),
			),
			Group("contact",
				Group("hero", Text("eyebrow"), Text("title"), Text("lead")),
				RowList("cards", Text("title"), StringList("lines")),
				Group("form",
					Text("fullName"), Text("email"), Text("phone"),
					Text("profile"), Text("projectType"), Text("message"),
					Text("consent"), Text("submit"), Text("success"),
				),
				Group("errors",
					Text("fullName"), Text("email"), Text("message"), Text("consent"),
				),
				RowList("profileOptions", valueLabelRow()...),
				RowList("projectOptions", valueLabelRow()...),
			),
		},
	}
}
