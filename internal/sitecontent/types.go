package sitecontent

// Language identifies one of the supported site languages.
type Language string

const (
	LanguageFR Language = "fr"
	LanguageEN Language = "en"
)

// DefaultLanguage is the language used when no override or stored choice exists.
const DefaultLanguage = LanguageFR

// Languages lists every supported language. The localized document always
// carries one sub-document per entry.
var Languages = []Language{LanguageFR, LanguageEN}

// Valid reports whether l is a supported language code.
func (l Language) Valid() bool {
	return l == LanguageFR || l == LanguageEN
}

// ParseLanguage validates a raw language code, returning ok=false for
// anything outside the supported set.
func ParseLanguage(raw string) (Language, bool) {
	l := Language(raw)
	return l, l.Valid()
}

// NavLabels holds the localized navigation entries rendered in the header.
type NavLabels struct {
	Home     string `json:"home"`
	About    string `json:"about"`
	Projects string `json:"projects"`
	Blog     string `json:"blog"`
	Contact  string `json:"contact"`
	Admin    string `json:"admin"`
}

// HeaderContent is the site-wide header section.
type HeaderContent struct {
	BrandTitle   string    `json:"brandTitle"`
	Subtitle     string    `json:"subtitle"`
	BrandLogoURL string    `json:"brandLogoUrl"`
	BrandLogoAlt string    `json:"brandLogoAlt"`
	Nav          NavLabels `json:"nav"`
}

// FooterContent is the site-wide footer section.
type FooterContent struct {
	Rights       string `json:"rights"`
	ContactLabel string `json:"contactLabel"`
	Email        string `json:"email"`
	Copyright    string `json:"copyright"`
}

// ValueLabel is a small metric pair used by several sections.
type ValueLabel struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// PillCard is a card with an eyebrow pill, title and body text.
type PillCard struct {
	Pill  string `json:"pill"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// ServiceCard describes one service offering with its bullet items.
type ServiceCard struct {
	Title string   `json:"title"`
	Text  string   `json:"text"`
	Items []string `json:"items"`
}

// ProcessStep is a numbered step of the working method.
type ProcessStep struct {
	Number string `json:"number"`
	Title  string `json:"title"`
	Text   string `json:"text"`
}

// ShowcaseCard is a portfolio highlight card with a meta line.
type ShowcaseCard struct {
	Pill  string `json:"pill"`
	Title string `json:"title"`
	Text  string `json:"text"`
	Meta  string `json:"meta"`
}

// Testimonial is a quoted partner statement.
type Testimonial struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// TitleDescription pairs a title with a longer description.
type TitleDescription struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TitleDetail pairs a title with a short detail line.
type TitleDetail struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// NamedLink is a partner logo entry.
type NamedLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// CTABlock is a call-to-action strip.
type CTABlock struct {
	Eyebrow string `json:"eyebrow"`
	Title   string `json:"title"`
	Lead    string `json:"lead"`
	Button  string `json:"button"`
}

// HomeContent is the landing page section tree.
type HomeContent struct {
	Hero struct {
		Eyebrow  string `json:"eyebrow"`
		Title    string `json:"title"`
		Lead     string `json:"lead"`
		ImageURL string `json:"imageUrl"`
		ImageAlt string `json:"imageAlt"`
		Actions  struct {
			Primary   string `json:"primary"`
			Secondary string `json:"secondary"`
		} `json:"actions"`
		Tags []string `json:"tags"`
	} `json:"hero"`
	Panel struct {
		Pill  string       `json:"pill"`
		Title string       `json:"title"`
		List  []string     `json:"list"`
		Micro []ValueLabel `json:"micro"`
	} `json:"panel"`
	Proof struct {
		Cards []PillCard `json:"cards"`
	} `json:"proof"`
	Services struct {
		Eyebrow string        `json:"eyebrow"`
		Title   string        `json:"title"`
		Lead    string        `json:"lead"`
		Cards   []ServiceCard `json:"cards"`
	} `json:"services"`
	Process struct {
		Eyebrow string        `json:"eyebrow"`
		Title   string        `json:"title"`
		Steps   []ProcessStep `json:"steps"`
	} `json:"process"`
	Showcase struct {
		Eyebrow string         `json:"eyebrow"`
		Title   string         `json:"title"`
		Cards   []ShowcaseCard `json:"cards"`
	} `json:"showcase"`
	Testimonials struct {
		Eyebrow string        `json:"eyebrow"`
		Title   string        `json:"title"`
		Items   []Testimonial `json:"items"`
	} `json:"testimonials"`
	CTA   CTABlock `json:"cta"`
	Media struct {
		Eyebrow     string `json:"eyebrow"`
		Title       string `json:"title"`
		Lead        string `json:"lead"`
		Photos      string `json:"photos"`
		Videos      string `json:"videos"`
		Docs        string `json:"docs"`
		Audio       string `json:"audio"`
		EmptyPhotos string `json:"emptyPhotos"`
		EmptyVideos string `json:"emptyVideos"`
		EmptyDocs   string `json:"emptyDocs"`
		EmptyAudio  string `json:"emptyAudio"`
	} `json:"media"`
}

// AboutContent is the about page section tree.
type AboutContent struct {
	Hero struct {
		Eyebrow   string       `json:"eyebrow"`
		Title     string       `json:"title"`
		Lead      string       `json:"lead"`
		ImageURL  string       `json:"imageUrl"`
		ImageAlt  string       `json:"imageAlt"`
		Metrics   []ValueLabel `json:"metrics"`
		CardTitle string       `json:"cardTitle"`
		CardList  []string     `json:"cardList"`
	} `json:"hero"`
	Values struct {
		Eyebrow string             `json:"eyebrow"`
		Title   string             `json:"title"`
		Items   []TitleDescription `json:"items"`
	} `json:"values"`
	Timeline struct {
		Eyebrow string        `json:"eyebrow"`
		Title   string        `json:"title"`
		Items   []TitleDetail `json:"items"`
	} `json:"timeline"`
	Highlights struct {
		Title string        `json:"title"`
		Items []TitleDetail `json:"items"`
	} `json:"highlights"`
	Partners struct {
		Eyebrow string      `json:"eyebrow"`
		Title   string      `json:"title"`
		Items   []string    `json:"items"`
		Logos   []NamedLink `json:"logos"`
	} `json:"partners"`
	PartnerMedia EmptyableSection `json:"partnerMedia"`
	Publications EmptyableSection `json:"publications"`
	Showreel     EmptyableSection `json:"showreel"`
	PressKit     struct {
		Eyebrow string             `json:"eyebrow"`
		Title   string             `json:"title"`
		Items   []TitleDescription `json:"items"`
	} `json:"pressKit"`
	CTA CTABlock `json:"cta"`
}

// EmptyableSection is a media placeholder section with an empty-state label.
type EmptyableSection struct {
	Eyebrow string `json:"eyebrow"`
	Title   string `json:"title"`
	Empty   string `json:"empty"`
}

// ProjectsContent is the projects page section tree.
type ProjectsContent struct {
	Hero struct {
		Eyebrow    string   `json:"eyebrow"`
		Title      string   `json:"title"`
		Lead       string   `json:"lead"`
		ImageURL   string   `json:"imageUrl"`
		ImageAlt   string   `json:"imageAlt"`
		PanelTitle string   `json:"panelTitle"`
		Bullets    []string `json:"bullets"`
	} `json:"hero"`
	Media struct {
		Eyebrow    string `json:"eyebrow"`
		Title      string `json:"title"`
		EmptyPhoto string `json:"emptyPhoto"`
		EmptyVideo string `json:"emptyVideo"`
		EmptyDoc   string `json:"emptyDoc"`
	} `json:"media"`
	CTA CTABlock `json:"cta"`
}

// BlogContent is the journal page section tree.
type BlogContent struct {
	Hero struct {
		Eyebrow   string   `json:"eyebrow"`
		Title     string   `json:"title"`
		Lead      string   `json:"lead"`
		ImageURL  string   `json:"imageUrl"`
		ImageAlt  string   `json:"imageAlt"`
		ListTitle string   `json:"listTitle"`
		List      []string `json:"list"`
	} `json:"hero"`
	Resources struct {
		Eyebrow    string `json:"eyebrow"`
		Title      string `json:"title"`
		PDFTitle   string `json:"pdfTitle"`
		AudioTitle string `json:"audioTitle"`
		EmptyPDF   string `json:"emptyPdf"`
		EmptyAudio string `json:"emptyAudio"`
		Hint       string `json:"hint"`
	} `json:"resources"`
	CTA CTABlock `json:"cta"`
}

// ContactCard is one contact-info card with free-form lines.
type ContactCard struct {
	Title string   `json:"title"`
	Lines []string `json:"lines"`
}

// ContactContent is the contact page section tree, including the localized
// form labels and error strings.
type ContactContent struct {
	Hero struct {
		Eyebrow string `json:"eyebrow"`
		Title   string `json:"title"`
		Lead    string `json:"lead"`
	} `json:"hero"`
	Cards []ContactCard `json:"cards"`
	Form  struct {
		FullName    string `json:"fullName"`
		Email       string `json:"email"`
		Phone       string `json:"phone"`
		Profile     string `json:"profile"`
		ProjectType string `json:"projectType"`
		Message     string `json:"message"`
		Consent     string `json:"consent"`
		Submit      string `json:"submit"`
		Success     string `json:"success"`
	} `json:"form"`
	Errors struct {
		FullName string `json:"fullName"`
		Email    string `json:"email"`
		Message  string `json:"message"`
		Consent  string `json:"consent"`
	} `json:"errors"`
	ProfileOptions []ValueLabel `json:"profileOptions"`
	ProjectOptions []ValueLabel `json:"projectOptions"`
}

// SiteContent is the full single-language site document. The shape (field
// names, nesting, list kinds) is fixed at build time and identical across
// languages; only leaf values and list lengths vary.
type SiteContent struct {
	Theme    string          `json:"theme"`
	Header   HeaderContent   `json:"header"`
	Footer   FooterContent   `json:"footer"`
	Home     HomeContent     `json:"home"`
	About    AboutContent    `json:"about"`
	Projects ProjectsContent `json:"projects"`
	Blog     BlogContent     `json:"blog"`
	Contact  ContactContent  `json:"contact"`
}

// LocalizedSiteContent carries one full sub-document per supported language.
// Both languages are always present; replacing a language replaces its entire
// sub-document, never a partial merge.
type LocalizedSiteContent struct {
	FR SiteContent `json:"fr"`
	EN SiteContent `json:"en"`
}

// Language returns the sub-document for lang. Unsupported codes fall back to
// the default language.
func (c LocalizedSiteContent) Language(lang Language) SiteContent {
	if lang == LanguageEN {
		return c.EN
	}
	return c.FR
}

// WithLanguage returns a copy of the document with the named language's
// sub-document replaced and the other language untouched.
func (c LocalizedSiteContent) WithLanguage(lang Language, content SiteContent) LocalizedSiteContent {
	if lang == LanguageEN {
		c.EN = content
	} else {
		c.FR = content
	}
	return c
}

// Themes lists the selectable visual themes.
var Themes = []string{"sable", "noir-pro", "presse", "emeraude", "sunset"}

// DefaultTheme is applied when the stored theme value is empty.
const DefaultTheme = "sable"

// ValidTheme reports whether name is a known theme.
func ValidTheme(name string) bool {
	for _, t := range Themes {
		if t == name {
			return true
		}
	}
	return false
}
