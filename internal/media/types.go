package media

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Type is the broad kind of a media item, derived from its MIME type.
type Type string

const (
	TypeImage    Type = "image"
	TypeVideo    Type = "video"
	TypeAudio    Type = "audio"
	TypeDocument Type = "document"
)

// Category slots an item into one of the portfolio's media shelves.
type Category string

const (
	CategoryPressPhoto     Category = "press-photo"
	CategoryEventPhoto     Category = "event-photo"
	CategoryShowreel       Category = "showreel"
	CategoryPublicationPDF Category = "publication-pdf"
	CategoryAudio          Category = "audio"
	CategoryPartner        Category = "partner"
	CategoryOther          Category = "other"
)

// Categories lists every selectable category.
var Categories = []Category{
	CategoryPressPhoto,
	CategoryEventPhoto,
	CategoryShowreel,
	CategoryPublicationPDF,
	CategoryAudio,
	CategoryPartner,
	CategoryOther,
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// MaxUploadSize caps accepted uploads at 50MB.
const MaxUploadSize = 50 << 20

// allowedMIMETypes are the upload formats the admin accepts.
var allowedMIMETypes = map[string]struct{}{
	"image/png":       {},
	"image/jpeg":      {},
	"image/gif":       {},
	"video/mp4":       {},
	"audio/mpeg":      {},
	"audio/wav":       {},
	"audio/ogg":       {},
	"application/pdf": {},
}

// AllowedMIME reports whether a content type may be uploaded.
func AllowedMIME(contentType string) bool {
	_, ok := allowedMIMETypes[contentType]
	return ok
}

// TypeForMIME buckets a MIME type into a media Type.
func TypeForMIME(contentType string) Type {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return TypeImage
	case strings.HasPrefix(contentType, "video/"):
		return TypeVideo
	case strings.HasPrefix(contentType, "audio/"):
		return TypeAudio
	default:
		return TypeDocument
	}
}

// Item is one entry of the media library.
type Item struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Path        string    `json:"path,omitempty"`
	UploadedAt  time.Time `json:"uploadedAt"`
	Type        Type      `json:"type"`
	Category    Category  `json:"category"`
}
