package model

import "time"

const (
	ContentTypeImage       = "IMAGE"
	ContentTypeVideo       = "VIDEO"
	ContentTypeWebsite     = "WEBSITE"
	ContentTypeMenuHTML    = "MENU_HTML"
	ContentTypeComposition = "COMPOSITION"
)

// DefaultContentDuration is the playback length applied when neither the
// playlist entry nor the content record carries one.
const DefaultContentDuration = 10

// Content is a single playable item. URL applies to IMAGE/VIDEO/WEBSITE,
// Body to MENU_HTML, Data to COMPOSITION (opaque scene blob, see
// CompositionEnvelope).
type Content struct {
	ID        int       `db:"id"         json:"id"`
	Name      string    `db:"name"       json:"name"`
	Type      string    `db:"type"       json:"type"`
	URL       *string   `db:"url"        json:"url,omitempty"`
	Body      *string   `db:"body"       json:"body,omitempty"`
	Data      *string   `db:"data"       json:"data,omitempty"`
	Duration  int       `db:"duration"   json:"duration"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ValidContentType reports whether t is one of the known content types.
func ValidContentType(t string) bool {
	switch t {
	case ContentTypeImage, ContentTypeVideo, ContentTypeWebsite, ContentTypeMenuHTML, ContentTypeComposition:
		return true
	}
	return false
}
