package model

import "time"

type Playlist struct {
	ID        int             `db:"id"         json:"id"`
	Name      string          `db:"name"       json:"name"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
	Entries   []PlaylistEntry `db:"-"          json:"entries,omitempty"`
}

// PlaylistEntry binds one content item into a playlist at a position.
// Duration is an optional per-entry override of the content's own duration.
type PlaylistEntry struct {
	ID         int       `db:"id"          json:"id"`
	PlaylistID int       `db:"playlist_id" json:"playlist_id"`
	ContentID  int       `db:"content_id"  json:"content_id"`
	Position   int       `db:"position"    json:"position"`
	Duration   *int      `db:"duration"    json:"duration,omitempty"`
	CreatedAt  time.Time `db:"created_at"  json:"created_at"`
	Content    *Content  `db:"-"           json:"content,omitempty"`
}

// EffectiveDuration resolves the playback seconds for the entry: entry
// override, then content default, then the global fallback.
func (e PlaylistEntry) EffectiveDuration() int {
	if e.Duration != nil && *e.Duration > 0 {
		return *e.Duration
	}
	if e.Content != nil && e.Content.Duration > 0 {
		return e.Content.Duration
	}
	return DefaultContentDuration
}
