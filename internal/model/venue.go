package model

import "time"

// Venue is the top of the location hierarchy. Deleting a venue cascades to
// its spaces and their screens (enforced by the schema).
type Venue struct {
	ID        int       `db:"id"         json:"id"`
	Name      string    `db:"name"       json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type Space struct {
	ID        int       `db:"id"         json:"id"`
	VenueID   int       `db:"venue_id"   json:"venue_id"`
	Name      string    `db:"name"       json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
