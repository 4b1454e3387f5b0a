package model

import "time"

// Advisory display status. Liveness is derived from the heartbeat, not from
// this field.
const (
	ScreenStatusOnline  = "ONLINE"
	ScreenStatusOffline = "OFFLINE"
)

const (
	OrientationLandscape = "LANDSCAPE"
	OrientationPortrait  = "PORTRAIT"
)

// Screen represents a display device in the system. UpdatedAt doubles as the
// heartbeat timestamp: players bump it on every config poll.
type Screen struct {
	ID          int       `db:"id"          json:"id"`
	SpaceID     int       `db:"space_id"    json:"space_id"`
	Name        string    `db:"name"        json:"name"`
	Status      string    `db:"status"      json:"status"`
	Resolution  *string   `db:"resolution"  json:"resolution"`
	Orientation string    `db:"orientation" json:"orientation"`
	PlaylistID  *int      `db:"playlist_id" json:"playlist_id"`
	TimecodeID  *int      `db:"timecode_id" json:"timecode_id"`
	MatrixRow   *int      `db:"matrix_row"  json:"matrix_row"`
	MatrixCol   *int      `db:"matrix_col"  json:"matrix_col"`
	CreatedAt   time.Time `db:"created_at"  json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"  json:"updated_at"`
}

// HasMatrixCoords reports whether the screen carries a grid cell. A screen
// only acts as a matrix member when some sibling in the same space also
// carries coordinates; that check lives in the config assembly.
func (s Screen) HasMatrixCoords() bool {
	return s.MatrixRow != nil && s.MatrixCol != nil
}
