package model

import "time"

// Speed bounds for a timecode multiplier, exclusive low / inclusive high.
const (
	TimecodeSpeedMin = 0.1
	TimecodeSpeedMax = 10.0
)

// Timecode is a named virtual clock used to phase-lock playback across
// screens. Elapsed virtual milliseconds are computed on demand from
// StartedAt and Speed; a stopped clock reads as zero elapsed.
type Timecode struct {
	ID        int       `db:"id"         json:"id"`
	Name      string    `db:"name"       json:"name"`
	Speed     float64   `db:"speed"      json:"speed"`
	StartedAt time.Time `db:"started_at" json:"started_at"`
	IsRunning bool      `db:"is_running" json:"is_running"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ValidTimecodeSpeed reports whether s is inside (TimecodeSpeedMin, TimecodeSpeedMax].
func ValidTimecodeSpeed(s float64) bool {
	return s > TimecodeSpeedMin && s <= TimecodeSpeedMax
}
