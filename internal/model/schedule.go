package model

import (
	"time"

	"github.com/lib/pq"
)

// Schedule is a time-bounded override rule binding a screen to a playlist.
// Nil constraint fields mean "no constraint"; a schedule with no date, time
// or day constraint applies at every instant. Dates are calendar-day
// granularity, inclusive on both ends. Times are "HH:mm" strings compared
// lexicographically (fixed-width zero-padded). DaysOfWeek uses 0=Sunday.
type Schedule struct {
	ID         int           `db:"id"           json:"id"`
	ScreenID   int           `db:"screen_id"    json:"screen_id"`
	PlaylistID int           `db:"playlist_id"  json:"playlist_id"`
	Name       *string       `db:"name"         json:"name,omitempty"`
	Priority   int           `db:"priority"     json:"priority"`
	StartDate  *time.Time    `db:"start_date"   json:"start_date,omitempty"`
	EndDate    *time.Time    `db:"end_date"     json:"end_date,omitempty"`
	StartTime  *string       `db:"start_time"   json:"start_time,omitempty"`
	EndTime    *string       `db:"end_time"     json:"end_time,omitempty"`
	DaysOfWeek pq.Int64Array `db:"days_of_week" json:"days_of_week,omitempty"`
	CreatedAt  time.Time     `db:"created_at"   json:"created_at"`
	UpdatedAt  time.Time     `db:"updated_at"   json:"updated_at"`
}
