package packets

import (
	"time"

	"github.com/lumacast/lumacast/internal/model"
	"github.com/lumacast/lumacast/internal/schedule"
)

// Responses mirror the models but flatten times to RFC3339.

type VenueResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func NewVenueResponse(v model.Venue) VenueResponse {
	return VenueResponse{
		ID:        v.ID,
		Name:      v.Name,
		CreatedAt: v.CreatedAt.Format(time.RFC3339),
		UpdatedAt: v.UpdatedAt.Format(time.RFC3339),
	}
}

type SpaceResponse struct {
	ID        int    `json:"id"`
	VenueID   int    `json:"venue_id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func NewSpaceResponse(s model.Space) SpaceResponse {
	return SpaceResponse{
		ID:        s.ID,
		VenueID:   s.VenueID,
		Name:      s.Name,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
	}
}

type ScreenResponse struct {
	ID          int     `json:"id"`
	SpaceID     int     `json:"space_id"`
	Name        string  `json:"name"`
	Status      string  `json:"status"`
	Resolution  *string `json:"resolution"`
	Orientation string  `json:"orientation"`
	PlaylistID  *int    `json:"playlist_id"`
	TimecodeID  *int    `json:"timecode_id"`
	MatrixRow   *int    `json:"matrix_row"`
	MatrixCol   *int    `json:"matrix_col"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func NewScreenResponse(s model.Screen) ScreenResponse {
	return ScreenResponse{
		ID:          s.ID,
		SpaceID:     s.SpaceID,
		Name:        s.Name,
		Status:      s.Status,
		Resolution:  s.Resolution,
		Orientation: s.Orientation,
		PlaylistID:  s.PlaylistID,
		TimecodeID:  s.TimecodeID,
		MatrixRow:   s.MatrixRow,
		MatrixCol:   s.MatrixCol,
		CreatedAt:   s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   s.UpdatedAt.Format(time.RFC3339),
	}
}

type ContentResponse struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	URL       *string `json:"url,omitempty"`
	Body      *string `json:"body,omitempty"`
	Data      *string `json:"data,omitempty"`
	Duration  int     `json:"duration"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

func NewContentResponse(c model.Content) ContentResponse {
	return ContentResponse{
		ID:        c.ID,
		Name:      c.Name,
		Type:      c.Type,
		URL:       c.URL,
		Body:      c.Body,
		Data:      c.Data,
		Duration:  c.Duration,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}

type PlaylistEntryResponse struct {
	ID        int              `json:"id"`
	ContentID int              `json:"content_id"`
	Position  int              `json:"position"`
	Duration  *int             `json:"duration,omitempty"`
	Content   *ContentResponse `json:"content,omitempty"`
}

type PlaylistResponse struct {
	ID        int                     `json:"id"`
	Name      string                  `json:"name"`
	CreatedAt string                  `json:"created_at"`
	UpdatedAt string                  `json:"updated_at"`
	Entries   []PlaylistEntryResponse `json:"entries"`
}

func NewPlaylistResponse(p model.Playlist) PlaylistResponse {
	out := PlaylistResponse{
		ID:        p.ID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
		Entries:   make([]PlaylistEntryResponse, 0, len(p.Entries)),
	}
	for _, e := range p.Entries {
		er := PlaylistEntryResponse{
			ID:        e.ID,
			ContentID: e.ContentID,
			Position:  e.Position,
			Duration:  e.Duration,
		}
		if e.Content != nil {
			cr := NewContentResponse(*e.Content)
			er.Content = &cr
		}
		out.Entries = append(out.Entries, er)
	}
	return out
}

type ScheduleResponse struct {
	ID         int     `json:"id"`
	ScreenID   int     `json:"screen_id"`
	PlaylistID int     `json:"playlist_id"`
	Name       *string `json:"name,omitempty"`
	Priority   int     `json:"priority"`
	StartDate  *string `json:"start_date,omitempty"`
	EndDate    *string `json:"end_date,omitempty"`
	StartTime  *string `json:"start_time,omitempty"`
	EndTime    *string `json:"end_time,omitempty"`
	DaysOfWeek []int64 `json:"days_of_week,omitempty"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

func NewScheduleResponse(s model.Schedule) ScheduleResponse {
	out := ScheduleResponse{
		ID:         s.ID,
		ScreenID:   s.ScreenID,
		PlaylistID: s.PlaylistID,
		Name:       s.Name,
		Priority:   s.Priority,
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
		DaysOfWeek: s.DaysOfWeek,
		CreatedAt:  s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  s.UpdatedAt.Format(time.RFC3339),
	}
	if s.StartDate != nil {
		d := s.StartDate.Format("2006-01-02")
		out.StartDate = &d
	}
	if s.EndDate != nil {
		d := s.EndDate.Format("2006-01-02")
		out.EndDate = &d
	}
	return out
}

type TimecodeResponse struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Speed     float64 `json:"speed"`
	StartedAt string  `json:"started_at"`
	IsRunning bool    `json:"is_running"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

func NewTimecodeResponse(tc model.Timecode) TimecodeResponse {
	return TimecodeResponse{
		ID:        tc.ID,
		Name:      tc.Name,
		Speed:     tc.Speed,
		StartedAt: tc.StartedAt.Format(time.RFC3339),
		IsRunning: tc.IsRunning,
		CreatedAt: tc.CreatedAt.Format(time.RFC3339),
		UpdatedAt: tc.UpdatedAt.Format(time.RFC3339),
	}
}

// ScreenHealthResponse is the diagnostics row: heartbeat-derived liveness
// plus what the screen should be playing per the schedule resolver.
type ScreenHealthResponse struct {
	ID             int              `json:"id"`
	Name           string           `json:"name"`
	Space          string           `json:"space"`
	Status         string           `json:"status"` // "online" | "offline"
	LastSeen       string           `json:"last_seen"`
	ScheduleCount  int              `json:"schedule_count"`
	ActiveSchedule *schedule.Active `json:"active_schedule"`
}
