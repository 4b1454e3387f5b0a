package packets

type CreateVenueRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateVenueRequest struct {
	Name *string `json:"name"`
}

type CreateSpaceRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateSpaceRequest struct {
	Name *string `json:"name"`
}

type CreateScreenRequest struct {
	SpaceID     int     `json:"space_id" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Resolution  *string `json:"resolution"`
	Orientation *string `json:"orientation"`
}

type UpdateScreenRequest struct {
	Name        *string `json:"name"`
	Status      *string `json:"status"`
	Resolution  *string `json:"resolution"`
	Orientation *string `json:"orientation"`
}

// Null playlist_id clears the default playlist.
type AssignPlaylistToScreenRequest struct {
	PlaylistID *int `json:"playlist_id"`
}

// Null timecode_id clears the clock binding.
type AssignTimecodeToScreenRequest struct {
	TimecodeID *int `json:"timecode_id"`
}

// Null coordinates detach the screen from the video-wall grid.
type SetScreenMatrixRequest struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

type CreateContentRequest struct {
	Name     string  `json:"name" binding:"required"`
	Type     string  `json:"type" binding:"required"`
	URL      *string `json:"url"`
	Body     *string `json:"body"`
	Data     *string `json:"data"`
	Duration int     `json:"duration"`
}

type UpdateContentRequest struct {
	Name     *string `json:"name"`
	URL      *string `json:"url"`
	Body     *string `json:"body"`
	Data     *string `json:"data"`
	Duration *int    `json:"duration"`
}

type CreatePlaylistRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdatePlaylistRequest struct {
	Name *string `json:"name"`
}

type AddPlaylistEntryRequest struct {
	ContentID int  `json:"content_id" binding:"required"`
	Position  int  `json:"position"`
	Duration  *int `json:"duration"`
}

type UpdatePlaylistEntryRequest struct {
	Position *int `json:"position"`
	Duration *int `json:"duration"`
}

type ReorderEntriesRequest struct {
	EntryIDs []int `json:"entry_ids" binding:"required"`
}

type CreateScheduleRequest struct {
	PlaylistID int     `json:"playlist_id" binding:"required"`
	Name       *string `json:"name"`
	Priority   int     `json:"priority"`
	StartDate  *string `json:"start_date"` // "2006-01-02"
	EndDate    *string `json:"end_date"`
	StartTime  *string `json:"start_time"` // "HH:mm"
	EndTime    *string `json:"end_time"`
	DaysOfWeek []int64 `json:"days_of_week"` // 0=Sunday
}

type UpdateScheduleRequest struct {
	PlaylistID int     `json:"playlist_id" binding:"required"`
	Name       *string `json:"name"`
	Priority   int     `json:"priority"`
	StartDate  *string `json:"start_date"`
	EndDate    *string `json:"end_date"`
	StartTime  *string `json:"start_time"`
	EndTime    *string `json:"end_time"`
	DaysOfWeek []int64 `json:"days_of_week"`
}

type CreateTimecodeRequest struct {
	Name  string  `json:"name" binding:"required"`
	Speed float64 `json:"speed"`
}

type UpdateTimecodeRequest struct {
	Name  *string  `json:"name"`
	Speed *float64 `json:"speed"`
}
