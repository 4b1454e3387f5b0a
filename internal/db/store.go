// Exposes a Store interface that is passed to API calls and services.
package db

import (
	"github.com/jmoiron/sqlx"

	"github.com/lumacast/lumacast/internal/model"
)

// UpdateScreenParams carries partial screen updates; nil means "leave as is".
type UpdateScreenParams struct {
	Name        *string
	Status      *string
	Resolution  *string
	Orientation *string
}

// ScheduleParams carries the constraint set for creating or updating a
// schedule. On update, nil pointers leave the stored value untouched.
type ScheduleParams struct {
	ScreenID   int
	PlaylistID int
	Name       *string
	Priority   int
	StartDate  *string // "2006-01-02", nil = unconstrained
	EndDate    *string
	StartTime  *string // "HH:mm", nil = unconstrained
	EndTime    *string
	DaysOfWeek []int64 // nil = unconstrained
}

type Store interface {
	// venue functions
	CreateVenue(name string) (model.Venue, error)
	GetVenueByID(id int) (model.Venue, error)
	ListVenues() ([]model.Venue, error)
	UpdateVenue(id int, name *string) error
	DeleteVenue(id int) error

	// space functions
	CreateSpace(venueID int, name string) (model.Space, error)
	GetSpaceByID(id int) (model.Space, error)
	ListSpacesByVenue(venueID int) ([]model.Space, error)
	UpdateSpace(id int, name *string) error
	DeleteSpace(id int) error

	// screen functions
	CreateScreen(spaceID int, name string, resolution *string, orientation string) (model.Screen, error)
	GetScreenByID(id int) (model.Screen, error)
	ListScreens() ([]model.Screen, error)
	ListScreensBySpace(spaceID int) ([]model.Screen, error)
	UpdateScreen(id int, params UpdateScreenParams) error
	AssignPlaylistToScreen(screenID int, playlistID *int) error
	AssignTimecodeToScreen(screenID int, timecodeID *int) error
	SetScreenMatrix(screenID int, row, col *int) error
	TouchScreen(id int) error
	DeleteScreen(id int) error
	ListScreenIDsByPlaylist(playlistID int) ([]int, error)
	ListScreenIDsByTimecode(timecodeID int) ([]int, error)

	// content functions
	CreateContent(name, contentType string, url, body, data *string, duration int) (model.Content, error)
	GetContentByID(id int) (model.Content, error)
	ListContent() ([]model.Content, error)
	UpdateContent(id int, name, url, body, data *string, duration *int) error
	DeleteContent(id int) error

	// playlist functions
	CreatePlaylist(name string) (model.Playlist, error)
	GetPlaylistByID(id int) (model.Playlist, error)
	ListPlaylists() ([]model.Playlist, error)
	UpdatePlaylist(id int, name *string) error
	DeletePlaylist(id int) error
	AddPlaylistEntry(playlistID, contentID, position int, duration *int) (model.PlaylistEntry, error)
	UpdatePlaylistEntry(entryID int, position, duration *int) error
	RemovePlaylistEntry(entryID int) error
	ListPlaylistEntries(playlistID int) ([]model.PlaylistEntry, error)
	ReorderPlaylistEntries(playlistID int, entryIDs []int) error

	// schedule functions
	CreateSchedule(params ScheduleParams) (model.Schedule, error)
	GetScheduleByID(id int) (model.Schedule, error)
	ListSchedulesByScreen(screenID int) ([]model.Schedule, error)
	UpdateSchedule(id int, params ScheduleParams) error
	DeleteSchedule(id int) error

	// timecode functions
	CreateTimecode(name string, speed float64) (model.Timecode, error)
	GetTimecodeByID(id int) (model.Timecode, error)
	ListTimecodes() ([]model.Timecode, error)
	UpdateTimecode(id int, name *string, speed *float64) error
	StartTimecode(id int) (model.Timecode, error)
	StopTimecode(id int) (model.Timecode, error)
	DeleteTimecode(id int) error
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore(database *sqlx.DB) Store {
	if database == nil {
		database = DB
	}
	return &pgStore{db: database}
}
