package schedule

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lumacast/lumacast/internal/model"
)

// Store is the slice of the persistence layer the resolver service needs.
type Store interface {
	ListSchedulesByScreen(screenID int) ([]model.Schedule, error)
	GetPlaylistByID(id int) (model.Playlist, error)
}

// Service resolves the active schedule for a screen against the store. The
// evaluation instant is injectable so callers (and tests) can ask about any
// point in time, not just now.
type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// WithNow overrides the default clock. Returns the service for chaining in
// test setups.
func (s *Service) WithNow(now func() time.Time) *Service {
	s.now = now
	return s
}

// ResolveForScreen fetches the screen's schedules and resolves at the given
// instant; a zero instant means now. Returns nil when no schedule is
// active.
func (s *Service) ResolveForScreen(screenID int, at time.Time) (*Active, error) {
	if at.IsZero() {
		at = s.now()
	}

	schedules, err := s.store.ListSchedulesByScreen(screenID)
	if err != nil {
		return nil, err
	}

	chosen := Resolve(schedules, at)
	if chosen == nil {
		return nil, nil
	}

	active := &Active{
		ScheduleID: chosen.ID,
		Name:       chosen.Name,
		PlaylistID: chosen.PlaylistID,
	}

	playlist, err := s.store.GetPlaylistByID(chosen.PlaylistID)
	if err != nil {
		// The schedule still resolves; the name is display sugar.
		log.Error().Err(err).Int("playlist_id", chosen.PlaylistID).Msg("failed to resolve playlist name for active schedule")
		return active, nil
	}
	active.PlaylistName = playlist.Name
	return active, nil
}
