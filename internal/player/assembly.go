// Package player assembles the single config snapshot a player consumes:
// resolved default playlist, clock binding and matrix geometry.
package player

import (
	"github.com/rs/zerolog/log"

	"github.com/lumacast/lumacast/internal/matrix"
	"github.com/lumacast/lumacast/internal/model"
	"github.com/lumacast/lumacast/internal/playback"
	"github.com/lumacast/lumacast/internal/timecode"
)

// Store is the slice of the persistence layer config assembly needs.
type Store interface {
	GetScreenByID(id int) (model.Screen, error)
	ListScreensBySpace(spaceID int) ([]model.Screen, error)
	GetPlaylistByID(id int) (model.Playlist, error)
	GetTimecodeByID(id int) (model.Timecode, error)
	TouchScreen(id int) error
}

// Config is the immutable snapshot a player runs on. Replacing it wholesale
// is what lets the player's three timers race safely.
type Config struct {
	Screen   ScreenInfo       `json:"screen"`
	Playlist *PlaylistInfo    `json:"playlist,omitempty"`
	Timecode *timecode.Status `json:"timecode,omitempty"`
	Matrix   *MatrixInfo      `json:"matrix,omitempty"`
	Mode     playback.Mode    `json:"mode"`
}

type ScreenInfo struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Resolution  *string `json:"resolution,omitempty"`
	Orientation string  `json:"orientation"`
}

type PlaylistInfo struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Entries []Entry `json:"entries"`
}

// Entry is one playable slot. Renderable is false when the persisted
// content cannot be displayed (malformed composition blob); the slot keeps
// its duration so the sequence still advances on schedule.
type Entry struct {
	ContentID   int              `json:"content_id"`
	Name        string           `json:"name"`
	Type        string           `json:"type"`
	URL         *string          `json:"url,omitempty"`
	Body        *string          `json:"body,omitempty"`
	Duration    int              `json:"duration"`
	Renderable  bool             `json:"renderable"`
	Composition *CompositionInfo `json:"composition,omitempty"`
}

type CompositionInfo struct {
	Width  int          `json:"width"`
	Height int          `json:"height"`
	Effect string       `json:"effect,omitempty"`
	Crop   *matrix.Crop `json:"crop,omitempty"`
}

// MatrixInfo is present only when the screen actually participates in a
// video wall: it has coordinates and so does at least one sibling.
type MatrixInfo struct {
	Row        int               `json:"row"`
	Col        int               `json:"col"`
	Dimensions matrix.Dimensions `json:"dimensions"`
}

type Service struct {
	store  Store
	clocks *timecode.Service
}

func NewService(store Store, clocks *timecode.Service) *Service {
	return &Service{store: store, clocks: clocks}
}

// GetConfig loads and composes the snapshot for a screen, bumping its
// heartbeat on the way (players self-report liveness through this poll).
// Returns the store's NotFound error when the screen does not exist; every
// other degradation (no playlist, dangling clock, bad composition blob)
// yields a usable config instead of an error.
func (s *Service) GetConfig(screenID int) (Config, error) {
	screen, err := s.store.GetScreenByID(screenID)
	if err != nil {
		return Config{}, err
	}

	if err := s.store.TouchScreen(screenID); err != nil {
		// Heartbeat loss degrades the health view, not playback.
		log.Error().Err(err).Int("screen_id", screenID).Msg("failed to record screen heartbeat")
	}

	cfg := Config{
		Screen: ScreenInfo{
			ID:          screen.ID,
			Name:        screen.Name,
			Resolution:  screen.Resolution,
			Orientation: screen.Orientation,
		},
		Mode: playback.ModeLocal,
	}

	mtx := s.assembleMatrix(screen)
	cfg.Matrix = mtx

	if screen.PlaylistID != nil {
		playlist, err := s.store.GetPlaylistByID(*screen.PlaylistID)
		if err != nil {
			log.Error().Err(err).Int("playlist_id", *screen.PlaylistID).Msg("failed to load default playlist, serving idle config")
		} else {
			cfg.Playlist = s.assemblePlaylist(playlist, mtx)
		}
	}

	if screen.TimecodeID != nil {
		st, err := s.clocks.Status(*screen.TimecodeID)
		if err != nil {
			log.Error().Err(err).Int("timecode_id", *screen.TimecodeID).Msg("failed to load bound timecode, falling back to local timing")
		} else {
			cfg.Timecode = &st
			cfg.Mode = playback.ModeClockLocked
		}
	}

	return cfg, nil
}

// assembleMatrix decides matrix participation: coordinates on this screen
// plus coordinates on some sibling. A lone screen with coordinates behaves
// as a standalone display.
func (s *Service) assembleMatrix(screen model.Screen) *MatrixInfo {
	if !screen.HasMatrixCoords() {
		return nil
	}

	siblings, err := s.store.ListScreensBySpace(screen.SpaceID)
	if err != nil {
		log.Error().Err(err).Int("space_id", screen.SpaceID).Msg("failed to list sibling screens for matrix inference")
		return nil
	}

	hasPeer := false
	for _, sib := range siblings {
		if sib.ID != screen.ID && sib.HasMatrixCoords() {
			hasPeer = true
			break
		}
	}
	if !hasPeer {
		return nil
	}

	return &MatrixInfo{
		Row:        *screen.MatrixRow,
		Col:        *screen.MatrixCol,
		Dimensions: matrix.InferDimensions(siblings),
	}
}

func (s *Service) assemblePlaylist(playlist model.Playlist, mtx *MatrixInfo) *PlaylistInfo {
	info := &PlaylistInfo{
		ID:      playlist.ID,
		Name:    playlist.Name,
		Entries: make([]Entry, 0, len(playlist.Entries)),
	}
	for _, pe := range playlist.Entries {
		info.Entries = append(info.Entries, s.assembleEntry(pe, mtx))
	}
	return info
}

func (s *Service) assembleEntry(pe model.PlaylistEntry, mtx *MatrixInfo) Entry {
	entry := Entry{
		ContentID:  pe.ContentID,
		Duration:   pe.EffectiveDuration(),
		Renderable: true,
	}
	if pe.Content == nil {
		entry.Renderable = false
		return entry
	}

	entry.Name = pe.Content.Name
	entry.Type = pe.Content.Type
	entry.URL = pe.Content.URL
	entry.Body = pe.Content.Body

	if pe.Content.Type != model.ContentTypeComposition {
		return entry
	}

	if pe.Content.Data == nil {
		entry.Renderable = false
		return entry
	}
	env, err := model.DecodeComposition(*pe.Content.Data)
	if err != nil {
		// Malformed persisted blob: render nothing for this slot but keep
		// its duration so the sequence advances on schedule.
		log.Error().Err(err).Int("content_id", pe.ContentID).Msg("malformed composition data, entry will not render")
		entry.Renderable = false
		return entry
	}

	comp := &CompositionInfo{
		Width:  env.Width,
		Height: env.Height,
		Effect: env.Meta.Effect,
	}
	if mtx != nil {
		crop := matrix.CalculateCrop(
			float64(env.Width), float64(env.Height),
			mtx.Row, mtx.Col,
			mtx.Dimensions.TotalRows, mtx.Dimensions.TotalCols,
		)
		comp.Crop = &crop
	}
	entry.Composition = comp
	return entry
}
