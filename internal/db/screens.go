package db

import (
	"github.com/rs/zerolog/log"

	"github.com/lumacast/lumacast/internal/model"
)

const screenColumns = `
	id, space_id, name, status, resolution, orientation,
	playlist_id, timecode_id, matrix_row, matrix_col,
	created_at, updated_at`

func (s *pgStore) CreateScreen(spaceID int, name string, resolution *string, orientation string) (model.Screen, error) {
	var sc model.Screen
	q := `
	INSERT INTO screens (space_id, name, status, resolution, orientation, created_at, updated_at)
	VALUES ($1, $2, 'OFFLINE', $3, $4, now(), now())
	RETURNING ` + screenColumns + `;`
	if err := s.db.Get(&sc, q, spaceID, name, resolution, orientation); err != nil {
		log.Error().Err(err).Int("space_id", spaceID).Msg("failed to create screen")
		return model.Screen{}, err
	}
	return sc, nil
}

func (s *pgStore) GetScreenByID(id int) (model.Screen, error) {
	var sc model.Screen
	err := s.db.Get(&sc, `SELECT `+screenColumns+` FROM screens WHERE id = $1`, id)
	if err != nil {
		log.Error().Err(err).Int("screen_id", id).Msg("failed to get screen by id")
	}
	return sc, err
}

func (s *pgStore) ListScreens() ([]model.Screen, error) {
	var screens []model.Screen
	err := s.db.Select(&screens, `SELECT `+screenColumns+` FROM screens ORDER BY id`)
	if err != nil {
		log.Error().Err(err).Msg("failed to list screens")
	}
	return screens, err
}

func (s *pgStore) ListScreensBySpace(spaceID int) ([]model.Screen, error) {
	var screens []model.Screen
	err := s.db.Select(&screens, `
		SELECT `+screenColumns+`
		FROM screens
		WHERE space_id = $1
		ORDER BY id
		`, spaceID)
	if err != nil {
		log.Error().Err(err).Int("space_id", spaceID).Msg("failed to list screens by space")
	}
	return screens, err
}

func (s *pgStore) UpdateScreen(id int, params UpdateScreenParams) error {
	_, err := s.db.Exec(`
		UPDATE screens
		SET name        = COALESCE($2, name),
		status      = COALESCE($3, status),
		resolution  = COALESCE($4, resolution),
		orientation = COALESCE($5, orientation),
		updated_at  = now()
		WHERE id = $1
		`, id, params.Name, params.Status, params.Resolution, params.Orientation)
	if err != nil {
		log.Error().Err(err).Int("screen_id", id).Msg("failed to update screen")
	}
	return err
}

// AssignPlaylistToScreen sets or clears the screen's default playlist.
func (s *pgStore) AssignPlaylistToScreen(screenID int, playlistID *int) error {
	_, err := s.db.Exec(`
		UPDATE screens
		SET playlist_id = $2,
		updated_at = now()
		WHERE id = $1
		`, screenID, playlistID)
	if err != nil {
		log.Error().Err(err).Int("screen_id", screenID).Msg("failed to assign playlist to screen")
	}
	return err
}

// AssignTimecodeToScreen sets or clears the screen's clock binding.
func (s *pgStore) AssignTimecodeToScreen(screenID int, timecodeID *int) error {
	_, err := s.db.Exec(`
		UPDATE screens
		SET timecode_id = $2,
		updated_at = now()
		WHERE id = $1
		`, screenID, timecodeID)
	if err != nil {
		log.Error().Err(err).Int("screen_id", screenID).Msg("failed to assign timecode to screen")
	}
	return err
}

func (s *pgStore) SetScreenMatrix(screenID int, row, col *int) error {
	_, err := s.db.Exec(`
		UPDATE screens
		SET matrix_row = $2,
		matrix_col = $3,
		updated_at = now()
		WHERE id = $1
		`, screenID, row, col)
	if err != nil {
		log.Error().Err(err).Int("screen_id", screenID).Msg("failed to set screen matrix position")
	}
	return err
}

// TouchScreen bumps only the heartbeat timestamp. Players call this through
// the config poll; it must not disturb any other field.
func (s *pgStore) TouchScreen(id int) error {
	_, err := s.db.Exec(`UPDATE screens SET updated_at = now() WHERE id = $1`, id)
	if err != nil {
		log.Error().Err(err).Int("screen_id", id).Msg("failed to touch screen heartbeat")
	}
	return err
}

func (s *pgStore) DeleteScreen(id int) error {
	_, err := s.db.Exec(`DELETE FROM screens WHERE id = $1`, id)
	if err != nil {
		log.Error().Err(err).Int("screen_id", id).Msg("failed to delete screen")
	}
	return err
}

func (s *pgStore) ListScreenIDsByPlaylist(playlistID int) ([]int, error) {
	var ids []int
	err := s.db.Select(&ids, `SELECT id FROM screens WHERE playlist_id = $1 ORDER BY id`, playlistID)
	if err != nil {
		log.Error().Err(err).Int("playlist_id", playlistID).Msg("failed to list screens by playlist")
	}
	return ids, err
}

func (s *pgStore) ListScreenIDsByTimecode(timecodeID int) ([]int, error) {
	var ids []int
	err := s.db.Select(&ids, `SELECT id FROM screens WHERE timecode_id = $1 ORDER BY id`, timecodeID)
	if err != nil {
		log.Error().Err(err).Int("timecode_id", timecodeID).Msg("failed to list screens by timecode")
	}
	return ids, err
}
