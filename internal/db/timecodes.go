package db

import (
	"github.com/rs/zerolog/log"

	"github.com/lumacast/lumacast/internal/model"
)

const timecodeColumns = `id, name, speed, started_at, is_running, created_at, updated_at`

func (s *pgStore) CreateTimecode(name string, speed float64) (model.Timecode, error) {
	var tc model.Timecode
	q := `
	INSERT INTO timecodes (name, speed, started_at, is_running, created_at, updated_at)
	VALUES ($1, $2, now(), false, now(), now())
	RETURNING ` + timecodeColumns + `;`
	if err := s.db.Get(&tc, q, name, speed); err != nil {
		log.Error().Err(err).Msg("failed to create timecode")
		return model.Timecode{}, err
	}
	return tc, nil
}

func (s *pgStore) GetTimecodeByID(id int) (model.Timecode, error) {
	var tc model.Timecode
	err := s.db.Get(&tc, `SELECT `+timecodeColumns+` FROM timecodes WHERE id = $1`, id)
	if err != nil {
		log.Error().Err(err).Int("timecode_id", id).Msg("failed to get timecode by id")
	}
	return tc, err
}

func (s *pgStore) ListTimecodes() ([]model.Timecode, error) {
	var out []model.Timecode
	err := s.db.Select(&out, `SELECT `+timecodeColumns+` FROM timecodes ORDER BY id`)
	if err != nil {
		log.Error().Err(err).Msg("failed to list timecodes")
	}
	return out, err
}

// UpdateTimecode changes name and/or speed. A speed change takes effect on
// the next status read without resetting started_at.
func (s *pgStore) UpdateTimecode(id int, name *string, speed *float64) error {
	_, err := s.db.Exec(`
		UPDATE timecodes
		SET name  = COALESCE($2, name),
		speed = COALESCE($3, speed),
		updated_at = now()
		WHERE id = $1
		`, id, name, speed)
	if err != nil {
		log.Error().Err(err).Int("timecode_id", id).Msg("failed to update timecode")
	}
	return err
}

// StartTimecode resets started_at to now and marks the clock running, as a
// single atomic row update.
func (s *pgStore) StartTimecode(id int) (model.Timecode, error) {
	var tc model.Timecode
	q := `
	UPDATE timecodes
	SET started_at = now(),
	is_running = true,
	updated_at = now()
	WHERE id = $1
	RETURNING ` + timecodeColumns + `;`
	if err := s.db.Get(&tc, q, id); err != nil {
		log.Error().Err(err).Int("timecode_id", id).Msg("failed to start timecode")
		return model.Timecode{}, err
	}
	return tc, nil
}

// StopTimecode clears is_running; started_at is left untouched.
func (s *pgStore) StopTimecode(id int) (model.Timecode, error) {
	var tc model.Timecode
	q := `
	UPDATE timecodes
	SET is_running = false,
	updated_at = now()
	WHERE id = $1
	RETURNING ` + timecodeColumns + `;`
	if err := s.db.Get(&tc, q, id); err != nil {
		log.Error().Err(err).Int("timecode_id", id).Msg("failed to stop timecode")
		return model.Timecode{}, err
	}
	return tc, nil
}

func (s *pgStore) DeleteTimecode(id int) error {
	_, err := s.db.Exec(`DELETE FROM timecodes WHERE id = $1`, id)
	if err != nil {
		log.Error().Err(err).Int("timecode_id", id).Msg("failed to delete timecode")
	}
	return err
}
