package db

import (
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/lumacast/lumacast/internal/model"
)

const scheduleColumns = `
	id, screen_id, playlist_id, name, priority,
	start_date, end_date, start_time, end_time, days_of_week,
	created_at, updated_at`

func daysArray(days []int64) interface{} {
	if days == nil {
		return nil
	}
	return pq.Int64Array(days)
}

func (s *pgStore) CreateSchedule(params ScheduleParams) (model.Schedule, error) {
	var sch model.Schedule
	q := `
	INSERT INTO schedules
	(screen_id, playlist_id, name, priority,
	 start_date, end_date, start_time, end_time, days_of_week,
	 created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5::date, $6::date, $7, $8, $9, now(), now())
	RETURNING ` + scheduleColumns + `;`
	if err := s.db.Get(&sch, q,
		params.ScreenID, params.PlaylistID, params.Name, params.Priority,
		params.StartDate, params.EndDate, params.StartTime, params.EndTime,
		daysArray(params.DaysOfWeek),
	); err != nil {
		log.Error().Err(err).Int("screen_id", params.ScreenID).Msg("failed to create schedule")
		return model.Schedule{}, err
	}
	return sch, nil
}

func (s *pgStore) GetScheduleByID(id int) (model.Schedule, error) {
	var sch model.Schedule
	err := s.db.Get(&sch, `SELECT `+scheduleColumns+` FROM schedules WHERE id = $1`, id)
	if err != nil {
		log.Error().Err(err).Int("schedule_id", id).Msg("failed to get schedule by id")
	}
	return sch, err
}

func (s *pgStore) ListSchedulesByScreen(screenID int) ([]model.Schedule, error) {
	var out []model.Schedule
	err := s.db.Select(&out, `
		SELECT `+scheduleColumns+`
		FROM schedules
		WHERE screen_id = $1
		ORDER BY id
		`, screenID)
	if err != nil {
		log.Error().Err(err).Int("screen_id", screenID).Msg("failed to list schedules by screen")
	}
	return out, err
}

// UpdateSchedule replaces the constraint set wholesale: nil date/time/day
// fields clear the stored constraint rather than preserving it. Name keeps
// the COALESCE partial-update behavior.
func (s *pgStore) UpdateSchedule(id int, params ScheduleParams) error {
	_, err := s.db.Exec(`
		UPDATE schedules
		SET playlist_id  = $2,
		name         = COALESCE($3, name),
		priority     = $4,
		start_date   = $5::date,
		end_date     = $6::date,
		start_time   = $7,
		end_time     = $8,
		days_of_week = $9,
		updated_at   = now()
		WHERE id = $1
		`, id,
		params.PlaylistID, params.Name, params.Priority,
		params.StartDate, params.EndDate, params.StartTime, params.EndTime,
		daysArray(params.DaysOfWeek))
	if err != nil {
		log.Error().Err(err).Int("schedule_id", id).Msg("failed to update schedule")
	}
	return err
}

func (s *pgStore) DeleteSchedule(id int) error {
	_, err := s.db.Exec(`DELETE FROM schedules WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("schedule_id", id).Msg("failed to delete schedule")
	}
	return err
}
