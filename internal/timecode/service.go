// Package timecode owns the named virtual clocks that phase-lock screens.
package timecode

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lumacast/lumacast/internal/model"
)

// Store is the slice of the persistence layer the clock service needs.
// Start/stop are single atomic row updates, which is what serializes
// concurrent administrators per clock.
type Store interface {
	CreateTimecode(name string, speed float64) (model.Timecode, error)
	GetTimecodeByID(id int) (model.Timecode, error)
	ListTimecodes() ([]model.Timecode, error)
	UpdateTimecode(id int, name *string, speed *float64) error
	StartTimecode(id int) (model.Timecode, error)
	StopTimecode(id int) (model.Timecode, error)
	DeleteTimecode(id int) error
}

// Status is the clock snapshot players poll at high frequency (50-250ms
// when clock-locked) to stay phase-aligned.
type Status struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	StartedAt time.Time `json:"startedAt"`
	Speed     float64   `json:"speed"`
	IsRunning bool      `json:"isRunning"`
	ElapsedMs int64     `json:"elapsedMs"`
}

// FieldErrors carries field-level validation detail so callers can correct
// and resubmit.
type FieldErrors map[string]string

func (f FieldErrors) Error() string { return "validation failed" }

type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// WithNow overrides the wall clock, for tests.
func (s *Service) WithNow(now func() time.Time) *Service {
	s.now = now
	return s
}

func validateSpeed(speed float64) error {
	if !model.ValidTimecodeSpeed(speed) {
		return FieldErrors{"speed": "must be greater than 0.1 and at most 10"}
	}
	return nil
}

// Create validates the speed multiplier before any write; out-of-range
// values are rejected, never clamped.
func (s *Service) Create(name string, speed float64) (model.Timecode, error) {
	if err := validateSpeed(speed); err != nil {
		return model.Timecode{}, err
	}
	return s.store.CreateTimecode(name, speed)
}

// Update changes name and/or speed. A speed change takes effect on the next
// status read without resetting the start time.
func (s *Service) Update(id int, name *string, speed *float64) error {
	if speed != nil {
		if err := validateSpeed(*speed); err != nil {
			return err
		}
	}
	return s.store.UpdateTimecode(id, name, speed)
}

// Start resets the clock's origin to now and marks it running. Restarting
// an already-running clock rewinds it to zero elapsed.
func (s *Service) Start(id int) (model.Timecode, error) {
	tc, err := s.store.StartTimecode(id)
	if err != nil {
		return model.Timecode{}, err
	}
	log.Info().Int("timecode_id", id).Msg("timecode started")
	return tc, nil
}

// Stop marks the clock stopped; the start time is left untouched. A
// stopped clock reads as zero elapsed, not as the value it held when
// stopped. Stop is a reset, not a pause.
func (s *Service) Stop(id int) (model.Timecode, error) {
	tc, err := s.store.StopTimecode(id)
	if err != nil {
		return model.Timecode{}, err
	}
	log.Info().Int("timecode_id", id).Msg("timecode stopped")
	return tc, nil
}

func (s *Service) Get(id int) (model.Timecode, error) {
	return s.store.GetTimecodeByID(id)
}

func (s *Service) List() ([]model.Timecode, error) {
	return s.store.ListTimecodes()
}

func (s *Service) Delete(id int) error {
	return s.store.DeleteTimecode(id)
}

// Status computes the clock's elapsed virtual milliseconds on demand.
func (s *Service) Status(id int) (Status, error) {
	tc, err := s.store.GetTimecodeByID(id)
	if err != nil {
		return Status{}, err
	}
	return s.statusOf(tc), nil
}

// StatusOf computes the snapshot for an already-loaded clock row.
func (s *Service) StatusOf(tc model.Timecode) Status {
	return s.statusOf(tc)
}

func (s *Service) statusOf(tc model.Timecode) Status {
	var elapsed int64
	if tc.IsRunning {
		wall := s.now().Sub(tc.StartedAt)
		elapsed = int64(float64(wall.Milliseconds()) * tc.Speed)
	}
	return Status{
		ID:        tc.ID,
		Name:      tc.Name,
		StartedAt: tc.StartedAt,
		Speed:     tc.Speed,
		IsRunning: tc.IsRunning,
		ElapsedMs: elapsed,
	}
}
