package db

import (
	"github.com/rs/zerolog/log"

	"github.com/lumacast/lumacast/internal/model"
)

func (s *pgStore) CreateVenue(name string) (model.Venue, error) {
	var v model.Venue
	const q = `
	INSERT INTO venues (name, created_at, updated_at)
	VALUES ($1, now(), now())
	RETURNING id, name, created_at, updated_at;`
	if err := s.db.Get(&v, q, name); err != nil {
		log.Error().Err(err).Msg("failed to create venue")
		return model.Venue{}, err
	}
	return v, nil
}

func (s *pgStore) GetVenueByID(id int) (model.Venue, error) {
	var v model.Venue
	err := s.db.Get(&v, `
		SELECT id, name, created_at, updated_at
		FROM venues
		WHERE id = $1
		`, id)
	if err != nil {
		log.Error().Err(err).Int("venue_id", id).Msg("failed to get venue by id")
	}
	return v, err
}

func (s *pgStore) ListVenues() ([]model.Venue, error) {
	var venues []model.Venue
	err := s.db.Select(&venues, `
		SELECT id, name, created_at, updated_at
		FROM venues
		ORDER BY id
		`)
	if err != nil {
		log.Error().Err(err).Msg("failed to list venues")
	}
	return venues, err
}

func (s *pgStore) UpdateVenue(id int, name *string) error {
	_, err := s.db.Exec(`
		UPDATE venues
		SET name = COALESCE($2, name),
		updated_at = now()
		WHERE id = $1
		`, id, name)
	if err != nil {
		log.Error().Err(err).Int("venue_id", id).Msg("failed to update venue")
	}
	return err
}

// DeleteVenue cascades to the venue's spaces and their screens.
func (s *pgStore) DeleteVenue(id int) error {
	_, err := s.db.Exec(`DELETE FROM venues WHERE id = $1`, id)
	if err != nil {
		log.Error().Err(err).Int("venue_id", id).Msg("failed to delete venue")
	}
	return err
}

func (s *pgStore) CreateSpace(venueID int, name string) (model.Space, error) {
	var sp model.Space
	const q = `
	INSERT INTO spaces (venue_id, name, created_at, updated_at)
	VALUES ($1, $2, now(), now())
	RETURNING id, venue_id, name, created_at, updated_at;`
	if err := s.db.Get(&sp, q, venueID, name); err != nil {
		log.Error().Err(err).Int("venue_id", venueID).Msg("failed to create space")
		return model.Space{}, err
	}
	return sp, nil
}

func (s *pgStore) GetSpaceByID(id int) (model.Space, error) {
	var sp model.Space
	err := s.db.Get(&sp, `
		SELECT id, venue_id, name, created_at, updated_at
		FROM spaces
		WHERE id = $1
		`, id)
	if err != nil {
		log.Error().Err(err).Int("space_id", id).Msg("failed to get space by id")
	}
	return sp, err
}

func (s *pgStore) ListSpacesByVenue(venueID int) ([]model.Space, error) {
	var spaces []model.Space
	err := s.db.Select(&spaces, `
		SELECT id, venue_id, name, created_at, updated_at
		FROM spaces
		WHERE venue_id = $1
		ORDER BY id
		`, venueID)
	if err != nil {
		log.Error().Err(err).Int("venue_id", venueID).Msg("failed to list spaces")
	}
	return spaces, err
}

func (s *pgStore) UpdateSpace(id int, name *string) error {
	_, err := s.db.Exec(`
		UPDATE spaces
		SET name = COALESCE($2, name),
		updated_at = now()
		WHERE id = $1
		`, id, name)
	if err != nil {
		log.Error().Err(err).Int("space_id", id).Msg("failed to update space")
	}
	return err
}

func (s *pgStore) DeleteSpace(id int) error {
	_, err := s.db.Exec(`DELETE FROM spaces WHERE id = $1`, id)
	if err != nil {
		log.Error().Err(err).Int("space_id", id).Msg("failed to delete space")
	}
	return err
}
