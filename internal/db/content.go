package db

import (
	"github.com/rs/zerolog/log"

	"github.com/lumacast/lumacast/internal/model"
)

func (s *pgStore) CreateContent(name, contentType string, url, body, data *string, duration int) (model.Content, error) {
	var c model.Content
	const q = `
	INSERT INTO content (name, type, url, body, data, duration, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, now(), now())
	RETURNING id, name, type, url, body, data, duration, created_at, updated_at;`
	if err := s.db.Get(&c, q, name, contentType, url, body, data, duration); err != nil {
		log.Error().Err(err).Msg("failed to create content")
		return model.Content{}, err
	}
	return c, nil
}

func (s *pgStore) GetContentByID(id int) (model.Content, error) {
	var c model.Content
	err := s.db.Get(&c, `
		SELECT id, name, type, url, body, data, duration, created_at, updated_at
		FROM content
		WHERE id = $1
		`, id)
	if err != nil {
		log.Error().Err(err).Int("content_id", id).Msg("failed to get content by id")
	}
	return c, err
}

func (s *pgStore) ListContent() ([]model.Content, error) {
	var out []model.Content
	err := s.db.Select(&out, `
		SELECT id, name, type, url, body, data, duration, created_at, updated_at
		FROM content
		ORDER BY id
		`)
	if err != nil {
		log.Error().Err(err).Msg("failed to list content")
	}
	return out, err
}

// UpdateContent leaves the type immutable; changing type would invalidate
// the url/body/data column that goes with it.
func (s *pgStore) UpdateContent(id int, name, url, body, data *string, duration *int) error {
	_, err := s.db.Exec(`
		UPDATE content
		SET name     = COALESCE($2, name),
		url      = COALESCE($3, url),
		body     = COALESCE($4, body),
		data     = COALESCE($5, data),
		duration = COALESCE($6, duration),
		updated_at = now()
		WHERE id = $1
		`, id, name, url, body, data, duration)
	if err != nil {
		log.Error().Err(err).Int("content_id", id).Msg("failed to update content")
	}
	return err
}

func (s *pgStore) DeleteContent(id int) error {
	_, err := s.db.Exec(`DELETE FROM content WHERE id = $1`, id)
	if err != nil {
		log.Error().Err(err).Int("content_id", id).Msg("failed to delete content")
	}
	return err
}
