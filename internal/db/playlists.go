package db

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lumacast/lumacast/internal/model"
)

func (s *pgStore) CreatePlaylist(name string) (model.Playlist, error) {
	var p model.Playlist
	const q = `
    INSERT INTO playlists (name, created_at, updated_at)
    VALUES ($1, now(), now())
    RETURNING id, name, created_at, updated_at;
    `
	if err := s.db.Get(&p, q, name); err != nil {
		log.Error().Err(err).Msg("failed to create playlist")
		return model.Playlist{}, err
	}
	return p, nil
}

func (s *pgStore) GetPlaylistByID(id int) (model.Playlist, error) {
	var p model.Playlist
	const q = `
	SELECT id, name, created_at, updated_at
	FROM playlists
	WHERE id = $1;`
	if err := s.db.Get(&p, q, id); err != nil {
		log.Error().Err(err).Int("playlist_id", id).Msg("failed to get playlist by id")
		return model.Playlist{}, err
	}

	entries, err := s.ListPlaylistEntries(id)
	if err != nil {
		return p, err
	}
	p.Entries = entries
	return p, nil
}

func (s *pgStore) ListPlaylists() ([]model.Playlist, error) {
	var out []model.Playlist
	const q = `SELECT id, name, created_at, updated_at FROM playlists ORDER BY id;`
	if err := s.db.Select(&out, q); err != nil {
		log.Error().Err(err).Msg("failed to list playlists")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) UpdatePlaylist(id int, name *string) error {
	_, err := s.db.Exec(`
		UPDATE playlists
		SET name = COALESCE($2, name),
		updated_at = now()
		WHERE id = $1;`,
		id, name)
	if err != nil {
		log.Error().Err(err).Int("playlist_id", id).Msg("failed to update playlist")
	}
	return err
}

func (s *pgStore) DeletePlaylist(id int) error {
	_, err := s.db.Exec(`DELETE FROM playlists WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("playlist_id", id).Msg("failed to delete playlist")
	}
	return err
}

func (s *pgStore) AddPlaylistEntry(playlistID, contentID, position int, duration *int) (model.PlaylistEntry, error) {
	var e model.PlaylistEntry
	const q = `
	INSERT INTO playlist_entries
	(playlist_id, content_id, position, duration, created_at)
	VALUES
	($1,          $2,         $3,       $4,       now())
	RETURNING
	id, playlist_id, content_id, position, duration, created_at;`

	if err := s.db.Get(&e, q, playlistID, contentID, position, duration); err != nil {
		log.Error().Err(err).Int("playlist_id", playlistID).Msg("failed to add entry to playlist")
		return model.PlaylistEntry{}, err
	}
	return e, nil
}

// UpdatePlaylistEntry updates position/duration of an entry.
func (s *pgStore) UpdatePlaylistEntry(entryID int, position, duration *int) error {
	_, err := s.db.Exec(`
		UPDATE playlist_entries
		SET position = COALESCE($2, position),
		duration = COALESCE($3, duration)
		WHERE id = $1;`,
		entryID, position, duration)
	if err != nil {
		log.Error().Err(err).Int("entry_id", entryID).Msg("failed to update playlist entry")
	}
	return err
}

func (s *pgStore) RemovePlaylistEntry(entryID int) error {
	_, err := s.db.Exec(`DELETE FROM playlist_entries WHERE id = $1;`, entryID)
	if err != nil {
		log.Error().Err(err).Int("entry_id", entryID).Msg("failed to remove playlist entry")
	}
	return err
}

// ListPlaylistEntries returns the playlist's entries by position, each
// resolved to its content record.
func (s *pgStore) ListPlaylistEntries(playlistID int) ([]model.PlaylistEntry, error) {
	type row struct {
		ID              int       `db:"id"`
		PlaylistID      int       `db:"playlist_id"`
		ContentID       int       `db:"content_id"`
		Position        int       `db:"position"`
		Duration        *int      `db:"duration"`
		CreatedAt       time.Time `db:"created_at"`
		CName           string    `db:"c_name"`
		CType           string    `db:"c_type"`
		CURL            *string   `db:"c_url"`
		CBody           *string   `db:"c_body"`
		CData           *string   `db:"c_data"`
		CDuration       int       `db:"c_duration"`
		ContentCreated  time.Time `db:"c_created_at"`
		ContentModified time.Time `db:"c_updated_at"`
	}

	var rows []row
	const q = `
    SELECT
      e.id, e.playlist_id, e.content_id, e.position, e.duration, e.created_at,
      c.name       AS c_name,
      c.type       AS c_type,
      c.url        AS c_url,
      c.body       AS c_body,
      c.data       AS c_data,
      c.duration   AS c_duration,
      c.created_at AS c_created_at,
      c.updated_at AS c_updated_at
    FROM playlist_entries e
    JOIN content c ON e.content_id = c.id
    WHERE e.playlist_id = $1
    ORDER BY e.position;`

	if err := s.db.Select(&rows, q, playlistID); err != nil {
		log.Error().Err(err).Int("playlist_id", playlistID).Msg("failed to list playlist entries")
		return nil, err
	}

	entries := make([]model.PlaylistEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, model.PlaylistEntry{
			ID:         r.ID,
			PlaylistID: r.PlaylistID,
			ContentID:  r.ContentID,
			Position:   r.Position,
			Duration:   r.Duration,
			CreatedAt:  r.CreatedAt,
			Content: &model.Content{
				ID:        r.ContentID,
				Name:      r.CName,
				Type:      r.CType,
				URL:       r.CURL,
				Body:      r.CBody,
				Data:      r.CData,
				Duration:  r.CDuration,
				CreatedAt: r.ContentCreated,
				UpdatedAt: r.ContentModified,
			},
		})
	}
	return entries, nil
}

// ReorderPlaylistEntries rewrites positions so entryIDs defines the new
// playback order. Runs in a transaction; positions are first shifted out of
// range to avoid unique collisions mid-rewrite.
func (s *pgStore) ReorderPlaylistEntries(playlistID int, entryIDs []int) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				return
			}
		} else {
			if cmErr := tx.Commit(); cmErr != nil {
				return
			}
		}
	}()

	count := len(entryIDs)
	if _, err = tx.Exec(`
        UPDATE playlist_entries
           SET position = position + $1
         WHERE playlist_id = $2;
    `, count, playlistID); err != nil {
		return err
	}

	for idx, entryID := range entryIDs {
		newPos := idx + 1
		if _, err = tx.Exec(`
            UPDATE playlist_entries
               SET position = $1
             WHERE id = $2
               AND playlist_id = $3;
        `, newPos, entryID, playlistID); err != nil {
			return err
		}
	}

	return nil
}
