package db_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumacast/lumacast/internal/db"
	"github.com/lumacast/lumacast/internal/model"
)

// setupStore connects to the database named by TEST_DATABASE_URL and runs
// migrations. Tests are skipped when the variable is unset.
func setupStore(t *testing.T) db.Store {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	require.NoError(t, db.Init(url))
	require.NoError(t, db.RunMigrations("../../migrations"))
	return db.NewStore(nil)
}

func seedSpace(t *testing.T, store db.Store) model.Space {
	t.Helper()
	venue, err := store.CreateVenue("integration venue")
	require.NoError(t, err)
	space, err := store.CreateSpace(venue.ID, "integration space")
	require.NoError(t, err)
	return space
}

func TestStoreIntegration(t *testing.T) {
	store := setupStore(t)

	t.Run("screen lifecycle", func(t *testing.T) {
		space := seedSpace(t, store)

		res := "1920x1080"
		screen, err := store.CreateScreen(space.ID, "lobby panel", &res, model.OrientationLandscape)
		require.NoError(t, err)
		assert.Equal(t, model.ScreenStatusOffline, screen.Status)

		playlist, err := store.CreatePlaylist("defaults")
		require.NoError(t, err)
		require.NoError(t, store.AssignPlaylistToScreen(screen.ID, &playlist.ID))

		got, err := store.GetScreenByID(screen.ID)
		require.NoError(t, err)
		require.NotNil(t, got.PlaylistID)
		assert.Equal(t, playlist.ID, *got.PlaylistID)

		// clearing the assignment nulls the column
		require.NoError(t, store.AssignPlaylistToScreen(screen.ID, nil))
		got, err = store.GetScreenByID(screen.ID)
		require.NoError(t, err)
		assert.Nil(t, got.PlaylistID)

		row, col := 1, 2
		require.NoError(t, store.SetScreenMatrix(screen.ID, &row, &col))
		got, err = store.GetScreenByID(screen.ID)
		require.NoError(t, err)
		assert.True(t, got.HasMatrixCoords())

		ids, err := store.ListScreenIDsByPlaylist(playlist.ID)
		require.NoError(t, err)
		assert.NotContains(t, ids, screen.ID)
	})

	t.Run("playlist reorder round trip", func(t *testing.T) {
		playlist, err := store.CreatePlaylist("reorder me")
		require.NoError(t, err)

		var entryIDs []int
		for _, name := range []string{"a", "b", "c"} {
			url := "https://example.com/" + name
			content, err := store.CreateContent(name, model.ContentTypeImage, &url, nil, nil, 10)
			require.NoError(t, err)
			entry, err := store.AddPlaylistEntry(playlist.ID, content.ID, len(entryIDs), nil)
			require.NoError(t, err)
			entryIDs = append(entryIDs, entry.ID)
		}

		reversed := []int{entryIDs[2], entryIDs[1], entryIDs[0]}
		require.NoError(t, store.ReorderPlaylistEntries(playlist.ID, reversed))

		entries, err := store.ListPlaylistEntries(playlist.ID)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		for i, want := range reversed {
			assert.Equal(t, want, entries[i].ID)
			assert.Equal(t, i, entries[i].Position)
		}
	})

	t.Run("schedule constraints persist", func(t *testing.T) {
		space := seedSpace(t, store)
		screen, err := store.CreateScreen(space.ID, "scheduled", nil, model.OrientationPortrait)
		require.NoError(t, err)
		playlist, err := store.CreatePlaylist("lunch menu")
		require.NoError(t, err)

		name := "lunch"
		startTime, endTime := "11:00", "14:00"
		created, err := store.CreateSchedule(db.ScheduleParams{
			ScreenID:   screen.ID,
			PlaylistID: playlist.ID,
			Name:       &name,
			Priority:   5,
			StartTime:  &startTime,
			EndTime:    &endTime,
			DaysOfWeek: []int64{1, 2, 3, 4, 5},
		})
		require.NoError(t, err)

		got, err := store.GetScheduleByID(created.ID)
		require.NoError(t, err)
		require.NotNil(t, got.StartTime)
		assert.Equal(t, "11:00", *got.StartTime)
		assert.Equal(t, []int64{1, 2, 3, 4, 5}, []int64(got.DaysOfWeek))
		assert.Nil(t, got.StartDate)

		// update replaces the constraint set wholesale
		require.NoError(t, store.UpdateSchedule(created.ID, db.ScheduleParams{
			PlaylistID: playlist.ID,
			Priority:   7,
		}))
		got, err = store.GetScheduleByID(created.ID)
		require.NoError(t, err)
		assert.Equal(t, 7, got.Priority)
		assert.Nil(t, got.StartTime)
		assert.Empty(t, got.DaysOfWeek)
	})

	t.Run("timecode start and stop", func(t *testing.T) {
		tc, err := store.CreateTimecode("integration clock", 2.0)
		require.NoError(t, err)
		assert.False(t, tc.IsRunning)

		started, err := store.StartTimecode(tc.ID)
		require.NoError(t, err)
		assert.True(t, started.IsRunning)
		assert.False(t, started.StartedAt.IsZero())

		stopped, err := store.StopTimecode(tc.ID)
		require.NoError(t, err)
		assert.False(t, stopped.IsRunning)
	})
}
