package player

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumacast/lumacast/internal/model"
	"github.com/lumacast/lumacast/internal/playback"
	"github.com/lumacast/lumacast/internal/timecode"
)

func intPtr(v int) *int       { return &v }
func strPtr(s string) *string { return &s }

type fakeStore struct {
	screens   map[int]model.Screen
	playlists map[int]model.Playlist
	timecodes map[int]model.Timecode
	touched   []int
}

func (f *fakeStore) GetScreenByID(id int) (model.Screen, error) {
	sc, ok := f.screens[id]
	if !ok {
		return model.Screen{}, sql.ErrNoRows
	}
	return sc, nil
}

func (f *fakeStore) ListScreensBySpace(spaceID int) ([]model.Screen, error) {
	var out []model.Screen
	for _, sc := range f.screens {
		if sc.SpaceID == spaceID {
			out = append(out, sc)
		}
	}
	return out, nil
}

func (f *fakeStore) GetPlaylistByID(id int) (model.Playlist, error) {
	p, ok := f.playlists[id]
	if !ok {
		return model.Playlist{}, sql.ErrNoRows
	}
	return p, nil
}

func (f *fakeStore) GetTimecodeByID(id int) (model.Timecode, error) {
	tc, ok := f.timecodes[id]
	if !ok {
		return model.Timecode{}, sql.ErrNoRows
	}
	return tc, nil
}

func (f *fakeStore) TouchScreen(id int) error {
	f.touched = append(f.touched, id)
	return nil
}

// the timecode service reads through the same fake
func (f *fakeStore) CreateTimecode(name string, speed float64) (model.Timecode, error) {
	return model.Timecode{}, nil
}
func (f *fakeStore) ListTimecodes() ([]model.Timecode, error)                   { return nil, nil }
func (f *fakeStore) UpdateTimecode(id int, name *string, speed *float64) error  { return nil }
func (f *fakeStore) StartTimecode(id int) (model.Timecode, error)               { return f.GetTimecodeByID(id) }
func (f *fakeStore) StopTimecode(id int) (model.Timecode, error)                { return f.GetTimecodeByID(id) }
func (f *fakeStore) DeleteTimecode(id int) error                                { return nil }

func newService(f *fakeStore) *Service {
	return NewService(f, timecode.NewService(f))
}

func TestGetConfigScreenNotFound(t *testing.T) {
	svc := newService(&fakeStore{screens: map[int]model.Screen{}})
	_, err := svc.GetConfig(99)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestGetConfigTouchesHeartbeat(t *testing.T) {
	f := &fakeStore{screens: map[int]model.Screen{
		1: {ID: 1, SpaceID: 1, Name: "lobby", Orientation: model.OrientationLandscape},
	}}
	svc := newService(f)

	_, err := svc.GetConfig(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, f.touched)
}

func TestGetConfigIdleWithoutPlaylist(t *testing.T) {
	f := &fakeStore{screens: map[int]model.Screen{
		1: {ID: 1, SpaceID: 1, Name: "lobby", Orientation: model.OrientationLandscape},
	}}
	svc := newService(f)

	cfg, err := svc.GetConfig(1)
	require.NoError(t, err)
	assert.Nil(t, cfg.Playlist, "no default playlist means idle, not an error")
	assert.Equal(t, playback.ModeLocal, cfg.Mode)
	assert.Equal(t, "lobby", cfg.Screen.Name)
}

func TestGetConfigResolvesPlaylistEntries(t *testing.T) {
	f := &fakeStore{
		screens: map[int]model.Screen{
			1: {ID: 1, SpaceID: 1, Name: "lobby", Orientation: model.OrientationLandscape, PlaylistID: intPtr(5)},
		},
		playlists: map[int]model.Playlist{
			5: {ID: 5, Name: "loop", Entries: []model.PlaylistEntry{
				{ContentID: 10, Duration: intPtr(5), Content: &model.Content{ID: 10, Name: "promo", Type: model.ContentTypeImage, URL: strPtr("https://cdn.example/promo.png"), Duration: 30}},
				{ContentID: 11, Content: &model.Content{ID: 11, Name: "menu", Type: model.ContentTypeMenuHTML, Body: strPtr("<ul></ul>"), Duration: 20}},
			}},
		},
	}
	svc := newService(f)

	cfg, err := svc.GetConfig(1)
	require.NoError(t, err)
	require.NotNil(t, cfg.Playlist)
	require.Len(t, cfg.Playlist.Entries, 2)

	assert.Equal(t, 5, cfg.Playlist.Entries[0].Duration, "entry override wins")
	assert.Equal(t, 20, cfg.Playlist.Entries[1].Duration, "content default applies")
	assert.True(t, cfg.Playlist.Entries[0].Renderable)
}

func TestGetConfigClockLockedMode(t *testing.T) {
	f := &fakeStore{
		screens: map[int]model.Screen{
			1: {ID: 1, SpaceID: 1, Name: "wall", Orientation: model.OrientationLandscape, TimecodeID: intPtr(3)},
		},
		timecodes: map[int]model.Timecode{
			3: {ID: 3, Name: "wall clock", Speed: 1.0, IsRunning: true, StartedAt: time.Now().Add(-time.Second)},
		},
	}
	svc := newService(f)

	cfg, err := svc.GetConfig(1)
	require.NoError(t, err)
	require.NotNil(t, cfg.Timecode)
	assert.Equal(t, playback.ModeClockLocked, cfg.Mode)
	assert.True(t, cfg.Timecode.IsRunning)
}

func TestGetConfigDanglingTimecodeFallsBackToLocal(t *testing.T) {
	f := &fakeStore{
		screens: map[int]model.Screen{
			1: {ID: 1, SpaceID: 1, Name: "wall", Orientation: model.OrientationLandscape, TimecodeID: intPtr(3)},
		},
	}
	svc := newService(f)

	cfg, err := svc.GetConfig(1)
	require.NoError(t, err)
	assert.Nil(t, cfg.Timecode)
	assert.Equal(t, playback.ModeLocal, cfg.Mode)
}

func TestGetConfigMatrixRequiresPeer(t *testing.T) {
	// Screen 1 has coordinates but no sibling does: standalone.
	f := &fakeStore{
		screens: map[int]model.Screen{
			1: {ID: 1, SpaceID: 1, Name: "a", Orientation: model.OrientationLandscape, MatrixRow: intPtr(0), MatrixCol: intPtr(0)},
			2: {ID: 2, SpaceID: 1, Name: "b", Orientation: model.OrientationLandscape},
		},
	}
	svc := newService(f)

	cfg, err := svc.GetConfig(1)
	require.NoError(t, err)
	assert.Nil(t, cfg.Matrix)
}

func TestGetConfigMatrixWithSiblings(t *testing.T) {
	f := &fakeStore{
		screens: map[int]model.Screen{
			1: {ID: 1, SpaceID: 1, Name: "a", Orientation: model.OrientationLandscape, MatrixRow: intPtr(0), MatrixCol: intPtr(1), PlaylistID: intPtr(5)},
			2: {ID: 2, SpaceID: 1, Name: "b", Orientation: model.OrientationLandscape, MatrixRow: intPtr(1), MatrixCol: intPtr(0)},
		},
		playlists: map[int]model.Playlist{
			5: {ID: 5, Name: "wall loop", Entries: []model.PlaylistEntry{
				{ContentID: 10, Content: &model.Content{
					ID:       10,
					Name:     "scene",
					Type:     model.ContentTypeComposition,
					Data:     strPtr(`{"width":3840,"height":2160,"meta":{"effect":"fade"},"payload":{}}`),
					Duration: 15,
				}},
			}},
		},
	}
	svc := newService(f)

	cfg, err := svc.GetConfig(1)
	require.NoError(t, err)
	require.NotNil(t, cfg.Matrix)
	assert.Equal(t, 0, cfg.Matrix.Row)
	assert.Equal(t, 1, cfg.Matrix.Col)
	assert.Equal(t, 2, cfg.Matrix.Dimensions.TotalRows)
	assert.Equal(t, 2, cfg.Matrix.Dimensions.TotalCols)

	require.Len(t, cfg.Playlist.Entries, 1)
	comp := cfg.Playlist.Entries[0].Composition
	require.NotNil(t, comp)
	assert.Equal(t, "fade", comp.Effect)
	require.NotNil(t, comp.Crop)
	assert.Equal(t, 1920.0, comp.Crop.X)
	assert.Equal(t, 0.0, comp.Crop.Y)
	assert.Equal(t, 1920.0, comp.Crop.Width)
	assert.Equal(t, 1080.0, comp.Crop.Height)
}

func TestGetConfigMalformedCompositionDegrades(t *testing.T) {
	f := &fakeStore{
		screens: map[int]model.Screen{
			1: {ID: 1, SpaceID: 1, Name: "lobby", Orientation: model.OrientationLandscape, PlaylistID: intPtr(5)},
		},
		playlists: map[int]model.Playlist{
			5: {ID: 5, Name: "loop", Entries: []model.PlaylistEntry{
				{ContentID: 10, Content: &model.Content{ID: 10, Name: "broken", Type: model.ContentTypeComposition, Data: strPtr(`{not json`), Duration: 15}},
				{ContentID: 11, Content: &model.Content{ID: 11, Name: "ok", Type: model.ContentTypeImage, URL: strPtr("https://cdn.example/x.png"), Duration: 5}},
			}},
		},
	}
	svc := newService(f)

	cfg, err := svc.GetConfig(1)
	require.NoError(t, err, "malformed persisted content must not fail the config")
	require.Len(t, cfg.Playlist.Entries, 2)

	broken := cfg.Playlist.Entries[0]
	assert.False(t, broken.Renderable)
	assert.Nil(t, broken.Composition)
	assert.Equal(t, 15, broken.Duration, "the slot keeps its duration so sequencing stays on schedule")

	assert.True(t, cfg.Playlist.Entries[1].Renderable)
}
