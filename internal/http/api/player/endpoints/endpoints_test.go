package endpoints_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumacast/lumacast/internal/bus"
	"github.com/lumacast/lumacast/internal/http/api"
	playerapi "github.com/lumacast/lumacast/internal/http/api/player/endpoints"
	"github.com/lumacast/lumacast/internal/model"
	"github.com/lumacast/lumacast/internal/player"
	"github.com/lumacast/lumacast/internal/timecode"
)

// fakeStore covers the read surface the player endpoints touch.
type fakeStore struct {
	screens   map[int]model.Screen
	playlists map[int]model.Playlist
	timecodes map[int]model.Timecode
	touched   []int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		screens:   map[int]model.Screen{},
		playlists: map[int]model.Playlist{},
		timecodes: map[int]model.Timecode{},
	}
}

func (f *fakeStore) GetScreenByID(id int) (model.Screen, error) {
	s, ok := f.screens[id]
	if !ok {
		return model.Screen{}, sql.ErrNoRows
	}
	return s, nil
}

func (f *fakeStore) ListScreensBySpace(spaceID int) ([]model.Screen, error) {
	out := []model.Screen{}
	for _, s := range f.screens {
		if s.SpaceID == spaceID {
			out = append(out, s)
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

func (f *fakeStore) CreateTimecode(name string, speed float64) (model.Timecode, error) {
	return model.Timecode{}, sql.ErrNoRows
}
func (f *fakeStore) ListTimecodes() ([]model.Timecode, error) { return nil, nil }
func (f *fakeStore) UpdateTimecode(id int, name *string, speed *float64) error {
	return sql.ErrNoRows
}
func (f *fakeStore) StartTimecode(id int) (model.Timecode, error) {
	return model.Timecode{}, sql.ErrNoRows
}
func (f *fakeStore) StopTimecode(id int) (model.Timecode, error) {
	return model.Timecode{}, sql.ErrNoRows
}
func (f *fakeStore) DeleteTimecode(id int) error { return sql.ErrNoRows }

func setupRouter(store *fakeStore, eventBus bus.Bus) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	clocks := timecode.NewService(store)
	assembly := player.NewService(store, clocks)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/player",
	},
		playerapi.ScreenModule(assembly),
		playerapi.EventModule(eventBus, store),
		playerapi.TimecodeModule(clocks),
	)
	return r
}

func TestGetConfigUnknownScreen(t *testing.T) {
	r := setupRouter(newFakeStore(), bus.NewMemoryBus())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/player/screens/42/config", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetConfigTouchesHeartbeat(t *testing.T) {
	store := newFakeStore()
	store.screens[1] = model.Screen{ID: 1, SpaceID: 1, Name: "entrance", Orientation: model.OrientationLandscape}
	r := setupRouter(store, bus.NewMemoryBus())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/player/screens/1/config", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []int{1}, store.touched)

	var cfg struct {
		Mode     string `json:"mode"`
		Playlist any    `json:"playlist"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cfg))
	assert.Equal(t, "LOCAL", cfg.Mode)
	assert.Nil(t, cfg.Playlist)
}

func TestTimecodeStatusEndpoint(t *testing.T) {
	store := newFakeStore()
	store.timecodes[3] = model.Timecode{ID: 3, Name: "showclock", Speed: 1.0, IsRunning: false}
	r := setupRouter(store, bus.NewMemoryBus())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/player/timecodes/3", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var status struct {
		ID        int   `json:"id"`
		IsRunning bool  `json:"isRunning"`
		ElapsedMs int64 `json:"elapsedMs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, 3, status.ID)
	assert.False(t, status.IsRunning)
	assert.Zero(t, status.ElapsedMs)
}

func TestEventStreamUnknownScreen(t *testing.T) {
	r := setupRouter(newFakeStore(), bus.NewMemoryBus())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/player/screens/42/events", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEventStreamDeliversPublishedEvent(t *testing.T) {
	store := newFakeStore()
	store.screens[1] = model.Screen{ID: 1, SpaceID: 1, Name: "entrance", Orientation: model.OrientationLandscape}
	eventBus := bus.NewMemoryBus()
	r := setupRouter(store, eventBus)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/player/screens/1/events", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		r.ServeHTTP(w, req)
	}()

	// Give the handler time to subscribe before publishing. The bus does
	// not queue, so a publish before the subscription would vanish.
	time.Sleep(200 * time.Millisecond)
	eventBus.Publish(bus.ScreenChannel(1), bus.PlaylistUpdated(7))
	time.Sleep(200 * time.Millisecond)

	cancel()
	wg.Wait()

	body := w.Body.String()
	assert.Contains(t, body, ": connected")
	assert.Contains(t, body, "playlist:updated")
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
}
