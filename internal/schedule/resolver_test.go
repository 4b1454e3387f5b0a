package schedule

import (
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumacast/lumacast/internal/model"
)

func strPtr(s string) *string { return &s }

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestResolveUnconstrainedAlwaysMatches(t *testing.T) {
	schedules := []model.Schedule{
		{ID: 1, PlaylistID: 10},
	}
	got := Resolve(schedules, time.Date(2025, 6, 4, 3, 17, 0, 0, time.UTC))
	require.NotNil(t, got)
	assert.Equal(t, 1, got.ID)
}

func TestResolveEmpty(t *testing.T) {
	assert.Nil(t, Resolve(nil, time.Now()))
}

func TestResolvePriorityThenRecency(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	schedules := []model.Schedule{
		{ID: 1, Priority: 1, CreatedAt: base},
		{ID: 2, Priority: 5, CreatedAt: base},
		{ID: 3, Priority: 5, CreatedAt: base.Add(time.Hour)}, // newer, same priority
	}
	got := Resolve(schedules, time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC))
	require.NotNil(t, got)
	assert.Equal(t, 3, got.ID, "most recently created wins priority ties")
}

// Schedule A (priority 5, Mon-Fri 09:00-17:00) vs B (priority 1, no
// constraints): Wednesday 10:00 resolves A; Saturday 10:00 resolves nothing
// at all, because the losing time/day check on the top candidate does not
// fall through to lower priorities.
func TestResolveNoFallthrough(t *testing.T) {
	a := model.Schedule{
		ID:         1,
		Name:       strPtr("business hours"),
		Priority:   5,
		StartTime:  strPtr("09:00"),
		EndTime:    strPtr("17:00"),
		DaysOfWeek: pq.Int64Array{1, 2, 3, 4, 5},
	}
	b := model.Schedule{ID: 2, Priority: 1}
	schedules := []model.Schedule{a, b}

	wednesday := time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC) // Wed
	got := Resolve(schedules, wednesday)
	require.NotNil(t, got)
	assert.Equal(t, 1, got.ID)

	saturday := time.Date(2025, 6, 7, 10, 0, 0, 0, time.UTC) // Sat
	assert.Nil(t, Resolve(schedules, saturday))
}

func TestResolveDateRangeFilter(t *testing.T) {
	expired := model.Schedule{
		ID:        1,
		Priority:  9,
		StartDate: datePtr(2025, 1, 1),
		EndDate:   datePtr(2025, 1, 31),
	}
	current := model.Schedule{ID: 2, Priority: 0}
	at := time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC)

	// The expired high-priority schedule is excluded BEFORE the provisional
	// pick, so the low-priority one wins.
	got := Resolve([]model.Schedule{expired, current}, at)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.ID)

	// A non-matching date range excludes a schedule even when it is the
	// only one.
	assert.Nil(t, Resolve([]model.Schedule{expired}, at))
}

func TestResolveDateBoundsInclusive(t *testing.T) {
	s := model.Schedule{
		ID:        1,
		StartDate: datePtr(2025, 6, 1),
		EndDate:   datePtr(2025, 6, 30),
	}
	firstDay := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	lastDay := time.Date(2025, 6, 30, 23, 59, 0, 0, time.UTC)
	dayAfter := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	assert.NotNil(t, Resolve([]model.Schedule{s}, firstDay))
	assert.NotNil(t, Resolve([]model.Schedule{s}, lastDay))
	assert.Nil(t, Resolve([]model.Schedule{s}, dayAfter))
}

func TestResolveOpenEndedDateRanges(t *testing.T) {
	at := time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC)

	onlyStart := model.Schedule{ID: 1, StartDate: datePtr(2025, 6, 1)}
	assert.NotNil(t, Resolve([]model.Schedule{onlyStart}, at))

	futureStart := model.Schedule{ID: 2, StartDate: datePtr(2025, 7, 1)}
	assert.Nil(t, Resolve([]model.Schedule{futureStart}, at))

	onlyEnd := model.Schedule{ID: 3, EndDate: datePtr(2025, 6, 30)}
	assert.NotNil(t, Resolve([]model.Schedule{onlyEnd}, at))

	pastEnd := model.Schedule{ID: 4, EndDate: datePtr(2025, 6, 1)}
	assert.Nil(t, Resolve([]model.Schedule{pastEnd}, at))
}

func TestResolveTimeOfDayDefaults(t *testing.T) {
	// Only an end time set: window is 00:00..end inclusive.
	s := model.Schedule{ID: 1, EndTime: strPtr("12:00")}

	morning := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	noon := time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)
	afternoon := time.Date(2025, 6, 4, 12, 1, 0, 0, time.UTC)

	assert.NotNil(t, Resolve([]model.Schedule{s}, morning))
	assert.NotNil(t, Resolve([]model.Schedule{s}, noon), "end bound is inclusive")
	assert.Nil(t, Resolve([]model.Schedule{s}, afternoon))
}

func TestResolveDayOfWeekSundayZero(t *testing.T) {
	s := model.Schedule{ID: 1, DaysOfWeek: pq.Int64Array{0}}

	sunday := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	monday := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	assert.NotNil(t, Resolve([]model.Schedule{s}, sunday))
	assert.Nil(t, Resolve([]model.Schedule{s}, monday))
}

type fakeScheduleStore struct {
	schedules []model.Schedule
	playlists map[int]model.Playlist
}

func (f *fakeScheduleStore) ListSchedulesByScreen(screenID int) ([]model.Schedule, error) {
	return f.schedules, nil
}

func (f *fakeScheduleStore) GetPlaylistByID(id int) (model.Playlist, error) {
	return f.playlists[id], nil
}

func TestServiceResolveForScreen(t *testing.T) {
	store := &fakeScheduleStore{
		schedules: []model.Schedule{
			{ID: 7, Name: strPtr("evening"), PlaylistID: 3, Priority: 2},
		},
		playlists: map[int]model.Playlist{
			3: {ID: 3, Name: "Evening Loop"},
		},
	}
	svc := NewService(store)

	active, err := svc.ResolveForScreen(1, time.Date(2025, 6, 4, 20, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, 7, active.ScheduleID)
	assert.Equal(t, 3, active.PlaylistID)
	assert.Equal(t, "Evening Loop", active.PlaylistName)
}

func TestServiceResolveForScreenNoneActive(t *testing.T) {
	svc := NewService(&fakeScheduleStore{})
	active, err := svc.ResolveForScreen(1, time.Time{})
	require.NoError(t, err)
	assert.Nil(t, active)
}
