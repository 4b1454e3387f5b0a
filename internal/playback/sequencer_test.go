package playback

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumacast/lumacast/internal/model"
)

func intPtr(v int) *int { return &v }

// Playlist from the reference scenario: entry 0 overrides to 5s, entry 1
// falls back to the content's 10s.
func twoEntryPlaylist() []model.PlaylistEntry {
	return []model.PlaylistEntry{
		{ID: 1, Position: 1, Duration: intPtr(5), Content: &model.Content{ID: 1, Duration: 30}},
		{ID: 2, Position: 2, Content: &model.Content{ID: 2, Duration: 10}},
	}
}

func TestEntryDurationFallbackChain(t *testing.T) {
	override := model.PlaylistEntry{Duration: intPtr(7), Content: &model.Content{Duration: 30}}
	assert.Equal(t, 7*time.Second, EntryDuration(override))

	contentDefault := model.PlaylistEntry{Content: &model.Content{Duration: 30}}
	assert.Equal(t, 30*time.Second, EntryDuration(contentDefault))

	bare := model.PlaylistEntry{}
	assert.Equal(t, 10*time.Second, EntryDuration(bare))
}

func TestIndexAtLocalWindows(t *testing.T) {
	entries := twoEntryPlaylist()

	// [0,5) -> 0, [5,15) -> 1, [15,20) -> 0 again (wraps)
	assert.Equal(t, 0, IndexAt(entries, 0))
	assert.Equal(t, 0, IndexAt(entries, 4999*time.Millisecond))
	assert.Equal(t, 1, IndexAt(entries, 5*time.Second))
	assert.Equal(t, 1, IndexAt(entries, 14999*time.Millisecond))
	assert.Equal(t, 0, IndexAt(entries, 15*time.Second))
	assert.Equal(t, 0, IndexAt(entries, 19*time.Second))
	assert.Equal(t, 1, IndexAt(entries, 20*time.Second))
}

func TestIndexAtEmpty(t *testing.T) {
	assert.Equal(t, -1, IndexAt(nil, time.Minute))
}

func TestTargetIndexClockLocked(t *testing.T) {
	entries := twoEntryPlaylist()

	assert.Equal(t, 0, TargetIndex(entries, 0))
	assert.Equal(t, 0, TargetIndex(entries, 4999))
	assert.Equal(t, 1, TargetIndex(entries, 5000))
	assert.Equal(t, 1, TargetIndex(entries, 12000))

	// Past the playlist total: clamps on the last entry, no wraparound.
	assert.Equal(t, 1, TargetIndex(entries, 20000))
	assert.Equal(t, 1, TargetIndex(entries, 1<<40))
}

func TestTargetIndexEmpty(t *testing.T) {
	assert.Equal(t, -1, TargetIndex(nil, 1000))
}

func TestSequencerReplaceResetsToZero(t *testing.T) {
	seq := NewSequencer(nil)
	seq.Replace(twoEntryPlaylist(), ModeLocal)
	defer seq.Stop()

	idx, entry, ok := seq.Current()
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 1, entry.ID)

	// A fresh snapshot discards the in-flight timer and restarts at 0.
	seq.Replace(twoEntryPlaylist(), ModeLocal)
	idx, _, ok = seq.Current()
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestSequencerEmptyPlaylistIsIdle(t *testing.T) {
	seq := NewSequencer(nil)
	seq.Replace(nil, ModeLocal)

	assert.True(t, seq.Idle())
	_, _, ok := seq.Current()
	assert.False(t, ok)
}

func TestSequencerLocalAdvancesAndWraps(t *testing.T) {
	var mu sync.Mutex
	var seen []int
	seq := NewSequencer(func(index int, _ model.PlaylistEntry) {
		mu.Lock()
		seen = append(seen, index)
		mu.Unlock()
	})
	defer seq.Stop()

	// Durations are whole seconds, so 1s entries are the shortest cycle
	// available; wait for two advances and the wrap.
	entries := []model.PlaylistEntry{
		{ID: 1, Content: &model.Content{Duration: 1}},
		{ID: 2, Content: &model.Content{Duration: 1}},
	}
	seq.Replace(entries, ModeLocal)

	deadline := time.After(3500 * time.Millisecond)
	for {
		mu.Lock()
		n := len(seen)
		mu.Unlock()
		if n >= 3 {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("sequencer did not advance, saw %v", seen)
		case <-time.After(20 * time.Millisecond):
		}
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{0, 1, 0}, seen[:3], "advances then wraps to entry 0")
}

func TestSequencerClockLockedIgnoresTimers(t *testing.T) {
	seq := NewSequencer(nil)
	seq.Replace(twoEntryPlaylist(), ModeClockLocked)
	defer seq.Stop()

	assert.Equal(t, ModeClockLocked, seq.Mode())

	seq.SyncToElapsed(12000)
	idx, entry, ok := seq.Current()
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, 2, entry.ID)

	// Clamped on the tail, never wraps.
	seq.SyncToElapsed(90000)
	idx, _, _ = seq.Current()
	assert.Equal(t, 1, idx)

	// Clock restart snaps back to the head.
	seq.SyncToElapsed(0)
	idx, _, _ = seq.Current()
	assert.Equal(t, 0, idx)
}

func TestSequencerSyncIsNoOpInLocalMode(t *testing.T) {
	seq := NewSequencer(nil)
	seq.Replace(twoEntryPlaylist(), ModeLocal)
	defer seq.Stop()

	seq.SyncToElapsed(12000)
	idx, _, ok := seq.Current()
	require.True(t, ok)
	assert.Equal(t, 0, idx, "clock sync must not move a locally timed sequence")
}
