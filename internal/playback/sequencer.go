// Package playback walks a playlist's ordered entries, either on local
// per-entry timers or locked to a shared timecode clock.
package playback

import (
	"sync"
	"time"

	"github.com/lumacast/lumacast/internal/model"
)

type Mode string

const (
	ModeLocal       Mode = "LOCAL"
	ModeClockLocked Mode = "CLOCK_LOCKED"
)

// EntryDuration resolves an entry's playback length as a time.Duration.
func EntryDuration(e model.PlaylistEntry) time.Duration {
	return time.Duration(e.EffectiveDuration()) * time.Second
}

// TotalDuration is the full cycle length of the playlist.
func TotalDuration(entries []model.PlaylistEntry) time.Duration {
	var total time.Duration
	for _, e := range entries {
		total += EntryDuration(e)
	}
	return total
}

// IndexAt computes the local-mode entry index after sinceStart has passed,
// wrapping around the playlist. Returns -1 for an empty playlist.
func IndexAt(entries []model.PlaylistEntry, sinceStart time.Duration) int {
	if len(entries) == 0 {
		return -1
	}
	total := TotalDuration(entries)
	if total <= 0 {
		return 0
	}
	offset := sinceStart % total
	var cum time.Duration
	for i, e := range entries {
		cum += EntryDuration(e)
		if offset < cum {
			return i
		}
	}
	return len(entries) - 1
}

// TargetIndex computes the clock-locked entry index for an elapsed virtual
// time: the largest index whose cumulative start is at or before elapsedMs.
// Once elapsed exceeds the playlist's total duration the index stays
// clamped on the last entry; clock-locked playback does not wrap unless the
// clock itself restarts. Returns -1 for an empty playlist.
func TargetIndex(entries []model.PlaylistEntry, elapsedMs int64) int {
	if len(entries) == 0 {
		return -1
	}
	var cumMs int64
	target := 0
	for i, e := range entries {
		if cumMs <= elapsedMs {
			target = i
		} else {
			break
		}
		cumMs += EntryDuration(e).Milliseconds()
	}
	return target
}

// Sequencer is the per-player playback state machine. In LOCAL mode it runs
// a timer per entry and advances with wraparound; in CLOCK_LOCKED mode no
// timer runs and SyncToElapsed, driven by the caller's clock polls, is the
// only thing that moves the index. The mode changes only through Replace,
// never mid-sequence, so the two timing authorities cannot race.
type Sequencer struct {
	mu       sync.Mutex
	entries  []model.PlaylistEntry
	mode     Mode
	idx      int
	timer    *time.Timer
	gen      uint64 // bumped on Replace/Stop so stale timer callbacks no-op
	onChange func(index int, entry model.PlaylistEntry)
}

// NewSequencer creates an idle sequencer. onChange fires on every index
// move, including the reset to entry 0 after a Replace; it may be nil.
func NewSequencer(onChange func(index int, entry model.PlaylistEntry)) *Sequencer {
	return &Sequencer{idx: -1, mode: ModeLocal, onChange: onChange}
}

// Replace installs a fresh config snapshot: any in-flight timer is
// discarded, the index resets to 0 and local timing restarts from entry 0.
// An empty entry list puts the sequencer in the idle state.
func (s *Sequencer) Replace(entries []model.PlaylistEntry, mode Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopTimerLocked()
	s.gen++
	s.entries = entries
	s.mode = mode

	if len(entries) == 0 {
		s.idx = -1
		return
	}

	s.idx = 0
	s.notifyLocked()
	if mode == ModeLocal {
		s.armTimerLocked()
	}
}

// SyncToElapsed aligns the index with the clock's elapsed virtual time.
// Only meaningful in CLOCK_LOCKED mode; a no-op otherwise.
func (s *Sequencer) SyncToElapsed(elapsedMs int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != ModeClockLocked || len(s.entries) == 0 {
		return
	}
	target := TargetIndex(s.entries, elapsedMs)
	if target != s.idx {
		s.idx = target
		s.notifyLocked()
	}
}

// Current returns the playing index and entry. ok is false while idle.
func (s *Sequencer) Current() (index int, entry model.PlaylistEntry, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.idx < 0 || s.idx >= len(s.entries) {
		return -1, model.PlaylistEntry{}, false
	}
	return s.idx, s.entries[s.idx], true
}

// Idle reports whether the sequencer has nothing to play.
func (s *Sequencer) Idle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries) == 0
}

// Mode returns the active timing mode.
func (s *Sequencer) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Stop halts local timing and empties the sequencer.
func (s *Sequencer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimerLocked()
	s.gen++
	s.entries = nil
	s.idx = -1
}

func (s *Sequencer) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Sequencer) armTimerLocked() {
	d := EntryDuration(s.entries[s.idx])
	gen := s.gen
	s.timer = time.AfterFunc(d, func() { s.advance(gen) })
}

func (s *Sequencer) advance(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A Replace or Stop raced the timer callback; that config owns the
	// state now.
	if gen != s.gen || s.mode != ModeLocal || len(s.entries) == 0 {
		return
	}

	s.idx = (s.idx + 1) % len(s.entries)
	s.notifyLocked()
	s.armTimerLocked()
}

func (s *Sequencer) notifyLocked() {
	if s.onChange != nil {
		s.onChange(s.idx, s.entries[s.idx])
	}
}
