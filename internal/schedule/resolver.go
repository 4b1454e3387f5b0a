// Package schedule decides which schedule, if any, is active for a screen
// at a given instant.
package schedule

import (
	"sort"
	"time"

	"github.com/lumacast/lumacast/internal/model"
)

// Active is the resolver's answer: the single schedule a screen should be
// honoring right now, with its target playlist resolved to a name.
type Active struct {
	ScheduleID   int     `json:"schedule_id"`
	Name         *string `json:"name,omitempty"`
	PlaylistID   int     `json:"playlist_id"`
	PlaylistName string  `json:"playlist_name"`
}

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// matchesDate applies the calendar-day filter: nil bounds are open, both
// bounds are inclusive.
func matchesDate(s model.Schedule, at time.Time) bool {
	day := at.Format(dateLayout)
	if s.StartDate != nil && day < s.StartDate.Format(dateLayout) {
		return false
	}
	if s.EndDate != nil && day > s.EndDate.Format(dateLayout) {
		return false
	}
	return true
}

// matchesTimeOfDay checks the "HH:mm" window. Missing bounds default to the
// edges of the day; comparison is lexicographic, valid because the format
// is fixed-width zero-padded. Both ends inclusive.
func matchesTimeOfDay(s model.Schedule, at time.Time) bool {
	if s.StartTime == nil && s.EndTime == nil {
		return true
	}
	start, end := "00:00", "23:59"
	if s.StartTime != nil {
		start = *s.StartTime
	}
	if s.EndTime != nil {
		end = *s.EndTime
	}
	clock := at.Format(timeLayout)
	return clock >= start && clock <= end
}

// matchesDayOfWeek checks membership in the 0=Sunday day set.
func matchesDayOfWeek(s model.Schedule, at time.Time) bool {
	if s.DaysOfWeek == nil {
		return true
	}
	day := int64(at.Weekday())
	for _, d := range s.DaysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}

// Resolve picks the active schedule among candidates at the given instant,
// or nil when none applies.
//
// Candidates are first filtered by date range, then ordered by priority
// descending and creation time descending, and the first one becomes the
// sole provisional winner. If that winner fails its time-of-day or
// day-of-week constraint the resolver returns nil rather than trying the
// next candidate. Lower-priority schedules are never re-examined; this
// no-fallthrough behavior is deliberate and matched by the health view's
// expectations.
func Resolve(schedules []model.Schedule, at time.Time) *model.Schedule {
	candidates := make([]model.Schedule, 0, len(schedules))
	for _, s := range schedules {
		if matchesDate(s, at) {
			candidates = append(candidates, s)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Priority != candidates[j].Priority {
			return candidates[i].Priority > candidates[j].Priority
		}
		return candidates[i].CreatedAt.After(candidates[j].CreatedAt)
	})

	chosen := candidates[0]
	if !matchesTimeOfDay(chosen, at) {
		return nil
	}
	if !matchesDayOfWeek(chosen, at) {
		return nil
	}
	return &chosen
}
