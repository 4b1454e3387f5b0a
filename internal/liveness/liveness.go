// Package liveness derives a screen's online state from its heartbeat.
package liveness

import "time"

// StaleAfter is the heartbeat staleness threshold. A screen whose last
// heartbeat is at least this old counts as offline.
const StaleAfter = 60 * time.Second

// IsOnline reports whether a heartbeat at lastSeen is fresh at now. The
// boundary is strict: exactly StaleAfter old is offline. The screen's
// advisory status field plays no part here.
func IsOnline(lastSeen, now time.Time) bool {
	return now.Sub(lastSeen) < StaleAfter
}
