package liveness

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsOnline(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, IsOnline(now, now))
	assert.True(t, IsOnline(now.Add(-59*time.Second), now))
	assert.True(t, IsOnline(now.Add(-StaleAfter+time.Millisecond), now))

	// strict boundary: exactly 60s old is offline
	assert.False(t, IsOnline(now.Add(-StaleAfter), now))
	assert.False(t, IsOnline(now.Add(-61*time.Second), now))
	assert.False(t, IsOnline(now.Add(-24*time.Hour), now))
}
