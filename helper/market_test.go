package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPastMarketDate(t *testing.T) {
	now := time.Date(2026, 8, 31, 0, 30, 0, 0, time.UTC)

	assert.True(t, pastMarketDate(time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), now))
	assert.True(t, pastMarketDate(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), now))

	// today's market is still upcoming, whatever the clock says
	assert.False(t, pastMarketDate(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, pastMarketDate(time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC), now))
	assert.False(t, pastMarketDate(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), now))
}

func TestMarketDateCutoffBoundary(t *testing.T) {
	// the sweep runs just after midnight; the cutoff must already be the
	// new day so yesterday's dates expire
	justAfterMidnight := time.Date(2026, 9, 1, 0, 5, 0, 0, time.UTC)
	assert.Equal(t, "2026-09-01", marketDateCutoff(justAfterMidnight))
}
