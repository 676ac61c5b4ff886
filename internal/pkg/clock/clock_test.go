//go:build unit

package clock_test

import (
	"testing"
	"time"

	"parking-api/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_Now(t *testing.T) {
	now := clock.NewRealClock().Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.Zero(t, now.Nanosecond()%int(time.Microsecond))
}

func TestMockClock(t *testing.T) {
	start := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	c := clock.NewMockClock(start)

	assert.Equal(t, start, c.Now())
	assert.Equal(t, start.Add(90*time.Minute), c.Advance(90*time.Minute))
	assert.Equal(t, start.Add(90*time.Minute), c.Now())

	c.Set(start)
	assert.Equal(t, start, c.Now())
}
