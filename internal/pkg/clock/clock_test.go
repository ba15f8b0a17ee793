//go:build unit

package clock_test

import (
	"testing"
	"time"

	"syncro-backend/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestRealClock(t *testing.T) {
	before := time.Now().Add(-time.Second)
	now := clock.NewRealClock().Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.Zero(t, now.Nanosecond()%int(time.Microsecond))
	assert.True(t, now.After(before))
}

