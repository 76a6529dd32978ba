package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/primes/internal/testutil"
)

func TestMeasure_UsesClockReadings(t *testing.T) {
	clock := testutil.NewStepClock(7 * time.Microsecond)

	called := false
	elapsed := Measure(clock, func() { called = true })

	assert.True(t, called)
	assert.Equal(t, 7*time.Microsecond, elapsed)
	assert.Equal(t, int64(7), Micros(elapsed))
}

func TestMeasure_NilClockFallsBackToSystem(t *testing.T) {
	elapsed := Measure(nil, func() {})
	assert.GreaterOrEqual(t, elapsed, time.Duration(0))
}

func TestMicros_Truncates(t *testing.T) {
	assert.Equal(t, int64(1), Micros(1999*time.Nanosecond))
	assert.Equal(t, int64(0), Micros(999*time.Nanosecond))
}
