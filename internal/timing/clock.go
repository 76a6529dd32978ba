// Package timing measures how long a call takes.
//
// Measurements never influence the measured call: the clock is read once
// before and once after, and the result of the call is left untouched.
package timing

import "time"

// Clock is a source of wall-clock readings.
//
// Production code uses SystemClock. Tests substitute a clock that advances
// by a fixed step so that reported durations are reproducible.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Measure runs fn and returns the elapsed time between two readings of clock.
// A nil clock falls back to SystemClock.
func Measure(clock Clock, fn func()) time.Duration {
	if clock == nil {
		clock = SystemClock{}
	}
	start := clock.Now()
	fn()
	return clock.Now().Sub(start)
}

// Micros truncates d to whole microseconds.
func Micros(d time.Duration) int64 {
	return d.Microseconds()
}
