package service

import "time"

// Clock abstracts the current instant so the "no bookings in the
// past" rule can be exercised deterministically in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock is the Clock used outside of tests.
type SystemClock struct{}

// Now returns the wall-clock time.
func (SystemClock) Now() time.Time { return time.Now() }
