package timelike

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// Callers that need "the current instant" as a coercion default should
// depend on this interface rather than on the time package directly.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current time in UTC, so defaults derived from it never
// trip the tz-naive warning.
func (RealClock) Now() time.Time {
	return time.Now().UTC()
}
