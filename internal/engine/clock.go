package engine

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// Controllers read it to resolve "today" in the active calendar.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current time in UTC, the location native values live in.
func (RealClock) Now() time.Time {
	return time.Now().UTC()
}
