// Package clock abstracts the wall clock so session timeouts and
// reconciliation ticks can be tested with fixed times.
package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/nowplaying/internal/common/clock Clock

// Clock reports the current time
type Clock interface {
	Now() time.Time
}

// DefaultClock reads the system clock
type DefaultClock struct{}

// Now returns the current time in UTC
func (c *DefaultClock) Now() time.Time {
	return time.Now().UTC()
}
