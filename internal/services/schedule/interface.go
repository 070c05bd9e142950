package schedule

//go:generate mockgen -package=mocks -destination=mocks/mock_guard.go github.com/KirkDiggler/nowplaying/internal/services/schedule Guard

import "time"

// Guard reports whether the arcade is open
type Guard interface {
	// IsOpen reports whether now falls inside operating hours
	IsOpen(now time.Time) bool
}
