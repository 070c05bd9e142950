package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/nowplaying/internal/repositories/session Repository

import (
	"context"
)

// Repository defines the interface for session record persistence. Records
// are stored as one document keyed by linked account ID.
type Repository interface {
	// LoadSessions retrieves every stored session record
	LoadSessions(ctx context.Context) (*LoadSessionsOutput, error)

	// SaveSessions replaces the stored records with input.Sessions
	SaveSessions(ctx context.Context, input *SaveSessionsInput) error
}
