package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/nowplaying/internal/repositories/player Repository

import (
	"context"
)

// Repository defines the interface for player profile persistence. Profiles
// are stored as one document keyed by external player ID.
type Repository interface {
	// LoadProfiles retrieves every stored profile
	LoadProfiles(ctx context.Context) (*LoadProfilesOutput, error)

	// SaveProfiles replaces the stored profiles with input.Profiles
	SaveProfiles(ctx context.Context, input *SaveProfilesInput) error
}
