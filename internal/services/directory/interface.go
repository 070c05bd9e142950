package directory

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/nowplaying/internal/services/directory Service

import "context"

// Service defines the player directory operations
type Service interface {
	// Link attaches an account to an external player profile, releasing any
	// profile the account held before
	Link(ctx context.Context, input *LinkInput) (*LinkOutput, error)

	// Unlink releases the profile held by an account
	Unlink(ctx context.Context, input *UnlinkInput) (*UnlinkOutput, error)

	// Refresh pulls the leaderboard and every known profile from the scraper
	Refresh(ctx context.Context) (*RefreshOutput, error)

	// GetProfile returns a profile by external player ID
	GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error)

	// GetProfileByAccount returns the profile linked to an account
	GetProfileByAccount(ctx context.Context, input *GetProfileByAccountInput) (*GetProfileOutput, error)

	// GetLeaderboard returns ranked profiles ascending by rank
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// ListLinkedProfiles returns every profile that has a linked account
	ListLinkedProfiles(ctx context.Context) (*ListLinkedProfilesOutput, error)
}
