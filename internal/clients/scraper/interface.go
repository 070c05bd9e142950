package scraper

//go:generate mockgen -package=mocks -destination=mocks/mock_provider.go github.com/KirkDiggler/nowplaying/internal/clients/scraper Provider

import "context"

// Provider fetches player data from the scraped arcade site. Calls are slow
// (seconds) and fail on network or markup problems.
type Provider interface {
	// FetchLeaderboard returns the arcade leaderboard
	FetchLeaderboard(ctx context.Context) (*FetchLeaderboardOutput, error)

	// FetchProfile returns one player's profile and recent plays
	FetchProfile(ctx context.Context, input *FetchProfileInput) (*FetchProfileOutput, error)
}
