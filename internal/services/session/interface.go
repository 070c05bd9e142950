package session

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/nowplaying/internal/services/session Service

import "context"

// Service owns the session lifecycle for the shared machine. At most one
// session is active at any time.
type Service interface {
	// GetActive returns the session currently holding the machine
	GetActive(ctx context.Context) (*GetActiveOutput, error)

	// GetSession returns the session for an account
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// ListSessions returns every stored session
	ListSessions(ctx context.Context) (*ListSessionsOutput, error)

	// StartManual checks an account in when nobody holds the machine
	StartManual(ctx context.Context, input *StartManualInput) (*StartManualOutput, error)

	// ProcessNewScore records one detected play for an account
	ProcessNewScore(ctx context.Context, input *ProcessNewScoreInput) (*ProcessNewScoreOutput, error)

	// Pause puts an active session on break
	Pause(ctx context.Context, input *PauseInput) (*PauseOutput, error)

	// End checks an account out and returns the session summary
	End(ctx context.Context, input *EndInput) (*EndOutput, error)

	// ForceEnd ends a session on behalf of an admin
	ForceEnd(ctx context.Context, input *EndInput) (*EndOutput, error)

	// SweepStale moves idle sessions along and ends timed out ones
	SweepStale(ctx context.Context) (*SweepStaleOutput, error)
}
