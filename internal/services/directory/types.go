package directory

import (
	"github.com/KirkDiggler/nowplaying/internal/models"
)

// LinkFailure explains why a link was rejected
type LinkFailure string

const (
	// LinkFailureInvalidID means the external ID did not match the expected format
	LinkFailureInvalidID LinkFailure = "invalid_id"

	// LinkFailureHeldByOther means another account already holds the profile
	LinkFailureHeldByOther LinkFailure = "held_by_other"
)

// DefaultLeaderboardLimit is used when GetLeaderboardInput.Limit is zero
const DefaultLeaderboardLimit = 10

// LinkInput contains the parameters for linking an account
type LinkInput struct {
	AccountID  string
	ExternalID string
}

// LinkOutput contains the result of a link
type LinkOutput struct {
	Success bool
	Failure LinkFailure

	// Profile is a copy of the linked profile on success
	Profile *models.PlayerProfile

	// PreviousExternalID is the profile the account held before, if any
	PreviousExternalID string
}

// UnlinkInput contains the account to unlink
type UnlinkInput struct {
	AccountID string
}

// UnlinkOutput contains the result of an unlink
type UnlinkOutput struct {
	Success    bool
	ExternalID string
}

// RefreshOutput contains the results of a refresh
type RefreshOutput struct {
	// Discovered are display names of players seen for the first time
	Discovered []string

	// FailedProfiles are external IDs whose profile fetch failed
	FailedProfiles []string
}

// GetProfileInput contains the external ID to look up
type GetProfileInput struct {
	ExternalID string
}

// GetProfileByAccountInput contains the account to look up
type GetProfileByAccountInput struct {
	AccountID string
}

// GetProfileOutput contains a copy of the profile, nil when not found
type GetProfileOutput struct {
	Profile *models.PlayerProfile
}

// GetLeaderboardInput contains leaderboard options
type GetLeaderboardInput struct {
	// Limit caps the number of entries, zero uses DefaultLeaderboardLimit
	Limit int
}

// GetLeaderboardOutput contains leaderboard entries ascending by rank
type GetLeaderboardOutput struct {
	Entries []*models.LeaderboardEntry
}

// ListLinkedProfilesOutput contains copies of every linked profile
type ListLinkedProfilesOutput struct {
	Profiles []*models.PlayerProfile
}
