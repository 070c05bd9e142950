package player

import "github.com/KirkDiggler/nowplaying/internal/models"

// LoadProfilesOutput contains the stored profiles keyed by external ID
type LoadProfilesOutput struct {
	Profiles map[string]*models.PlayerProfile
}

// SaveProfilesInput contains the full profile document to persist
type SaveProfilesInput struct {
	Profiles map[string]*models.PlayerProfile
}
