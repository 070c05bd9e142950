package session

import "github.com/KirkDiggler/nowplaying/internal/models"

// LoadSessionsOutput contains the stored records keyed by account ID
type LoadSessionsOutput struct {
	Sessions map[string]*models.SessionRecord
}

// SaveSessionsInput contains the full session document to persist
type SaveSessionsInput struct {
	Sessions map[string]*models.SessionRecord
}
