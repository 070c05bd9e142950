package player

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/nowplaying/internal/models"
	"github.com/KirkDiggler/nowplaying/internal/repositories/document"
)

// DocumentName is the name the profile document is stored under
const DocumentName = "players"

// Config holds configuration for the player repository
type Config struct {
	// Store is the document store backing the repository
	Store document.Store
}

// repository implements the Repository interface on a document store
type repository struct {
	store document.Store
}

// New creates a new player repository
func New(cfg *Config) (*repository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Store == nil {
		return nil, errors.New("document store cannot be nil")
	}

	return &repository{
		store: cfg.Store,
	}, nil
}

// LoadProfiles reads the profile document. A missing document is an empty directory.
func (r *repository) LoadProfiles(ctx context.Context) (*LoadProfilesOutput, error) {
	profiles := make(map[string]*models.PlayerProfile)

	err := r.store.Load(ctx, &document.LoadInput{
		Name:   DocumentName,
		Target: &profiles,
	})
	if err != nil && !errors.Is(err, document.ErrDocumentNotFound) {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}
	if profiles == nil {
		profiles = make(map[string]*models.PlayerProfile)
	}

	// Older documents may not carry the key inside the value
	for externalID, profile := range profiles {
		if profile == nil {
			delete(profiles, externalID)
			continue
		}
		if profile.ExternalID == "" {
			profile.ExternalID = externalID
		}
	}

	return &LoadProfilesOutput{
		Profiles: profiles,
	}, nil
}

// SaveProfiles writes the whole profile document
func (r *repository) SaveProfiles(ctx context.Context, input *SaveProfilesInput) error {
	if input == nil || input.Profiles == nil {
		return errors.New("input and profiles cannot be nil")
	}

	if err := r.store.Save(ctx, &document.SaveInput{
		Name:     DocumentName,
		Document: input.Profiles,
	}); err != nil {
		return fmt.Errorf("failed to save profiles: %w", err)
	}

	return nil
}
