package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/nowplaying/internal/models"
	"github.com/KirkDiggler/nowplaying/internal/repositories/document"
)

// DocumentName is the name the session document is stored under
const DocumentName = "sessions"

// Config holds configuration for the session repository
type Config struct {
	// Store is the document store backing the repository
	Store document.Store
}

// repository implements the Repository interface on a document store
type repository struct {
	store document.Store
}

// New creates a new session repository
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

// LoadSessions reads the session document. A missing document means no sessions.
func (r *repository) LoadSessions(ctx context.Context) (*LoadSessionsOutput, error) {
	sessions := make(map[string]*models.SessionRecord)

	err := r.store.Load(ctx, &document.LoadInput{
		Name:   DocumentName,
		Target: &sessions,
	})
	if err != nil && !errors.Is(err, document.ErrDocumentNotFound) {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}
	if sessions == nil {
		sessions = make(map[string]*models.SessionRecord)
	}

	for accountID, record := range sessions {
		if record == nil {
			delete(sessions, accountID)
			continue
		}
		if record.AccountID == "" {
			record.AccountID = accountID
		}
	}

	return &LoadSessionsOutput{
		Sessions: sessions,
	}, nil
}

// SaveSessions writes the whole session document
func (r *repository) SaveSessions(ctx context.Context, input *SaveSessionsInput) error {
	if input == nil || input.Sessions == nil {
		return errors.New("input and sessions cannot be nil")
	}

	if err := r.store.Save(ctx, &document.SaveInput{
		Name:     DocumentName,
		Document: input.Sessions,
	}); err != nil {
		return fmt.Errorf("failed to save sessions: %w", err)
	}

	return nil
}
