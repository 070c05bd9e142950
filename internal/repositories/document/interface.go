package document

//go:generate mockgen -package=mocks -destination=mocks/mock_store.go github.com/KirkDiggler/nowplaying/internal/repositories/document Store

import (
	"context"
)

// Store persists whole JSON documents by name. Save replaces the previous
// document atomically; readers never observe a partial write.
type Store interface {
	// Load reads the named document into input.Target
	Load(ctx context.Context, input *LoadInput) error

	// Save replaces the named document with input.Document
	Save(ctx context.Context, input *SaveInput) error
}
