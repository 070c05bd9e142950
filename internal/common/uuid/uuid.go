// Package uuid generates session identifiers.
package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/nowplaying/internal/common/uuid UUID

// UUID generates unique string identifiers
type UUID interface {
	NewUUID() string
}

// DefaultUUID generates random version 4 UUIDs
type DefaultUUID struct{}

// New returns the random UUID generator
func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new random UUID string
func (d *DefaultUUID) NewUUID() string {
	return uuid.NewString()
}
