package access

//go:generate mockgen -package=mocks -destination=mocks/mock_controller.go github.com/KirkDiggler/nowplaying/internal/services/access Controller

import "context"

// Controller grants and revokes the marker that shows who holds the machine
type Controller interface {
	// Grant gives the account the access marker
	Grant(ctx context.Context, accountID string) error

	// Revoke removes the access marker from the account
	Revoke(ctx context.Context, accountID string) error
}
