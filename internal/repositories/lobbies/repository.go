package lobbies

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks -source=repository.go

import (
	"context"

	"github.com/KirkDiggler/civ-draft-bot/internal/domain/draft"
)

// Repository stores one lobby per scope (Discord guild). Saving a lobby for a
// scope replaces whatever lobby the scope had before.
type Repository interface {
	// Get retrieves the lobby of a scope, CodeNotFound if there is none
	Get(ctx context.Context, scopeID string) (*draft.Lobby, error)

	// Save creates or replaces the lobby of its scope
	Save(ctx context.Context, lobby *draft.Lobby) error

	// Delete removes the lobby of a scope
	Delete(ctx context.Context, scopeID string) error

	// List retrieves every stored lobby
	List(ctx context.Context) ([]*draft.Lobby, error)
}
