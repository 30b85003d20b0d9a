package lobbies

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/civ-draft-bot/internal/catalog"
	"github.com/KirkDiggler/civ-draft-bot/internal/dice"
	"github.com/KirkDiggler/civ-draft-bot/internal/domain/draft"
	apperr "github.com/KirkDiggler/civ-draft-bot/internal/errors"
)

// InMemoryConfig holds optional dependencies for restoring stored lobbies
type InMemoryConfig struct {
	Catalog *catalog.Catalog // Optional, defaults to catalog.Default()
	Roller  dice.Roller      // Optional, defaults to a random roller
}

// inMemoryRepository keeps lobby snapshots so callers never share live state
type inMemoryRepository struct {
	mu      sync.RWMutex
	lobbies map[string]*draft.Snapshot
	catalog *catalog.Catalog
	roller  dice.Roller
}

// NewInMemoryRepository creates a new in-memory lobby repository
func NewInMemoryRepository(cfg *InMemoryConfig) Repository {
	repo := &inMemoryRepository{
		lobbies: make(map[string]*draft.Snapshot),
	}
	if cfg != nil {
		repo.catalog = cfg.Catalog
		repo.roller = cfg.Roller
	}
	return repo
}

// Get retrieves the lobby of a scope
func (r *inMemoryRepository) Get(_ context.Context, scopeID string) (*draft.Lobby, error) {
	r.mu.RLock()
	snap, exists := r.lobbies[scopeID]
	r.mu.RUnlock()

	if !exists {
		return nil, apperr.NotFoundf("lobby not found for scope %s", scopeID)
	}
	return draft.Restore(snap, r.catalog, r.roller)
}

// Save creates or replaces the lobby of its scope
func (r *inMemoryRepository) Save(_ context.Context, lobby *draft.Lobby) error {
	if lobby == nil {
		return apperr.InvalidArgument("lobby cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.lobbies[lobby.ScopeID()] = lobby.Snapshot()
	return nil
}

// Delete removes the lobby of a scope
func (r *inMemoryRepository) Delete(_ context.Context, scopeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.lobbies[scopeID]; !exists {
		return apperr.NotFoundf("lobby not found for scope %s", scopeID)
	}
	delete(r.lobbies, scopeID)
	return nil
}

// List retrieves every lobby ordered by scope
func (r *inMemoryRepository) List(_ context.Context) ([]*draft.Lobby, error) {
	r.mu.RLock()
	scopes := make([]string, 0, len(r.lobbies))
	for scope := range r.lobbies {
		scopes = append(scopes, scope)
	}
	r.mu.RUnlock()
	sort.Strings(scopes)

	lobbies := make([]*draft.Lobby, 0, len(scopes))
	for _, scope := range scopes {
		lobby, err := r.Get(context.Background(), scope)
		if apperr.IsNotFound(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		lobbies = append(lobbies, lobby)
	}
	return lobbies, nil
}
