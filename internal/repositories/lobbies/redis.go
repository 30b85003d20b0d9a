package lobbies

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/KirkDiggler/civ-draft-bot/internal/catalog"
	"github.com/KirkDiggler/civ-draft-bot/internal/dice"
	"github.com/KirkDiggler/civ-draft-bot/internal/domain/draft"
	apperr "github.com/KirkDiggler/civ-draft-bot/internal/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const (
	// Key patterns
	lobbyKeyPrefix = "lobby:"
	scopesKey      = "lobbies"

	// TTL for lobbies (7 days)
	lobbyTTL = 7 * 24 * time.Hour
)

// Data is the serialized form of a lobby in Redis
type Data struct {
	Lobby     *draft.Snapshot `json:"lobby"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient // Required
	Catalog      *catalog.Catalog
	Roller       dice.Roller
	TimeProvider TimeProvider
	LobbyTTL     time.Duration
}

type redisRepository struct {
	client       redis.UniversalClient
	catalog      *catalog.Catalog
	roller       dice.Roller
	timeProvider TimeProvider
	lobbyTTL     time.Duration
}

// NewRedisRepository creates a new Redis-backed lobby repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}

	ttl := cfg.LobbyTTL
	if ttl == 0 {
		ttl = lobbyTTL
	}

	tp := cfg.TimeProvider
	if tp == nil {
		tp = realTimeProvider{}
	}

	return &redisRepository{
		client:       cfg.Client,
		catalog:      cfg.Catalog,
		roller:       cfg.Roller,
		timeProvider: tp,
		lobbyTTL:     ttl,
	}
}

func lobbyKey(scopeID string) string {
	return lobbyKeyPrefix + scopeID
}

// Get retrieves the lobby of a scope and refreshes its TTL
func (r *redisRepository) Get(ctx context.Context, scopeID string) (*draft.Lobby, error) {
	if scopeID == "" {
		return nil, apperr.InvalidArgument("scope ID is required")
	}
	key := lobbyKey(scopeID)

	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperr.NotFoundf("lobby not found for scope %s", scopeID)
		}
		return nil, apperr.Wrapf(err, "failed to get lobby for scope %s", scopeID).
			WithMeta("key", key)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, apperr.Wrap(err, "failed to deserialize lobby").WithMeta("key", key)
	}
	if data.Lobby == nil {
		return nil, apperr.Internalf("lobby data at %s has no lobby", key)
	}

	lobby, err := draft.Restore(data.Lobby, r.catalog, r.roller)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to restore lobby for scope %s", scopeID)
	}

	// Refresh TTL
	r.client.Expire(ctx, key, r.lobbyTTL)

	return lobby, nil
}

// Save creates or replaces the lobby of its scope
func (r *redisRepository) Save(ctx context.Context, lobby *draft.Lobby) error {
	if lobby == nil {
		return apperr.InvalidArgument("lobby cannot be nil")
	}

	data, err := json.Marshal(Data{
		Lobby:     lobby.Snapshot(),
		UpdatedAt: r.timeProvider.Now(),
	})
	if err != nil {
		return apperr.Wrap(err, "failed to serialize lobby")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, lobbyKey(lobby.ScopeID()), string(data), r.lobbyTTL)
	pipe.SAdd(ctx, scopesKey, lobby.ScopeID())

	if _, err := pipe.Exec(ctx); err != nil {
		return apperr.Wrapf(err, "failed to save lobby for scope %s", lobby.ScopeID()).
			WithMeta("lobby_id", lobby.ID())
	}

	return nil
}

// Delete removes the lobby of a scope
func (r *redisRepository) Delete(ctx context.Context, scopeID string) error {
	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, lobbyKey(scopeID))
	pipe.SRem(ctx, scopesKey, scopeID)

	if _, err := pipe.Exec(ctx); err != nil {
		return apperr.Wrapf(err, "failed to delete lobby for scope %s", scopeID)
	}
	if del.Val() == 0 {
		return apperr.NotFoundf("lobby not found for scope %s", scopeID)
	}

	return nil
}

// List retrieves every stored lobby ordered by scope. Scopes whose lobby
// expired are dropped from the index.
func (r *redisRepository) List(ctx context.Context) ([]*draft.Lobby, error) {
	scopes, err := r.client.SMembers(ctx, scopesKey).Result()
	if err != nil {
		return nil, apperr.Wrap(err, "failed to list lobby scopes")
	}
	sort.Strings(scopes)

	results := make([]*draft.Lobby, len(scopes))
	g, gctx := errgroup.WithContext(ctx)
	for i, scope := range scopes {
		i, scope := i, scope
		g.Go(func() error {
			lobby, err := r.Get(gctx, scope)
			if apperr.IsNotFound(err) {
				return nil
			}
			if err != nil {
				return err
			}
			results[i] = lobby
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	lobbies := make([]*draft.Lobby, 0, len(results))
	var stale []any
	for i, lobby := range results {
		if lobby == nil {
			stale = append(stale, scopes[i])
			continue
		}
		lobbies = append(lobbies, lobby)
	}
	if len(stale) > 0 {
		r.client.SRem(ctx, scopesKey, stale...)
	}

	return lobbies, nil
}
