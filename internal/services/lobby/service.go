package lobby

//go:generate mockgen -destination=mock/mock_service.go -package=mocklobby -source=service.go

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/KirkDiggler/civ-draft-bot/internal/catalog"
	"github.com/KirkDiggler/civ-draft-bot/internal/dice"
	"github.com/KirkDiggler/civ-draft-bot/internal/domain/draft"
	apperr "github.com/KirkDiggler/civ-draft-bot/internal/errors"
	"github.com/KirkDiggler/civ-draft-bot/internal/repositories/lobbies"
	"github.com/KirkDiggler/civ-draft-bot/internal/uuid"
)

// RandomOption is the ban choice that bans a random available civilization
const RandomOption = "Random"

// Repository is an alias for the lobby repository interface
type Repository = lobbies.Repository

// Service runs the lobby commands of one bot. Every call names the scope (guild)
// it acts on; a scope without a lobby gets a default one on first use.
type Service interface {
	// CreateLobby replaces the scope's lobby with a fresh one
	CreateLobby(ctx context.Context, input *CreateLobbyInput) (*CreateLobbyResult, error)

	// GetLobby returns a copy of the scope's lobby
	GetLobby(ctx context.Context, scopeID string) (*draft.Lobby, error)

	// Info describes the lobby limits
	Info(ctx context.Context, scopeID string) (string, error)

	// Register adds a participant
	Register(ctx context.Context, scopeID, participantID string) (string, error)

	// Unregister removes a participant
	Unregister(ctx context.Context, scopeID, participantID string) (string, error)

	// Players lists registered participants
	Players(ctx context.Context, scopeID string) (string, error)

	// Ban bans each item for the participant, one status line per item
	Ban(ctx context.Context, scopeID, participantID string, items ...string) (string, error)

	// Unban withdraws each of the participant's bans, one status line per item
	Unban(ctx context.Context, scopeID, participantID string, items ...string) (string, error)

	// Pool lists available civilizations by tier
	Pool(ctx context.Context, scopeID string) (string, error)

	// PoolItems returns available civilizations sorted by name
	PoolItems(ctx context.Context, scopeID string) ([]string, error)

	// Bans lists every participant's bans
	Bans(ctx context.Context, scopeID string) (string, error)

	// Draft assigns picks and lists them
	Draft(ctx context.Context, scopeID string) (string, error)

	// Redraft returns every pick to the pool, drafts again and lists the picks
	Redraft(ctx context.Context, scopeID string) (string, error)

	// Picks lists every participant's picks
	Picks(ctx context.Context, scopeID string) (string, error)
}

// CreateLobbyInput contains data for creating a lobby. Zero limits use the defaults.
type CreateLobbyInput struct {
	ScopeID   string
	Capacity  int
	BanQuota  int
	PickQuota int
}

// CreateLobbyResult holds the new lobby and its announcement
type CreateLobbyResult struct {
	Lobby   *draft.Lobby
	Message string
}

type service struct {
	repository    Repository
	catalog       *catalog.Catalog
	roller        dice.Roller
	uuidGenerator uuid.Generator

	mu    sync.Mutex
	locks map[string]*scopeLock
}

// scopeLock is dropped from the map once nobody holds or waits on it
type scopeLock struct {
	sync.Mutex
	refs int
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    Repository       // Required
	Catalog       *catalog.Catalog // Optional, defaults to catalog.Default()
	Roller        dice.Roller      // Optional, drives every draft and random ban; defaults to the repository's
	UUIDGenerator uuid.Generator   // Optional, will use default if nil
}

// NewService creates a new lobby service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository: cfg.Repository,
		catalog:    cfg.Catalog,
		roller:     cfg.Roller,
		locks:      make(map[string]*scopeLock),
	}
	if svc.catalog == nil {
		svc.catalog = catalog.Default()
	}

	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

// lock serializes load-mutate-save per scope
func (s *service) lock(scopeID string) func() {
	s.mu.Lock()
	l, ok := s.locks[scopeID]
	if !ok {
		l = &scopeLock{}
		s.locks[scopeID] = l
	}
	l.refs++
	s.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()

		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, scopeID)
		}
		s.mu.Unlock()
	}
}

func (s *service) newLobby(scopeID string, cfg draft.Config) (*draft.Lobby, error) {
	return draft.New(&draft.LobbyConfig{
		ID:      s.uuidGenerator.New(),
		ScopeID: scopeID,
		Config:  cfg,
		Catalog: s.catalog,
		Roller:  s.roller,
	})
}

// load returns the scope's lobby, creating and saving a default one if needed.
// Callers hold the scope lock.
func (s *service) load(ctx context.Context, scopeID string) (*draft.Lobby, error) {
	if strings.TrimSpace(scopeID) == "" {
		return nil, apperr.InvalidArgument("scope ID is required")
	}

	lobby, err := s.repository.Get(ctx, scopeID)
	if err == nil {
		lobby.UseRoller(s.roller)
		return lobby, nil
	}
	if !apperr.IsNotFound(err) {
		return nil, apperr.Wrapf(err, "failed to get lobby for scope '%s'", scopeID).
			WithMeta("scope_id", scopeID)
	}

	lobby, err = s.newLobby(scopeID, draft.DefaultConfig())
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, lobby); err != nil {
		return nil, err
	}
	log.Printf("Created default lobby %s for scope %s", lobby.ID(), scopeID)
	return lobby, nil
}

func (s *service) save(ctx context.Context, lobby *draft.Lobby) error {
	if err := s.repository.Save(ctx, lobby); err != nil {
		return apperr.Wrap(err, "failed to save lobby").
			WithMeta("scope_id", lobby.ScopeID()).
			WithMeta("lobby_id", lobby.ID())
	}
	return nil
}

// view renders the scope's lobby without changing it
func (s *service) view(ctx context.Context, scopeID string, render func(*draft.Lobby) string) (string, error) {
	unlock := s.lock(scopeID)
	defer unlock()

	lobby, err := s.load(ctx, scopeID)
	if err != nil {
		return "", err
	}
	return render(lobby), nil
}

// mutate runs fn on the scope's lobby and saves the result
func (s *service) mutate(ctx context.Context, scopeID string, fn func(*draft.Lobby) (string, error)) (string, error) {
	unlock := s.lock(scopeID)
	defer unlock()

	lobby, err := s.load(ctx, scopeID)
	if err != nil {
		return "", err
	}
	msg, err := fn(lobby)
	if err != nil {
		return "", err
	}
	if err := s.save(ctx, lobby); err != nil {
		return "", err
	}
	return msg, nil
}

// CreateLobby replaces the scope's lobby with a fresh one
func (s *service) CreateLobby(ctx context.Context, input *CreateLobbyInput) (*CreateLobbyResult, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}
	if strings.TrimSpace(input.ScopeID) == "" {
		return nil, apperr.InvalidArgument("scope ID is required")
	}

	cfg := draft.DefaultConfig()
	if input.Capacity != 0 {
		cfg.Capacity = input.Capacity
	}
	if input.BanQuota != 0 {
		cfg.BanQuota = input.BanQuota
	}
	if input.PickQuota != 0 {
		cfg.PickQuota = input.PickQuota
	}

	unlock := s.lock(input.ScopeID)
	defer unlock()

	lobby, err := s.newLobby(input.ScopeID, cfg)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, lobby); err != nil {
		return nil, err
	}

	return &CreateLobbyResult{
		Lobby:   lobby,
		Message: lobby.CreatedReport(),
	}, nil
}

// GetLobby returns a copy of the scope's lobby
func (s *service) GetLobby(ctx context.Context, scopeID string) (*draft.Lobby, error) {
	unlock := s.lock(scopeID)
	defer unlock()

	return s.load(ctx, scopeID)
}

// Info describes the lobby limits
func (s *service) Info(ctx context.Context, scopeID string) (string, error) {
	return s.view(ctx, scopeID, (*draft.Lobby).InfoReport)
}

// Register adds a participant
func (s *service) Register(ctx context.Context, scopeID, participantID string) (string, error) {
	return s.mutate(ctx, scopeID, func(l *draft.Lobby) (string, error) {
		return l.Register(participantID).String(), nil
	})
}

// Unregister removes a participant and returns their picks to the pool
func (s *service) Unregister(ctx context.Context, scopeID, participantID string) (string, error) {
	return s.mutate(ctx, scopeID, func(l *draft.Lobby) (string, error) {
		return l.Unregister(participantID).String(), nil
	})
}

// Players lists registered participants
func (s *service) Players(ctx context.Context, scopeID string) (string, error) {
	return s.view(ctx, scopeID, (*draft.Lobby).PlayersReport)
}

// Ban bans each item for the participant, registering them first if needed.
// "Random" is resolved against the pool right before its own ban.
func (s *service) Ban(ctx context.Context, scopeID, participantID string, items ...string) (string, error) {
	if len(items) == 0 {
		return "", apperr.InvalidArgument("at least one civilization is required")
	}

	return s.mutate(ctx, scopeID, func(l *draft.Lobby) (string, error) {
		lines := []string{"UPDATE:"}
		for _, raw := range items {
			item := catalog.Canonical(raw)
			if item == RandomOption {
				picked, err := l.RandomItem()
				if apperr.IsPoolExhausted(err) {
					lines = append(lines, "ERROR: Can't ban a random civilization; the pool is empty.")
					continue
				}
				if err != nil {
					return "", err
				}
				item = picked
			}
			lines = append(lines, l.Ban(participantID, item).String())
		}
		return strings.Join(lines, "\n"), nil
	})
}

// Unban withdraws each of the participant's bans
func (s *service) Unban(ctx context.Context, scopeID, participantID string, items ...string) (string, error) {
	if len(items) == 0 {
		return "", apperr.InvalidArgument("at least one civilization is required")
	}

	return s.mutate(ctx, scopeID, func(l *draft.Lobby) (string, error) {
		lines := []string{"UPDATE:"}
		for _, raw := range items {
			lines = append(lines, l.Unban(participantID, catalog.Canonical(raw)).String())
		}
		return strings.Join(lines, "\n"), nil
	})
}

// Pool lists available civilizations by tier
func (s *service) Pool(ctx context.Context, scopeID string) (string, error) {
	return s.view(ctx, scopeID, (*draft.Lobby).PoolReport)
}

// PoolItems returns available civilizations sorted by name
func (s *service) PoolItems(ctx context.Context, scopeID string) ([]string, error) {
	lobby, err := s.GetLobby(ctx, scopeID)
	if err != nil {
		return nil, err
	}
	return lobby.AvailableItems(), nil
}

// Bans lists every participant's bans
func (s *service) Bans(ctx context.Context, scopeID string) (string, error) {
	return s.view(ctx, scopeID, (*draft.Lobby).BansReport)
}

// Draft assigns picks and lists them. An exhausted pool is reported, not returned.
func (s *service) Draft(ctx context.Context, scopeID string) (string, error) {
	return s.mutate(ctx, scopeID, func(l *draft.Lobby) (string, error) {
		return draftReport(l, l.Draft())
	})
}

// Redraft returns every pick to the pool, drafts again and lists the picks
func (s *service) Redraft(ctx context.Context, scopeID string) (string, error) {
	return s.mutate(ctx, scopeID, func(l *draft.Lobby) (string, error) {
		return draftReport(l, l.Redraft())
	})
}

// Picks lists every participant's picks
func (s *service) Picks(ctx context.Context, scopeID string) (string, error) {
	return s.view(ctx, scopeID, (*draft.Lobby).PicksReport)
}

func draftReport(l *draft.Lobby, err error) (string, error) {
	if err == nil {
		return l.PicksReport(), nil
	}

	var appErr *apperr.Error
	if apperr.IsPoolExhausted(err) && errors.As(err, &appErr) {
		log.Printf("Draft refused for scope %s: %v (meta: %v)", l.ScopeID(), err, appErr.Meta)
		return "ERROR: " + appErr.Message + ".", nil
	}

	return "", apperr.Wrapf(err, "failed to draft for scope '%s'", l.ScopeID()).
		WithMeta("scope_id", l.ScopeID())
}
