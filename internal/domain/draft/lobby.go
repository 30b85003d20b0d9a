package draft

import (
	"github.com/KirkDiggler/civ-draft-bot/internal/catalog"
	"github.com/KirkDiggler/civ-draft-bot/internal/dice"
	apperr "github.com/KirkDiggler/civ-draft-bot/internal/errors"
)

const (
	DefaultCapacity  = 4
	DefaultBanQuota  = 2
	DefaultPickQuota = 3
)

// Config holds the limits a lobby is created with
type Config struct {
	Capacity  int `json:"capacity"`
	BanQuota  int `json:"ban_quota"`
	PickQuota int `json:"pick_quota"`
}

// DefaultConfig is used for lobbies nobody created explicitly
func DefaultConfig() Config {
	return Config{
		Capacity:  DefaultCapacity,
		BanQuota:  DefaultBanQuota,
		PickQuota: DefaultPickQuota,
	}
}

// Validate rejects non-positive limits
func (c Config) Validate() error {
	if c.Capacity < 1 {
		return apperr.InvalidArgumentf("capacity must be at least 1, got %d", c.Capacity)
	}
	if c.BanQuota < 1 {
		return apperr.InvalidArgumentf("ban quota must be at least 1, got %d", c.BanQuota)
	}
	if c.PickQuota < 1 {
		return apperr.InvalidArgumentf("pick quota must be at least 1, got %d", c.PickQuota)
	}
	return nil
}

// LobbyConfig holds everything needed to create a lobby
type LobbyConfig struct {
	ID      string           // Required
	ScopeID string           // Required, the guild the lobby belongs to
	Config  Config           // Required
	Catalog *catalog.Catalog // Optional, defaults to catalog.Default()
	Roller  dice.Roller      // Optional, defaults to dice.NewRandomRoller()
}

// Lobby is one draft game: a pool, its participants and the limits they play under
type Lobby struct {
	id               string
	scopeID          string
	config           Config
	catalog          *catalog.Catalog
	pool             *Pool
	registry         *Registry
	engine           *Engine
	defaultBanNotice string
}

// New creates a lobby with a full pool and applies the default bans
func New(cfg *LobbyConfig) (*Lobby, error) {
	if cfg == nil {
		return nil, apperr.InvalidArgument("lobby config cannot be nil")
	}
	l, err := newLobby(cfg)
	if err != nil {
		return nil, err
	}
	l.pool = NewPool(l.catalog)
	l.wire()
	l.defaultBanNotice = l.engine.BanDefaultSet().String()
	return l, nil
}

func newLobby(cfg *LobbyConfig) (*Lobby, error) {
	if cfg.ID == "" {
		return nil, apperr.InvalidArgument("lobby ID is required")
	}
	if cfg.ScopeID == "" {
		return nil, apperr.InvalidArgument("scope ID is required")
	}
	if err := cfg.Config.Validate(); err != nil {
		return nil, err
	}

	l := &Lobby{
		id:      cfg.ID,
		scopeID: cfg.ScopeID,
		config:  cfg.Config,
		catalog: cfg.Catalog,
	}
	if l.catalog == nil {
		l.catalog = catalog.Default()
	}
	l.registry = NewRegistry(cfg.Config.Capacity)
	l.engine = &Engine{roller: cfg.Roller}
	if l.engine.roller == nil {
		l.engine.roller = dice.NewRandomRoller()
	}
	return l, nil
}

func (l *Lobby) wire() {
	l.engine.pool = l.pool
	l.engine.registry = l.registry
	l.engine.banQuota = l.config.BanQuota
	l.engine.pickQuota = l.config.PickQuota
}

// ID returns the lobby's unique ID
func (l *Lobby) ID() string { return l.id }

// ScopeID returns the guild the lobby belongs to
func (l *Lobby) ScopeID() string { return l.scopeID }

// Config returns the lobby limits
func (l *Lobby) Config() Config { return l.config }

// Catalog returns the catalog the pool was copied from
func (l *Lobby) Catalog() *catalog.Catalog { return l.catalog }

// DefaultBanNotice is the announcement produced by the default bans
func (l *Lobby) DefaultBanNotice() string { return l.defaultBanNotice }

// Pool returns tier label -> available civilizations
func (l *Lobby) Pool() map[string][]string { return l.pool.Snapshot() }

// AvailableItems returns the available civilizations sorted by name
func (l *Lobby) AvailableItems() []string { return l.pool.Flatten() }

// IsAvailable reports whether item can still be banned or picked
func (l *Lobby) IsAvailable(item string) bool { return l.pool.Contains(item) }

// ParticipantIDs returns participants in registration order
func (l *Lobby) ParticipantIDs() []string { return l.registry.List() }

// Participant looks up a participant
func (l *Lobby) Participant(id string) (*Participant, bool) { return l.registry.Get(id) }

// UseRoller replaces the roller behind drafts and random bans. A nil roller is ignored.
func (l *Lobby) UseRoller(r dice.Roller) {
	if r != nil {
		l.engine.roller = r
	}
}

// Participants returns copies of every participant in registration order
func (l *Lobby) Participants() []Participant { return l.registry.Participants() }

// Register adds a participant to the lobby
func (l *Lobby) Register(id string) Outcome {
	return l.registry.Register(id)
}

// Unregister removes a participant. Their picks go back to the pool; bans stay
// in force for the rest of the lobby.
func (l *Lobby) Unregister(id string) Outcome {
	if p, ok := l.registry.Get(id); ok {
		for _, item := range p.Picks() {
			l.pool.Add(item)
		}
	}
	return l.registry.Unregister(id)
}

// Ban bans item for the participant, registering them first if needed
func (l *Lobby) Ban(participantID, item string) Outcome {
	return l.engine.EnsureRegisteredThenBan(participantID, item)
}

// Unban withdraws one of the participant's bans
func (l *Lobby) Unban(participantID, item string) Outcome {
	return l.engine.Unban(participantID, item)
}

// RandomItem draws one available civilization without removing it
func (l *Lobby) RandomItem() (string, error) {
	return l.engine.RandomItem()
}

// Draft assigns picks to every participant
func (l *Lobby) Draft() error {
	return l.engine.Draft()
}

// Redraft returns all picks to the pool and drafts again
func (l *Lobby) Redraft() error {
	return l.engine.Redraft()
}
