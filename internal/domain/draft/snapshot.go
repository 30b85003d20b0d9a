package draft

import (
	"slices"

	"github.com/KirkDiggler/civ-draft-bot/internal/catalog"
	"github.com/KirkDiggler/civ-draft-bot/internal/dice"
	apperr "github.com/KirkDiggler/civ-draft-bot/internal/errors"
)

// Snapshot is a plain value copy of a lobby, safe to serialize and share
type Snapshot struct {
	ID               string                `json:"id"`
	ScopeID          string                `json:"scope_id"`
	Config           Config                `json:"config"`
	Pool             map[string][]string   `json:"pool"`
	Participants     []ParticipantSnapshot `json:"participants"`
	DefaultBanNotice string                `json:"default_ban_notice,omitempty"`
}

// ParticipantSnapshot is a plain value copy of a participant
type ParticipantSnapshot struct {
	ID    string   `json:"id"`
	Bans  []string `json:"bans"`
	Picks []string `json:"picks"`
}

// Snapshot copies the lobby state
func (l *Lobby) Snapshot() *Snapshot {
	snap := &Snapshot{
		ID:               l.id,
		ScopeID:          l.scopeID,
		Config:           l.config,
		Pool:             l.pool.Snapshot(),
		Participants:     make([]ParticipantSnapshot, 0, l.registry.Len()),
		DefaultBanNotice: l.defaultBanNotice,
	}
	l.registry.each(func(p *Participant) {
		snap.Participants = append(snap.Participants, ParticipantSnapshot{
			ID:    p.ID,
			Bans:  p.Bans(),
			Picks: p.Picks(),
		})
	})
	return snap
}

// Restore rebuilds a lobby from a snapshot, checking every lobby invariant.
// A nil catalog or roller falls back to the defaults.
func Restore(snap *Snapshot, cat *catalog.Catalog, roller dice.Roller) (*Lobby, error) {
	if snap == nil {
		return nil, apperr.InvalidArgument("snapshot cannot be nil")
	}

	l, err := newLobby(&LobbyConfig{
		ID:      snap.ID,
		ScopeID: snap.ScopeID,
		Config:  snap.Config,
		Catalog: cat,
		Roller:  roller,
	})
	if err != nil {
		return nil, apperr.Wrapf(err, "invalid snapshot for lobby %s", snap.ID)
	}
	l.defaultBanNotice = snap.DefaultBanNotice

	l.pool = newEmptyPool(l.catalog)
	for tier, items := range snap.Pool {
		for _, item := range items {
			owner, err := l.catalog.TierOf(item)
			if err != nil {
				return nil, apperr.Wrapf(err, "lobby %s pool is out of sync with the catalog", snap.ID)
			}
			if owner != tier {
				return nil, apperr.Internalf("lobby %s has %s in tier %s, catalog says %s", snap.ID, item, tier, owner)
			}
			l.pool.tiers[tier][item] = struct{}{}
		}
	}
	l.wire()

	claimed := make(map[string]string)
	claim := func(owner, item string) error {
		if !l.catalog.Has(item) {
			return apperr.Newf(apperr.CodeUnknownItem, "lobby %s: %s holds unknown civilization %s", snap.ID, owner, item)
		}
		if l.pool.Contains(item) {
			return apperr.Internalf("lobby %s: %s is both in the pool and held by %s", snap.ID, item, owner)
		}
		if prev, ok := claimed[item]; ok {
			return apperr.Internalf("lobby %s: %s is held by both %s and %s", snap.ID, item, prev, owner)
		}
		claimed[item] = owner
		return nil
	}

	for _, ps := range snap.Participants {
		if res := l.registry.Register(ps.ID); res.Level != LevelSuccess {
			return nil, apperr.Internalf("lobby %s: cannot restore participant %s: %s", snap.ID, ps.ID, res.Message)
		}
		if len(ps.Bans) > l.config.BanQuota {
			return nil, apperr.Internalf("lobby %s: %s has %d bans, quota is %d", snap.ID, ps.ID, len(ps.Bans), l.config.BanQuota)
		}
		if len(ps.Picks) > l.config.PickQuota {
			return nil, apperr.Internalf("lobby %s: %s has %d picks, quota is %d", snap.ID, ps.ID, len(ps.Picks), l.config.PickQuota)
		}
		for _, item := range append(slices.Clone(ps.Bans), ps.Picks...) {
			if err := claim(ps.ID, item); err != nil {
				return nil, err
			}
		}
		p, _ := l.registry.Get(ps.ID)
		p.bans = slices.Clone(ps.Bans)
		p.picks = slices.Clone(ps.Picks)
	}

	return l, nil
}
