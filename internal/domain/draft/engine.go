package draft

import (
	"log"
	"slices"
	"strings"

	"github.com/KirkDiggler/civ-draft-bot/internal/dice"
	apperr "github.com/KirkDiggler/civ-draft-bot/internal/errors"
)

// DefaultBans are removed from every new lobby before anyone bans
var DefaultBans = []string{"Huns", "Venice", "Spain"}

// Engine runs bans and random drafts against a lobby's pool and registry
type Engine struct {
	pool      *Pool
	registry  *Registry
	roller    dice.Roller
	banQuota  int
	pickQuota int
}

// BanDefaultSet removes DefaultBans from the pool regardless of participants
func (e *Engine) BanDefaultSet() Outcome {
	for _, item := range DefaultBans {
		if res := e.pool.Remove(item); res.Level != LevelSuccess {
			log.Printf("default ban: %s", res)
		}
	}
	return success("%s are automatically banned.", joinWithAnd(DefaultBans))
}

// Ban records a ban for a registered participant and takes item out of the pool
func (e *Engine) Ban(participantID, item string) Outcome {
	p, ok := e.registry.Get(participantID)
	if !ok {
		return failure(apperr.CodeNotRegistered, "Can't ban '%s': %s not registered.", item, participantID)
	}
	if !e.pool.catalog.Has(item) {
		return failure(apperr.CodeUnknownItem, "Can't ban '%s'; not a valid civilization.", item)
	}
	if !e.pool.Contains(item) {
		return failure(apperr.CodeNotInPool, "Can't ban '%s'; not within the available pool.", item)
	}
	if len(p.bans) >= e.banQuota {
		return failure(apperr.CodeQuotaExceeded, "Can't ban '%s'; %s has no bans left.", item, participantID)
	}

	p.bans = append(p.bans, item)
	e.pool.Remove(item)
	return success("%s banned %s.", participantID, item)
}

// EnsureRegisteredThenBan registers an unknown participant before banning.
// A full lobby turns into a failed ban.
func (e *Engine) EnsureRegisteredThenBan(participantID, item string) Outcome {
	if _, ok := e.registry.Get(participantID); !ok {
		if res := e.registry.Register(participantID); !res.OK() {
			return failure(res.Code, "Can't ban '%s': %s", item, res.Message)
		}
	}
	return e.Ban(participantID, item)
}

// Unban withdraws one of the participant's bans and returns item to the pool
func (e *Engine) Unban(participantID, item string) Outcome {
	p, ok := e.registry.Get(participantID)
	if !ok {
		return failure(apperr.CodeNotRegistered, "Can't unban %s; %s not registered.", item, participantID)
	}
	idx := slices.Index(p.bans, item)
	if idx < 0 {
		return failure(apperr.CodeNotBanned, "Can't unban %s; %s did not ban it.", item, participantID)
	}

	p.bans = slices.Delete(p.bans, idx, idx+1)
	if res := e.pool.Add(item); res.Level != LevelSuccess {
		log.Printf("unban: %s", res)
	}
	return success("%s unbanned %s.", participantID, item)
}

// RandomItem draws one available civilization without removing it
func (e *Engine) RandomItem() (string, error) {
	items := e.pool.Flatten()
	if len(items) == 0 {
		return "", apperr.New(apperr.CodePoolExhausted, "the pool is empty")
	}
	idx, err := dice.PickIndex(e.roller, len(items))
	if err != nil {
		return "", apperr.Wrap(err, "failed to pick a random civilization")
	}
	return items[idx], nil
}

type draw struct {
	participant *Participant
	item        string
}

// Draft fills every participant's picks up to the pick quota, in registration
// order, drawing uniformly from the pool without replacement. Nothing changes
// when the pool is too small for everyone.
func (e *Engine) Draft() error {
	needed := 0
	e.registry.each(func(p *Participant) {
		needed += max(e.pickQuota-len(p.picks), 0)
	})
	if available := e.pool.Len(); needed > available {
		return exhausted(needed, available)
	}

	var draws []draw
	for _, p := range e.registry.participants {
		for len(p.picks) < e.pickQuota {
			item, err := e.popRandom()
			if err != nil {
				e.rollback(draws)
				return apperr.Wrapf(err, "failed to draft for %s", p.ID)
			}
			p.picks = append(p.picks, item)
			draws = append(draws, draw{participant: p, item: item})
		}
	}
	return nil
}

// Redraft returns every pick to the pool and drafts again. Bans stay in place.
// A pool too small for everyone leaves the lobby unchanged. A sampling error
// during the new draft leaves every pick list empty with the picks back in the pool.
func (e *Engine) Redraft() error {
	needed := e.registry.Len() * e.pickQuota
	available := e.pool.Len()
	e.registry.each(func(p *Participant) {
		available += len(p.picks)
	})
	if needed > available {
		return exhausted(needed, available)
	}

	e.registry.each(func(p *Participant) {
		for _, item := range p.picks {
			if res := e.pool.Add(item); res.Level != LevelSuccess {
				panic("redraft: " + res.String())
			}
		}
		p.picks = nil
	})

	return e.Draft()
}

func (e *Engine) popRandom() (string, error) {
	item, err := e.RandomItem()
	if err != nil {
		return "", err
	}
	e.pool.Remove(item)
	return item, nil
}

func (e *Engine) rollback(draws []draw) {
	for i := len(draws) - 1; i >= 0; i-- {
		d := draws[i]
		d.participant.picks = d.participant.picks[:len(d.participant.picks)-1]
		e.pool.Add(d.item)
	}
}

func exhausted(needed, available int) error {
	return apperr.Newf(apperr.CodePoolExhausted,
		"Can't draft; %d civilizations needed but only %d available", needed, available).
		WithMeta("needed", needed).
		WithMeta("available", available)
}

// joinWithAnd renders "A", "A and B" or "A, B, and C"
func joinWithAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}
