package draft

import (
	"fmt"
	"slices"
	"strings"

	"github.com/KirkDiggler/civ-draft-bot/internal/catalog"
	apperr "github.com/KirkDiggler/civ-draft-bot/internal/errors"
)

// Pool is a lobby's own copy of the catalog's tiers holding the civilizations
// still available to ban or pick. Every pool item belongs to its catalog tier.
type Pool struct {
	catalog *catalog.Catalog
	tiers   map[string]map[string]struct{}
}

// NewPool creates a pool holding every civilization of the catalog
func NewPool(cat *catalog.Catalog) *Pool {
	p := newEmptyPool(cat)
	for _, tier := range cat.Tiers() {
		items, _ := cat.ItemsOf(tier)
		for _, item := range items {
			p.tiers[tier][item] = struct{}{}
		}
	}
	return p
}

func newEmptyPool(cat *catalog.Catalog) *Pool {
	p := &Pool{
		catalog: cat,
		tiers:   make(map[string]map[string]struct{}),
	}
	for _, tier := range cat.Tiers() {
		p.tiers[tier] = make(map[string]struct{})
	}
	return p
}

// Contains reports whether item is currently available
func (p *Pool) Contains(item string) bool {
	tier, err := p.catalog.TierOf(item)
	if err != nil {
		return false
	}
	_, ok := p.tiers[tier][item]
	return ok
}

// Len returns the number of available civilizations
func (p *Pool) Len() int {
	n := 0
	for _, items := range p.tiers {
		n += len(items)
	}
	return n
}

// Flatten returns every available civilization sorted case-insensitively.
// It is both the pool listing and the sampling domain of a draft.
func (p *Pool) Flatten() []string {
	items := make([]string, 0, p.Len())
	for _, set := range p.tiers {
		for item := range set {
			items = append(items, item)
		}
	}
	slices.SortFunc(items, func(a, b string) int {
		if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	return items
}

// Tier returns the available civilizations of one tier in catalog order
func (p *Pool) Tier(label string) ([]string, error) {
	all, err := p.catalog.ItemsOf(label)
	if err != nil {
		return nil, err
	}
	available := make([]string, 0, len(all))
	for _, item := range all {
		if _, ok := p.tiers[label][item]; ok {
			available = append(available, item)
		}
	}
	return available, nil
}

// Remove takes item out of the pool. The tier comes from the catalog, so a
// redundant removal is a harmless warning.
func (p *Pool) Remove(item string) Outcome {
	if !p.Contains(item) {
		return warning(apperr.CodeNotInPool, "Can't remove %s from the pool; not in the pool.", item)
	}
	tier := p.mustTierOf(item)
	delete(p.tiers[tier], item)
	return success("Removed %s from the pool.", item)
}

// Add puts item back into its catalog tier
func (p *Pool) Add(item string) Outcome {
	if !p.catalog.Has(item) {
		return failure(apperr.CodeUnknownItem, "Can't add %s to the pool; not a valid civilization.", item)
	}
	if p.Contains(item) {
		return warning(apperr.CodeAlreadyExists, "Can't add %s to the pool; already in the pool.", item)
	}
	tier := p.mustTierOf(item)
	p.tiers[tier][item] = struct{}{}
	return success("Added %s to the pool.", item)
}

// Snapshot returns tier label -> available civilizations in catalog order
func (p *Pool) Snapshot() map[string][]string {
	out := make(map[string][]string, len(p.tiers))
	for _, tier := range p.catalog.Tiers() {
		items, _ := p.Tier(tier)
		out[tier] = items
	}
	return out
}

func (p *Pool) mustTierOf(item string) string {
	tier, err := p.catalog.TierOf(item)
	if err != nil {
		panic(fmt.Sprintf("pool and catalog out of sync: %v", err))
	}
	return tier
}
