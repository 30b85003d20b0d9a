// Package catalog holds the read-only tier list that every lobby pool is copied from.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	apperr "github.com/KirkDiggler/civ-draft-bot/internal/errors"
)

//go:embed civilizations.yaml
var civilizationsYAML []byte

// Tier is one labelled group of civilizations of roughly equal strength
type Tier struct {
	Label         string   `yaml:"label"`
	Civilizations []string `yaml:"civilizations"`
}

type definition struct {
	Tiers []Tier `yaml:"tiers"`
}

// Catalog maps tier labels to civilizations. It is immutable once built.
type Catalog struct {
	tiers  []Tier
	byTier map[string]int
	byItem map[string]string
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the process-wide catalog parsed from the embedded tier list
func Default() *Catalog {
	defaultOnce.Do(func() {
		cat, err := Parse(civilizationsYAML)
		if err != nil {
			panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
		}
		defaultCatalog = cat
	})
	return defaultCatalog
}

// Parse builds a catalog from a YAML tier definition
func Parse(data []byte) (*Catalog, error) {
	var def definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, apperr.Wrap(err, "failed to parse catalog")
	}
	return New(def.Tiers)
}

// New builds a catalog from tiers, rejecting empty labels, duplicate tiers
// and civilizations listed in more than one tier.
func New(tiers []Tier) (*Catalog, error) {
	if len(tiers) == 0 {
		return nil, apperr.InvalidArgument("catalog needs at least one tier")
	}

	c := &Catalog{
		tiers:  make([]Tier, 0, len(tiers)),
		byTier: make(map[string]int, len(tiers)),
		byItem: make(map[string]string),
	}

	for _, tier := range tiers {
		if tier.Label == "" {
			return nil, apperr.InvalidArgument("tier label cannot be empty")
		}
		if _, exists := c.byTier[tier.Label]; exists {
			return nil, apperr.InvalidArgumentf("tier %s is defined twice", tier.Label)
		}

		items := make([]string, 0, len(tier.Civilizations))
		for _, item := range tier.Civilizations {
			if item == "" {
				return nil, apperr.InvalidArgumentf("tier %s has an empty civilization", tier.Label)
			}
			if owner, exists := c.byItem[item]; exists {
				return nil, apperr.InvalidArgumentf("%s is listed in tier %s and tier %s", item, owner, tier.Label)
			}
			c.byItem[item] = tier.Label
			items = append(items, item)
		}

		c.byTier[tier.Label] = len(c.tiers)
		c.tiers = append(c.tiers, Tier{Label: tier.Label, Civilizations: items})
	}

	return c, nil
}

// TierOf returns the tier label of a civilization
func (c *Catalog) TierOf(item string) (string, error) {
	tier, ok := c.byItem[item]
	if !ok {
		return "", apperr.Newf(apperr.CodeUnknownItem, "%s is not a valid civilization", item).
			WithMeta("item", item)
	}
	return tier, nil
}

// ItemsOf returns the civilizations of a tier in listing order
func (c *Catalog) ItemsOf(tier string) ([]string, error) {
	idx, ok := c.byTier[tier]
	if !ok {
		return nil, apperr.Newf(apperr.CodeUnknownTier, "tier %s is not a valid tier", tier).
			WithMeta("tier", tier)
	}
	return append([]string(nil), c.tiers[idx].Civilizations...), nil
}

// AllItems returns every civilization, tier by tier, in listing order
func (c *Catalog) AllItems() []string {
	all := make([]string, 0, len(c.byItem))
	for _, tier := range c.tiers {
		all = append(all, tier.Civilizations...)
	}
	return all
}

// Tiers returns the tier labels in listing order
func (c *Catalog) Tiers() []string {
	labels := make([]string, len(c.tiers))
	for i, tier := range c.tiers {
		labels[i] = tier.Label
	}
	return labels
}

// Has reports whether item is a known civilization
func (c *Catalog) Has(item string) bool {
	_, ok := c.byItem[item]
	return ok
}

// HasTier reports whether tier is a known tier label
func (c *Catalog) HasTier(tier string) bool {
	_, ok := c.byTier[tier]
	return ok
}

// Canonical trims input and upper-cases its first letter, leaving the rest untouched.
// Catalog lookups are case sensitive, so user input goes through here first.
func Canonical(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return input
	}
	first, size := utf8.DecodeRuneInString(input)
	return string(unicode.ToUpper(first)) + input[size:]
}
