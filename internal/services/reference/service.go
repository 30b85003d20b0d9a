package reference

import (
	"strings"

	"github.com/KirkDiggler/civ-draft-bot/internal/catalog"
)

// Service answers questions about the civilization tier list
type Service interface {
	// Tiers renders every tier and its civilizations
	Tiers() string

	// TierOf renders the tier of a civilization
	TierOf(item string) string

	// ItemsOf renders the civilizations of a tier
	ItemsOf(tier string) string

	// SearchItems returns at most limit civilizations starting with prefix
	SearchItems(prefix string, limit int) []string

	// SearchTiers returns at most limit tier labels starting with prefix
	SearchTiers(prefix string, limit int) []string
}

type service struct {
	catalog *catalog.Catalog
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Catalog *catalog.Catalog // Optional, defaults to catalog.Default()
}

// NewService creates a new reference service
func NewService(cfg *ServiceConfig) Service {
	svc := &service{}
	if cfg != nil {
		svc.catalog = cfg.Catalog
	}
	if svc.catalog == nil {
		svc.catalog = catalog.Default()
	}
	return svc
}

func (s *service) Tiers() string {
	return s.catalog.DescribeAll()
}

func (s *service) TierOf(item string) string {
	item = catalog.Canonical(item)
	text, err := s.catalog.DescribeItem(item)
	if err != nil {
		return "ERROR: " + item + " is not a valid civilization."
	}
	return text
}

func (s *service) ItemsOf(tier string) string {
	tier = strings.ToUpper(strings.TrimSpace(tier))
	text, err := s.catalog.DescribeTier(tier)
	if err != nil {
		return "ERROR: Tier " + tier + " is not a valid tier."
	}
	return text
}

func (s *service) SearchItems(prefix string, limit int) []string {
	return catalog.MatchPrefix(s.catalog.AllItems(), prefix, limit)
}

func (s *service) SearchTiers(prefix string, limit int) []string {
	return catalog.MatchPrefix(s.catalog.Tiers(), prefix, limit)
}
