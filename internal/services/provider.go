package services

import (
	"github.com/KirkDiggler/civ-draft-bot/internal/catalog"
	"github.com/KirkDiggler/civ-draft-bot/internal/repositories/lobbies"
	lobbyService "github.com/KirkDiggler/civ-draft-bot/internal/services/lobby"
	referenceService "github.com/KirkDiggler/civ-draft-bot/internal/services/reference"
)

// Provider holds all service instances
type Provider struct {
	LobbyService     lobbyService.Service
	ReferenceService referenceService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	LobbyRepository lobbies.Repository
	Catalog         *catalog.Catalog
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	cat := cfg.Catalog
	if cat == nil {
		cat = catalog.Default()
	}

	// Use in-memory repository if none provided
	lobbyRepo := cfg.LobbyRepository
	if lobbyRepo == nil {
		lobbyRepo = lobbies.NewInMemoryRepository(&lobbies.InMemoryConfig{Catalog: cat})
	}

	return &Provider{
		LobbyService: lobbyService.NewService(&lobbyService.ServiceConfig{
			Repository: lobbyRepo,
			Catalog:    cat,
		}),
		ReferenceService: referenceService.NewService(&referenceService.ServiceConfig{
			Catalog: cat,
		}),
	}
}
