package discord

import (
	"fmt"

	"github.com/KirkDiggler/civ-draft-bot/internal/handlers/discord/utils"
	"github.com/KirkDiggler/civ-draft-bot/internal/services/reference"
)

// ReferenceHandler serves the /reference subcommands
type ReferenceHandler struct {
	service reference.Service
}

func NewReferenceHandler(service reference.Service) *ReferenceHandler {
	return &ReferenceHandler{service: service}
}

func (h *ReferenceHandler) Handle(req *CommandRequest) (string, error) {
	switch req.Subcommand {
	case "tiers":
		return h.service.Tiers(), nil
	case "tierfromciv":
		return h.service.TierOf(utils.GetStringOption(req.Interaction, "civ")), nil
	case "civsfromtier":
		return h.service.ItemsOf(utils.GetStringOption(req.Interaction, "tier")), nil
	default:
		return "", fmt.Errorf("unknown reference command: %s", req.Subcommand)
	}
}

func (h *ReferenceHandler) Autocomplete(req *CommandRequest, input string) []string {
	switch req.Subcommand {
	case "tierfromciv":
		return h.service.SearchItems(input, maxChoices)
	case "civsfromtier":
		return h.service.SearchTiers(input, maxChoices)
	default:
		return nil
	}
}
