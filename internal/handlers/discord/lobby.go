package discord

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/civ-draft-bot/internal/handlers/discord/utils"
	"github.com/KirkDiggler/civ-draft-bot/internal/services/lobby"
)

// LobbyHandler serves the /lobby subcommands
type LobbyHandler struct {
	service lobby.Service
}

func NewLobbyHandler(service lobby.Service) *LobbyHandler {
	return &LobbyHandler{service: service}
}

// Handle runs one /lobby subcommand and returns the message to post
func (h *LobbyHandler) Handle(ctx context.Context, req *CommandRequest) (string, error) {
	if req.ScopeID == "" {
		return "ERROR: Lobby commands only work inside a server.", nil
	}
	i := req.Interaction

	switch req.Subcommand {
	case "ng":
		result, err := h.service.CreateLobby(ctx, &lobby.CreateLobbyInput{
			ScopeID:   req.ScopeID,
			Capacity:  int(utils.GetIntOption(i, "playercount", 0)),
			BanQuota:  int(utils.GetIntOption(i, "bancount", defaultBans)),
			PickQuota: int(utils.GetIntOption(i, "pickcount", defaultPicks)),
		})
		if err != nil {
			return "", err
		}
		return result.Message, nil
	case "info":
		return h.service.Info(ctx, req.ScopeID)
	case "register":
		return h.service.Register(ctx, req.ScopeID, req.ParticipantID)
	case "unregister":
		return h.service.Unregister(ctx, req.ScopeID, req.ParticipantID)
	case "lp":
		return h.service.Players(ctx, req.ScopeID)
	case "ban":
		return h.service.Ban(ctx, req.ScopeID, req.ParticipantID, civOptions(req)...)
	case "unban":
		return h.service.Unban(ctx, req.ScopeID, req.ParticipantID, civOptions(req)...)
	case "lc":
		return h.service.Pool(ctx, req.ScopeID)
	case "lb":
		return h.service.Bans(ctx, req.ScopeID)
	case "draft":
		return h.service.Draft(ctx, req.ScopeID)
	case "rd":
		return h.service.Redraft(ctx, req.ScopeID)
	case "ld":
		return h.service.Picks(ctx, req.ScopeID)
	default:
		return "", fmt.Errorf("unknown lobby command: %s", req.Subcommand)
	}
}

// Autocomplete suggests civilizations: the pool (plus Random) for bans, the caller's own bans for unbans
func (h *LobbyHandler) Autocomplete(ctx context.Context, req *CommandRequest, input string) ([]string, error) {
	if req.ScopeID == "" {
		return nil, nil
	}

	switch req.Subcommand {
	case "ban":
		items, err := h.service.PoolItems(ctx, req.ScopeID)
		if err != nil {
			return nil, err
		}
		return append([]string{lobby.RandomOption}, items...), nil
	case "unban":
		l, err := h.service.GetLobby(ctx, req.ScopeID)
		if err != nil {
			return nil, err
		}
		p, ok := l.Participant(req.ParticipantID)
		if !ok {
			return nil, nil
		}
		return p.Bans(), nil
	default:
		return nil, nil
	}
}

func civOptions(req *CommandRequest) []string {
	var items []string
	for _, name := range []string{"civ_one", "civ_two"} {
		if v := utils.GetStringOption(req.Interaction, name); v != "" {
			items = append(items, v)
		}
	}
	return items
}
