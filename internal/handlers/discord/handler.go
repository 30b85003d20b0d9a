package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/civ-draft-bot/internal/catalog"
	"github.com/KirkDiggler/civ-draft-bot/internal/dice"
	"github.com/KirkDiggler/civ-draft-bot/internal/handlers/discord/utils"
	"github.com/KirkDiggler/civ-draft-bot/internal/services/lobby"
	"github.com/KirkDiggler/civ-draft-bot/internal/services/reference"
)

// CommandRequest is one slash command or autocomplete request, already resolved
// to the lobby scope (guild) and the participant (user mention) it came from
type CommandRequest struct {
	Interaction   *discordgo.InteractionCreate
	Subcommand    string
	ScopeID       string
	ParticipantID string
}

// Handler handles all Discord interactions
type Handler struct {
	lobbyHandler     *LobbyHandler
	referenceHandler *ReferenceHandler
	generalHandler   *GeneralHandler
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	LobbyService     lobby.Service     // Required
	ReferenceService reference.Service // Optional, defaults to the built-in tier list
	Roller           dice.Roller       // Optional, used by /general rolldice
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg.LobbyService == nil {
		panic("lobby service is required")
	}

	ref := cfg.ReferenceService
	if ref == nil {
		ref = reference.NewService(nil)
	}
	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}

	return &Handler{
		lobbyHandler:     NewLobbyHandler(cfg.LobbyService),
		referenceHandler: NewReferenceHandler(ref),
		generalHandler:   NewGeneralHandler(roller),
	}
}

// RegisterCommands registers all slash commands with Discord
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	for _, cmd := range Commands() {
		_, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd)
		if err != nil {
			return fmt.Errorf("failed to create command %s: %w", cmd.Name, err)
		}
		log.Printf("Registered command: %s", cmd.Name)
	}

	return nil
}

// HandleInteraction handles all Discord interactions
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	h.handle(context.Background(), s, i)
}

func (h *Handler) handle(ctx context.Context, r Responder, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		h.handleCommand(ctx, r, i)
	case discordgo.InteractionApplicationCommandAutocomplete:
		h.handleAutocomplete(ctx, r, i)
	}
}

func newCommandRequest(i *discordgo.InteractionCreate) *CommandRequest {
	req := &CommandRequest{
		Interaction: i,
		Subcommand:  utils.GetSubcommand(i),
		ScopeID:     i.GuildID,
	}
	switch {
	case i.Member != nil && i.Member.User != nil:
		req.ParticipantID = i.Member.User.Mention()
	case i.User != nil:
		req.ParticipantID = i.User.Mention()
	}
	return req
}

// handleCommand handles slash command interactions
func (h *Handler) handleCommand(ctx context.Context, r Responder, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	req := newCommandRequest(i)

	var content string
	var err error
	switch data.Name {
	case "lobby":
		content, err = h.lobbyHandler.Handle(ctx, req)
	case "reference":
		content, err = h.referenceHandler.Handle(req)
	case "general":
		content, err = h.generalHandler.Handle(req)
	default:
		return
	}

	if err != nil {
		log.Printf("Error handling /%s %s: %v", data.Name, req.Subcommand, err)
		respondWithError(r, i, fmt.Sprintf("Failed to run /%s %s: %v", data.Name, req.Subcommand, err))
		return
	}

	err = r.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	})
	if err != nil {
		log.Printf("Failed to respond to /%s %s: %v", data.Name, req.Subcommand, err)
	}
}

// handleAutocomplete suggests values for the option being typed
func (h *Handler) handleAutocomplete(ctx context.Context, r Responder, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	req := newCommandRequest(i)

	focused := utils.GetFocusedOption(i)
	input := ""
	if focused != nil && focused.Type == discordgo.ApplicationCommandOptionString {
		input = focused.StringValue()
	}

	var candidates []string
	switch data.Name {
	case "lobby":
		var err error
		candidates, err = h.lobbyHandler.Autocomplete(ctx, req, input)
		if err != nil {
			log.Printf("Error autocompleting /lobby %s: %v", req.Subcommand, err)
		}
	case "reference":
		candidates = h.referenceHandler.Autocomplete(req, input)
	}

	err := r.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: toChoices(candidates, input),
		},
	})
	if err != nil {
		log.Printf("Failed to send autocomplete choices: %v", err)
	}
}

func toChoices(candidates []string, input string) []*discordgo.ApplicationCommandOptionChoice {
	matches := catalog.MatchPrefix(candidates, input, maxChoices)
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(matches))
	for _, m := range matches {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: m, Value: m})
	}
	return choices
}
