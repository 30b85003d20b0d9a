package discord

import (
	"fmt"

	"github.com/KirkDiggler/civ-draft-bot/internal/dice"
	"github.com/KirkDiggler/civ-draft-bot/internal/handlers/discord/utils"
)

// GeneralHandler serves the /general subcommands
type GeneralHandler struct {
	roller dice.Roller
}

func NewGeneralHandler(roller dice.Roller) *GeneralHandler {
	return &GeneralHandler{roller: roller}
}

func (h *GeneralHandler) Handle(req *CommandRequest) (string, error) {
	switch req.Subcommand {
	case "salute":
		return fmt.Sprintf("Hello %s!", req.ParticipantID), nil
	case "rolldice":
		count := int(utils.GetIntOption(req.Interaction, "number_of_dice", defaultDice))
		sides := int(utils.GetIntOption(req.Interaction, "number_of_sides", defaultSides))
		if count < 1 || count > maxDice {
			return fmt.Sprintf("ERROR: Roll between 1 and %d dice.", maxDice), nil
		}
		if sides < minSides || sides > maxSides {
			return fmt.Sprintf("ERROR: Dice need between %d and %d sides.", minSides, maxSides), nil
		}

		result, err := h.roller.Roll(count, sides, 0)
		if err != nil {
			return "", fmt.Errorf("failed to roll %dd%d: %w", count, sides, err)
		}
		return result.String(), nil
	default:
		return "", fmt.Errorf("unknown general command: %s", req.Subcommand)
	}
}
