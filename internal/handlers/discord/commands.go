package discord

import "github.com/bwmarrin/discordgo"

const (
	maxPlayers = 8
	maxBans    = 2
	maxPicks   = 5

	defaultBans  = 1
	defaultPicks = 3

	maxDice      = 8
	minSides     = 2
	maxSides     = 60
	defaultDice  = 2
	defaultSides = 6

	// Discord shows at most 25 autocomplete choices
	maxChoices = 25
)

func minValue(v float64) *float64 {
	return &v
}

func subcommand(name, description string, options ...*discordgo.ApplicationCommandOption) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Name:        name,
		Description: description,
		Type:        discordgo.ApplicationCommandOptionSubCommand,
		Options:     options,
	}
}

func civOption(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:         discordgo.ApplicationCommandOptionString,
		Name:         name,
		Description:  description,
		Required:     required,
		Autocomplete: true,
	}
}

func intOption(name, description string, required bool, low, high float64) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        name,
		Description: description,
		Required:    required,
		MinValue:    minValue(low),
		MaxValue:    high,
	}
}

// Commands returns the slash commands the bot serves
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "lobby",
			Description: "Commands related to the lobby creation.",
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("ng", "Create a new lobby with optional ban/pick settings.",
					intOption("playercount", "How many players?", true, 1, maxPlayers),
					intOption("bancount", "How many bans per player?", false, 1, maxBans),
					intOption("pickcount", "How many picks per player?", false, 1, maxPicks),
				),
				subcommand("info", "Print the lobby settings for players, bans, and picks."),
				subcommand("register", "Register for the active lobby."),
				subcommand("unregister", "Unregister from the active lobby."),
				subcommand("lp", "Print the list of registered players within the active lobby."),
				subcommand("ban", "Ban a civilization.",
					civOption("civ_one", "First civilization to ban.", true),
					civOption("civ_two", "Second civilization to ban.", false),
				),
				subcommand("unban", "Unban a civilization that you banned.",
					civOption("civ_one", "First civilization to unban.", true),
					civOption("civ_two", "Second civilization to unban.", false),
				),
				subcommand("lc", "Print the list of civilizations in the pool."),
				subcommand("lb", "Print the list of existing bans within the lobby."),
				subcommand("draft", "Create a new draft from the available pool."),
				subcommand("rd", "Return all picks to the pool and draft again."),
				subcommand("ld", "Print the list of picks for each player."),
			},
		},
		{
			Name:        "reference",
			Description: "Commands related to Civilization 5 information.",
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("tiers", "Print a list of civilizations according to tiers."),
				subcommand("tierfromciv", "Print the tier of a given civilization.",
					civOption("civ", "Which civilization are you looking for?", true),
				),
				subcommand("civsfromtier", "Print the civilizations in a given tier.",
					civOption("tier", "Which tier are you looking for?", true),
				),
			},
		},
		{
			Name:        "general",
			Description: "Commands related to nothing specific.",
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("salute", "Salutes the author."),
				subcommand("rolldice", "Simulates a roll of dice.",
					intOption("number_of_dice", "How many dice?", false, 1, maxDice),
					intOption("number_of_sides", "How many sides?", false, minSides, maxSides),
				),
			},
		},
	}
}
