package utils

import "github.com/bwmarrin/discordgo"

// GetCommandOption safely retrieves a command option by name from interaction data
func GetCommandOption(i *discordgo.InteractionCreate, name string) *discordgo.ApplicationCommandInteractionDataOption {
	if i.ApplicationCommandData().Options == nil {
		return nil
	}

	// Start with the root options
	options := i.ApplicationCommandData().Options

	// Navigate through subcommand groups and subcommands
	for len(options) > 0 {
		for _, opt := range options {
			if opt.Name == name {
				return opt
			}
		}

		// If the first option has sub-options (it's a subcommand group or subcommand), drill down
		if len(options[0].Options) > 0 {
			options = options[0].Options
		} else {
			break
		}
	}

	return nil
}

// GetSubcommand returns the name of the invoked subcommand, empty if there is none
func GetSubcommand(i *discordgo.InteractionCreate) string {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 || options[0].Type != discordgo.ApplicationCommandOptionSubCommand {
		return ""
	}
	return options[0].Name
}

// GetStringOption safely retrieves a string option value by name
func GetStringOption(i *discordgo.InteractionCreate, name string) string {
	opt := GetCommandOption(i, name)
	if opt == nil || opt.Type != discordgo.ApplicationCommandOptionString {
		return ""
	}
	return opt.StringValue()
}

// GetIntOption retrieves an integer option value by name, def when it was not given
func GetIntOption(i *discordgo.InteractionCreate, name string, def int64) int64 {
	opt := GetCommandOption(i, name)
	if opt == nil || opt.Type != discordgo.ApplicationCommandOptionInteger {
		return def
	}
	return opt.IntValue()
}

// GetFocusedOption returns the option an autocomplete interaction is asking about
func GetFocusedOption(i *discordgo.InteractionCreate) *discordgo.ApplicationCommandInteractionDataOption {
	options := i.ApplicationCommandData().Options
	for len(options) > 0 {
		for _, opt := range options {
			if opt.Focused {
				return opt
			}
		}
		if len(options[0].Options) > 0 {
			options = options[0].Options
		} else {
			break
		}
	}
	return nil
}
