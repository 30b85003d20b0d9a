package commands

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/civ-draft-bot/internal/printer"
	"github.com/KirkDiggler/civ-draft-bot/internal/services/reference"
)

var referenceService = reference.NewService(&reference.ServiceConfig{})

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "Show every tier and its civilizations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printer.Status(cmd.OutOrStdout(), referenceService.Tiers())
		return nil
	},
}

var tierCmd = &cobra.Command{
	Use:   "tier CIVILIZATION",
	Short: "Show the tier of a civilization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		printer.Status(cmd.OutOrStdout(), referenceService.TierOf(args[0]))
		return nil
	},
}

var civsCmd = &cobra.Command{
	Use:   "civs TIER",
	Short: "Show the civilizations of a tier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		printer.Status(cmd.OutOrStdout(), referenceService.ItemsOf(args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tiersCmd, tierCmd, civsCmd)
}
