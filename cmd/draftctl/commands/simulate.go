package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/civ-draft-bot/internal/dice"
	"github.com/KirkDiggler/civ-draft-bot/internal/printer"
	"github.com/KirkDiggler/civ-draft-bot/internal/repositories/lobbies"
	"github.com/KirkDiggler/civ-draft-bot/internal/services/lobby"
)

const simulateScope = "simulate"

var (
	simulatePlayers    int
	simulateBans       int
	simulatePicks      int
	simulateRandomBans bool
	simulateRedraft    bool

	// newRoller is swapped in tests
	newRoller = dice.NewRandomRoller
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [PLAYER...]",
	Short: "Run a draft locally and print every step",
	Long: `Create a lobby in memory, register the players, optionally ban random
civilizations for each of them, and draft.

Players default to player-1..player-N when no names are given.

Examples:
  draftctl simulate --players 6 --picks 3
  draftctl simulate --random-bans alice bob carol`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVarP(&simulatePlayers, "players", "p", 4, "Lobby capacity (ignored when players are named)")
	simulateCmd.Flags().IntVarP(&simulateBans, "bans", "b", 2, "Bans per player")
	simulateCmd.Flags().IntVar(&simulatePicks, "picks", 3, "Picks per player")
	simulateCmd.Flags().BoolVar(&simulateRandomBans, "random-bans", false, "Use every player's bans on random civilizations")
	simulateCmd.Flags().BoolVar(&simulateRedraft, "redraft", false, "Redraft once after the first draft")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	out := cmd.OutOrStdout()

	players := args
	if len(players) == 0 {
		for i := 1; i <= simulatePlayers; i++ {
			players = append(players, fmt.Sprintf("player-%d", i))
		}
	}

	roller := newRoller()
	svc := lobby.NewService(&lobby.ServiceConfig{
		Repository: lobbies.NewInMemoryRepository(nil),
		Roller:     roller,
	})

	created, err := svc.CreateLobby(ctx, &lobby.CreateLobbyInput{
		ScopeID:   simulateScope,
		Capacity:  len(players),
		BanQuota:  simulateBans,
		PickQuota: simulatePicks,
	})
	if err != nil {
		return printer.Error(cmd.ErrOrStderr(), "Invalid lobby settings", err.Error(),
			[]string{"Use at least one player, one ban and one pick"})
	}
	printer.Status(out, created.Message)

	for _, player := range players {
		msg, err := svc.Register(ctx, simulateScope, player)
		if err != nil {
			return err
		}
		printer.Status(out, msg)
	}

	if simulateRandomBans {
		printer.Heading(out, "Bans")
		for _, player := range players {
			items := make([]string, simulateBans)
			for i := range items {
				items[i] = lobby.RandomOption
			}
			msg, err := svc.Ban(ctx, simulateScope, player, items...)
			if err != nil {
				return err
			}
			printer.Status(out, msg)
		}
	}

	bans, err := svc.Bans(ctx, simulateScope)
	if err != nil {
		return err
	}
	printer.Status(out, bans)

	printer.Heading(out, "Draft")
	result, err := svc.Draft(ctx, simulateScope)
	if err != nil {
		return err
	}
	if simulateRedraft && !strings.HasPrefix(result, "ERROR:") {
		printer.Status(out, result)
		printer.Heading(out, "Redraft")
		result, err = svc.Redraft(ctx, simulateScope)
		if err != nil {
			return err
		}
	}
	if strings.HasPrefix(result, "ERROR:") {
		return printer.Error(cmd.ErrOrStderr(), "Draft failed", result,
			[]string{"Lower --picks", "Simulate fewer players"})
	}
	printer.Status(out, result)
	printer.Success(out, "Drafted %d players", len(players))
	return nil
}
