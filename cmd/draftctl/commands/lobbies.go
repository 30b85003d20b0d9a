package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	apperr "github.com/KirkDiggler/civ-draft-bot/internal/errors"
	"github.com/KirkDiggler/civ-draft-bot/internal/printer"
	"github.com/KirkDiggler/civ-draft-bot/internal/repositories/lobbies"
)

var lobbyTTL time.Duration

var lobbiesCmd = &cobra.Command{
	Use:   "lobbies",
	Short: "List the lobbies stored in Redis",
	Args:  cobra.NoArgs,
	RunE:  runLobbies,
}

var lobbyCmd = &cobra.Command{
	Use:   "lobby SCOPE",
	Short: "Show one stored lobby: limits, players, pool, bans and picks",
	Args:  cobra.ExactArgs(1),
	RunE:  runLobby,
}

func init() {
	for _, cmd := range []*cobra.Command{lobbiesCmd, lobbyCmd} {
		cmd.Flags().DurationVar(&lobbyTTL, "ttl", 7*24*time.Hour, "TTL applied when a read refreshes a lobby")
		rootCmd.AddCommand(cmd)
	}
}

func openRepository(cmd *cobra.Command) (lobbies.Repository, func(), error) {
	if redisURL == "" {
		return nil, nil, printer.Error(cmd.ErrOrStderr(), "No Redis configured",
			"The bot keeps lobbies in memory unless REDIS_URL is set.",
			[]string{"Pass --redis-url redis://host:6379/0", "Export REDIS_URL"})
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, nil, printer.Error(cmd.ErrOrStderr(), "Invalid Redis URL", err.Error(), nil)
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, printer.Error(cmd.ErrOrStderr(), "Failed to connect to Redis", err.Error(), nil)
	}

	return lobbies.NewRedis(client, lobbyTTL), func() { _ = client.Close() }, nil
}

func runLobbies(cmd *cobra.Command, args []string) error {
	repo, closeFn, err := openRepository(cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	all, err := repo.List(cmd.Context())
	if err != nil {
		return printer.Error(cmd.ErrOrStderr(), "Failed to list lobbies", err.Error(), nil)
	}

	out := cmd.OutOrStdout()
	if len(all) == 0 {
		printer.Status(out, "WARNING: No lobbies stored.")
		return nil
	}

	printer.Heading(out, "%-24s %-38s %-9s %s", "SCOPE", "LOBBY", "PLAYERS", "POOL")
	for _, l := range all {
		fmt.Fprintf(out, "%-24s %-38s %-9s %d\n", l.ScopeID(), l.ID(),
			fmt.Sprintf("%d/%d", len(l.ParticipantIDs()), l.Config().Capacity),
			len(l.AvailableItems()))
	}
	printer.Success(out, "Found %d lobbies", len(all))
	return nil
}

func runLobby(cmd *cobra.Command, args []string) error {
	repo, closeFn, err := openRepository(cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	l, err := repo.Get(cmd.Context(), args[0])
	if apperr.IsNotFound(err) {
		return printer.Error(cmd.ErrOrStderr(), fmt.Sprintf("No lobby for scope '%s'", args[0]),
			"The lobby may have expired or was never created.",
			[]string{"Run 'draftctl lobbies' to see stored scopes"})
	}
	if err != nil {
		return printer.Error(cmd.ErrOrStderr(), "Failed to load lobby", err.Error(), nil)
	}

	out := cmd.OutOrStdout()
	printer.Heading(out, "Lobby %s (scope %s)", l.ID(), l.ScopeID())
	for _, report := range []string{
		l.InfoReport(),
		l.PlayersReport(),
		l.PoolReport(),
		l.BansReport(),
		l.PicksReport(),
	} {
		printer.Status(out, report)
	}
	return nil
}
