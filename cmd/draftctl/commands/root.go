package commands

import (
	"os"

	"github.com/spf13/cobra"
)

var redisURL string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "draftctl",
	Short: "draftctl - Civilization V draft toolkit",
	Long: `draftctl looks up the civilization tier list, runs local draft
simulations, and inspects lobbies the bot keeps in Redis.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	FParseErrWhitelist: cobra.FParseErrWhitelist{},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	// Errors are printed through the printer package
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&redisURL, "redis-url", os.Getenv("REDIS_URL"),
		"Redis URL of the bot's lobby store (defaults to $REDIS_URL)")
}
