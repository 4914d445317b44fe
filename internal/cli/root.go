package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg          *Config
	gameClient   *Client
	playerClient *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "gamectl",
		Short: "CLI tool for the game and player registry APIs",
		Long: `gamectl is a CLI tool for interacting with the game and player
registry JSON APIs.

It talks to both services: game CRUD and filtering against the game
service, player management against the player service.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			gameClient = NewClient(cfg.GameServerURL)
			playerClient = NewClient(cfg.PlayerServerURL)
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.GameServerURL, "game-server", cfg.GameServerURL, "Game service URL (env: GAMECTL_GAME_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.PlayerServerURL, "player-server", cfg.PlayerServerURL, "Player service URL (env: GAMECTL_PLAYER_SERVER)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newGameCmd())
	rootCmd.AddCommand(newPlayerCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
