package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game registry commands",
	}

	cmd.AddCommand(newGameListCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameCreateCmd())
	cmd.AddCommand(newGameUpdateCmd())
	cmd.AddCommand(newGameDeleteCmd())
	cmd.AddCommand(newGameFilterCmd())

	return cmd
}

func newGameListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all games",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Game

			if err := gameClient.Get("/api/v1/game", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a game by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game

			if err := gameClient.Get("/api/v1/game/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameCreateCmd() *cobra.Command {
	var name, playerName string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a game and register a player against it",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"name":       name,
				"playerName": playerName,
			}
			var result Game

			if err := gameClient.Post("/api/v1/game", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Game name (required)")
	cmd.Flags().StringVar(&playerName, "player", "", "Player name to register (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("player")

	return cmd
}

func newGameUpdateCmd() *cobra.Command {
	var name, status string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Overwrite a game's name and status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"name":   name,
				"status": status,
			}
			var result Game

			if err := gameClient.Put("/api/v1/game/"+args[0], req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Game name (required)")
	cmd.Flags().StringVar(&status, "status", "", "Game status (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("status")

	return cmd
}

func newGameDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a game by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := gameClient.Delete("/api/v1/game/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Game %s deleted", args[0]))
			return nil
		},
	}
}

func newGameFilterCmd() *cobra.Command {
	var gameName, status, playerName string

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Filter games by name, status and player name",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := url.Values{}
			params.Set("gameName", gameName)
			params.Set("status", status)
			params.Set("playerName", playerName)

			var result []Game

			if err := gameClient.Get("/api/v1/game/filter?"+params.Encode(), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&gameName, "name", "", "Game name filter (blank for none)")
	cmd.Flags().StringVar(&status, "status", "", "Status filter (blank for none)")
	cmd.Flags().StringVar(&playerName, "player", "", "Player name filter (blank for none)")

	return cmd
}
