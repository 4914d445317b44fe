package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player registry commands",
	}

	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerGetCmd())
	cmd.AddCommand(newPlayerCreateCmd())
	cmd.AddCommand(newPlayerDeleteCmd())
	cmd.AddCommand(newPlayerGameIDsCmd())

	return cmd
}

func newPlayerListCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List players, all or by name",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/player/all"
			if name != "" {
				path = "/api/v1/player?name=" + url.QueryEscape(name)
			}

			var result []Player

			if err := playerClient.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Filter by player name")

	return cmd
}

func newPlayerGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a player by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player

			if err := playerClient.Get("/api/v1/player/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerCreateCmd() *cobra.Command {
	var name string
	var gameID int64

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a player, optionally linked to a game",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{"name": name}
			if gameID != 0 {
				req["gameId"] = gameID
			}

			var result Player

			if err := playerClient.Post("/api/v1/player", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name (required)")
	cmd.Flags().Int64Var(&gameID, "game", 0, "Claimed game id (0 for none)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newPlayerDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a player by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := playerClient.Delete("/api/v1/player/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Player %s deleted", args[0]))
			return nil
		},
	}
}

func newPlayerGameIDsCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "game-ids",
		Short: "List the game ids for every player with a name",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []int64

			path := "/api/v1/player/gameIds?name=" + url.QueryEscape(name)
			if err := playerClient.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
