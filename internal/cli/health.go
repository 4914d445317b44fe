package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check both services' health",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			var gameHealth HealthResult
			if err := gameClient.Get("/api/v1/health", &gameHealth); err != nil {
				return fmt.Errorf("game service: %w", err)
			}
			out.PrintMessage("game service: " + gameHealth.Status)

			var playerHealth HealthResult
			if err := playerClient.Get("/api/v1/health", &playerHealth); err != nil {
				return fmt.Errorf("player service: %w", err)
			}
			out.PrintMessage("player service: " + playerHealth.Status)

			return nil
		},
	}
}
