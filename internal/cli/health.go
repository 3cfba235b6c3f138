package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func newHealthCmd(cfg *Config, client func() *Client) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client().Get("/api/health", nil)
			if err != nil {
				return err
			}

			var result HealthResult
			if err := json.Unmarshal(resp.Body, &result); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			out := NewOutput(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.Output)
			if cfg.Output == "json" {
				return out.PrintDocument(resp.Body)
			}
			out.PrintMessage("Status: " + result.Status)
			return nil
		},
	}
}
