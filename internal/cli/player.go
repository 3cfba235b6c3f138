package cli

import (
	"github.com/spf13/cobra"
)

func newPlayerDocumentCmd(use, short, path string, cfg *Config, client func() *Client) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <steam-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client().GetPlayerDocument(path, args[0])
			if err != nil {
				return err
			}

			out := NewOutput(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.Output)
			if cfg.Verbose {
				out.PrintMeta(resp)
			}
			return out.PrintDocument(resp.Body)
		},
	}
}
