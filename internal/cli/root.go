package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg := DefaultConfig()
	var client *Client

	rootCmd := &cobra.Command{
		Use:   "playerdna",
		Short: "CLI tool for the Player DNA API",
		Long: `playerdna is a CLI tool for querying the Player DNA JSON API.

It fetches player stats, achievements and the PCSR profile for a Steam ID,
and reports whether the server answered with live Steam data or fixtures.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Output != "text" && cfg.Output != "json" {
				return fmt.Errorf("invalid output format %q: must be text or json", cfg.Output)
			}
			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: PLAYERDNA_SERVER)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Print data source and request id")

	getClient := func() *Client { return client }

	// Add subcommands
	rootCmd.AddCommand(newPlayerDocumentCmd("stats", "Fetch player stats", "/api/player-stats", cfg, getClient))
	rootCmd.AddCommand(newPlayerDocumentCmd("achievements", "Fetch achievements", "/api/achievements", cfg, getClient))
	rootCmd.AddCommand(newPlayerDocumentCmd("profile", "Fetch the PCSR profile", "/api/pcsr-profile", cfg, getClient))
	rootCmd.AddCommand(newHealthCmd(cfg, getClient))

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}
