package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osrh-labs/rideseed/internal/config"
	"github.com/osrh-labs/rideseed/internal/console"
)

var consolePort int

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Start the read-only SQL console",
	Long: `Serve a small web form that runs SELECT statements against the
database and renders the result as a table.

Anything other than a SELECT is rejected before it reaches the database,
and statements without a row-limit clause are capped at 100 rows.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		if consolePort != 0 {
			cfg.Console.Port = consolePort
		}

		server, err := console.NewServer(cfg)
		if err != nil {
			return err
		}
		defer server.Close()

		return server.Start()
	},
}

func init() {
	rootCmd.AddCommand(consoleCmd)
	consoleCmd.Flags().IntVarP(&consolePort, "port", "p", 0, "Port to listen on")
}
