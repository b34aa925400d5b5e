package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/osrh-labs/rideseed/internal/config"
	"github.com/osrh-labs/rideseed/internal/database"
	"github.com/osrh-labs/rideseed/internal/schema"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Show row counts for every table",
	Long:  `Print the row count of each table in dependency order — a quick sanity check after a seed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		dbURL, err := cfg.GetDatabaseURL()
		if err != nil {
			return err
		}

		ctx := context.Background()
		adapter, err := database.Open(ctx, cfg.Database.Provider, dbURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer adapter.Close()

		var total int64
		for _, table := range schema.Tables {
			result, err := adapter.Query(ctx, fmt.Sprintf("SELECT COUNT(*) AS n FROM %s", table))
			if err != nil {
				color.Yellow("  ⚠️  %-28s %v", table, err)
				continue
			}
			count := rowCount(result)
			total += count
			fmt.Printf("  %-28s %d\n", table, count)
		}

		color.Green("✅ %d rows total", total)
		return nil
	},
}

func rowCount(result *database.QueryResult) int64 {
	if len(result.Rows) == 0 {
		return 0
	}
	switch v := result.Rows[0]["n"].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case string:
		var n int64
		fmt.Sscanf(v, "%d", &n)
		return n
	default:
		return 0
	}
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
