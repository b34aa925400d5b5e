package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/osrh-labs/rideseed/internal/config"
	"github.com/osrh-labs/rideseed/internal/database"
	"github.com/osrh-labs/rideseed/internal/schema"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Apply the ride-hailing schema to the database",
	Long: `Create the platform's tables in dependency order.

By default the DDL shipped with the binary is applied. If the configured
schema directory exists, its .sql files are applied instead, sorted by
name.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		statements, err := loadStatements(cfg)
		if err != nil {
			return err
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

		for _, statement := range statements {
			if err := adapter.Exec(ctx, statement); err != nil {
				return fmt.Errorf("failed to apply schema statement: %w", err)
			}
		}

		color.Green("✅ Applied %d schema statements", len(statements))
		return nil
	},
}

func loadStatements(cfg *config.Config) ([]string, error) {
	if _, err := os.Stat(cfg.SchemaDir); os.IsNotExist(err) {
		return schema.Statements()
	}

	files, err := cfg.GetSchemaFiles()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return schema.Statements()
	}

	var statements []string
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read schema file %s: %w", file, err)
		}
		statements = append(statements, schema.SplitStatements(string(content))...)
	}
	return statements, nil
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
