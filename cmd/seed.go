package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osrh-labs/rideseed/internal/config"
	"github.com/osrh-labs/rideseed/internal/database"
	"github.com/osrh-labs/rideseed/internal/seeder"
)

var (
	seedRandomSeed int64
	seedRides      int
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with the demo dataset",
	Long: `Run the full seeding pipeline: catalog tables, compatibility matrix,
actors, drivers and vehicles with their documents, credit cards, zones and
bridges, and a sample ride history.

Everything runs inside one transaction. Catalog rows are idempotent —
re-running the seed never duplicates a ride, service, or vehicle type —
while actors and rides are generated fresh each run.`,
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

		if seedRandomSeed != 0 {
			cfg.Seed.RandomSeed = seedRandomSeed
		}
		if seedRides >= 0 {
			cfg.Seed.Rides = seedRides
		}

		return seeder.NewSeeder(adapter, cfg.Seed).Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().Int64Var(&seedRandomSeed, "random-seed", 0, "Override the generator seed")
	seedCmd.Flags().IntVar(&seedRides, "rides", -1, "Override the number of rides to create")
}
