// Package seeder populates a ride-hailing database with a consistent,
// dependency-ordered demo dataset. Catalog rows are upserted by natural key
// and are idempotent across runs; generated actors and rides are new every
// run. Everything happens inside one transaction — a failed insert anywhere
// rolls back the whole seed.
package seeder

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/fatih/color"

	"github.com/osrh-labs/rideseed/internal/config"
	"github.com/osrh-labs/rideseed/internal/database"
)

type Seeder struct {
	adapter *database.Adapter
	cfg     config.Seed
	gen     *DataGenerator
	qb      squirrel.StatementBuilderType
	tx      *sql.Tx
	now     time.Time

	rideTypeIDs    map[string]string
	serviceTypeIDs map[string]string
	vehicleTypeIDs map[string]string
	profileIDs     []string
	adminIDs       []string
	operatorIDs    []string
	inspectorIDs   []string
	companyIDs     []string
	companyParties []string
	passengers     []person
	drivers        []driverRecord
	zoneIDs        []string
	bridgeIDs      []string
}

func NewSeeder(adapter *database.Adapter, cfg config.Seed) *Seeder {
	return &Seeder{
		adapter: adapter,
		cfg:     cfg,
		gen:     NewDataGenerator(cfg.RandomSeed),
		qb:      adapter.Dialect().Builder(),
	}
}

func (s *Seeder) stages() *StageGraph {
	graph := NewStageGraph()

	graph.Add(&Stage{Name: "ride_types", Run: s.seedRideTypes})
	graph.Add(&Stage{Name: "service_types", Run: s.seedServiceTypes})
	graph.Add(&Stage{Name: "vehicle_types", Run: s.seedVehicleTypes})
	graph.Add(&Stage{
		Name: "compatibility_matrix",
		Deps: []string{"ride_types", "service_types", "vehicle_types"},
		Run:  s.seedCompatibilityMatrix,
	})
	graph.Add(&Stage{Name: "admins", Run: s.seedAdmins})
	graph.Add(&Stage{Name: "operators", Deps: []string{"admins"}, Run: s.seedOperators})
	graph.Add(&Stage{Name: "inspectors", Run: s.seedInspectors})
	graph.Add(&Stage{Name: "companies", Run: s.seedCompanies})
	graph.Add(&Stage{Name: "passengers", Run: s.seedPassengers})
	graph.Add(&Stage{
		Name: "drivers",
		Deps: []string{"companies", "inspectors", "operators", "compatibility_matrix"},
		Run:  s.seedDrivers,
	})
	graph.Add(&Stage{
		Name: "credit_cards",
		Deps: []string{"passengers", "drivers", "companies"},
		Run:  s.seedCreditCards,
	})
	graph.Add(&Stage{Name: "zones", Run: s.seedZonesAndBridges})
	graph.Add(&Stage{
		Name: "rides",
		Deps: []string{"passengers", "drivers", "zones", "compatibility_matrix"},
		Run:  s.seedRides,
	})

	return graph
}

// Run executes the full seed inside one transaction and reports the elapsed
// wall time. Any stage error rolls everything back; nothing partial persists.
func (s *Seeder) Run(ctx context.Context) error {
	start := time.Now()
	s.now = start.UTC()

	order, err := s.stages().Order()
	if err != nil {
		return fmt.Errorf("failed to order seed stages: %w", err)
	}

	tx, err := s.adapter.BeginTx(ctx)
	if err != nil {
		return err
	}
	s.tx = tx

	color.Cyan("🌱 Seeding %d stages...", len(order))

	for _, stage := range order {
		color.Cyan("  📝 %s", stage.Name)
		if err := stage.Run(ctx); err != nil {
			tx.Rollback()
			return fmt.Errorf("stage %s failed: %w", stage.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	color.Green("✅ Seed completed in %s", time.Since(start).Round(time.Millisecond))
	return nil
}

// insert builds and executes a single parameterized INSERT on the run's
// transaction.
func (s *Seeder) insert(ctx context.Context, table string, columns []string, values ...interface{}) error {
	query, args, err := s.qb.Insert(table).Columns(columns...).Values(values...).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert for %s: %w", table, err)
	}
	if _, err := s.tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return nil
}

// queryID runs a single-column select and scans the identifier. Returns
// sql.ErrNoRows untouched so callers can distinguish absent from broken.
func (s *Seeder) queryID(ctx context.Context, builder squirrel.SelectBuilder) (string, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build query: %w", err)
	}
	var id string
	if err := s.tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
