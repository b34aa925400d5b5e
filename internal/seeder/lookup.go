package seeder

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/osrh-labs/rideseed/internal/schema"
)

// upsertReference ensures one row per item exists in table, keyed by the
// name column, and returns the key→identifier map. Calling it again with the
// same items creates nothing and returns the same identifiers.
func (s *Seeder) upsertReference(ctx context.Context, table string, items []ReferenceItem, columns func(id string, item ReferenceItem) ([]string, []interface{})) (map[string]string, error) {
	ids := make(map[string]string, len(items))

	for _, item := range items {
		existing := s.qb.Select("id").From(table).Where(squirrel.Eq{"name": item.Key}).Limit(1)

		id, err := s.queryID(ctx, existing)
		if errors.Is(err, sql.ErrNoRows) {
			cols, vals := columns(s.gen.UUID(), item)
			if err := s.insert(ctx, table, cols, vals...); err != nil {
				return nil, err
			}
			// re-read so the map always reflects what the database holds
			id, err = s.queryID(ctx, existing)
			if err != nil {
				return nil, fmt.Errorf("failed to read back %s row %q: %w", table, item.Key, err)
			}
		} else if err != nil {
			return nil, fmt.Errorf("failed to look up %s row %q: %w", table, item.Key, err)
		}

		ids[item.Key] = id
	}

	return ids, nil
}

func (s *Seeder) seedRideTypes(ctx context.Context) error {
	ids, err := s.upsertReference(ctx, schema.TableRideTypes, rideTypes,
		func(id string, item ReferenceItem) ([]string, []interface{}) {
			return []string{"id", "name", "description"},
				[]interface{}{id, item.Key, item.Description}
		})
	if err != nil {
		return err
	}
	s.rideTypeIDs = ids
	return nil
}

func (s *Seeder) seedServiceTypes(ctx context.Context) error {
	ids, err := s.upsertReference(ctx, schema.TableServiceTypes, serviceTypes,
		func(id string, item ReferenceItem) ([]string, []interface{}) {
			return []string{"id", "name", "description", "base_fare", "per_km", "per_min", "valid_from", "active"},
				[]interface{}{id, item.Key, item.Description, 3.50, 0.80, 0.20, s.now, 1}
		})
	if err != nil {
		return err
	}
	s.serviceTypeIDs = ids
	return nil
}

func (s *Seeder) seedVehicleTypes(ctx context.Context) error {
	ids, err := s.upsertReference(ctx, schema.TableVehicleTypes, vehicleTypes,
		func(id string, item ReferenceItem) ([]string, []interface{}) {
			return []string{"id", "name"}, []interface{}{id, item.Key}
		})
	if err != nil {
		return err
	}
	s.vehicleTypeIDs = ids
	return nil
}
