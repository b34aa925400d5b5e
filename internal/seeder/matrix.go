package seeder

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/osrh-labs/rideseed/internal/schema"
)

// seedCompatibilityMatrix inserts the junction rows linking service types to
// ride types and the allowed-profile rows for each (service, ride, vehicle)
// triple. Duplicate tuples are skipped; a tuple naming an unknown key fails
// the run.
func (s *Seeder) seedCompatibilityMatrix(ctx context.Context) error {
	for _, combo := range comboSpecs {
		svcID, rtID, vtID, err := s.resolveCombo(combo)
		if err != nil {
			return err
		}

		if err := s.ensureJunction(ctx, svcID, rtID); err != nil {
			return err
		}
		if err := s.ensureProfile(ctx, svcID, rtID, vtID, combo.ProfileName); err != nil {
			return err
		}
	}
	return nil
}

// resolveCombo maps a combo's natural keys to lookup-table identifiers.
func (s *Seeder) resolveCombo(combo ComboSpec) (svcID, rtID, vtID string, err error) {
	svcID, ok := s.serviceTypeIDs[combo.Service]
	if !ok {
		return "", "", "", fmt.Errorf("unresolved service type key %q", combo.Service)
	}
	rtID, ok = s.rideTypeIDs[combo.Ride]
	if !ok {
		return "", "", "", fmt.Errorf("unresolved ride type key %q", combo.Ride)
	}
	vtID, ok = s.vehicleTypeIDs[combo.Vehicle]
	if !ok {
		return "", "", "", fmt.Errorf("unresolved vehicle type key %q", combo.Vehicle)
	}
	return svcID, rtID, vtID, nil
}

func (s *Seeder) ensureJunction(ctx context.Context, svcID, rtID string) error {
	existing := s.qb.Select("service_type_id").From(schema.TableServiceTypeRideTypes).
		Where(squirrel.Eq{"service_type_id": svcID, "ride_type_id": rtID}).Limit(1)

	_, err := s.queryID(ctx, existing)
	if errors.Is(err, sql.ErrNoRows) {
		return s.insert(ctx, schema.TableServiceTypeRideTypes,
			[]string{"service_type_id", "ride_type_id"}, svcID, rtID)
	}
	if err != nil {
		return fmt.Errorf("failed to check junction row: %w", err)
	}
	return nil
}

func (s *Seeder) ensureProfile(ctx context.Context, svcID, rtID, vtID, profileName string) error {
	existing := s.qb.Select("id").From(schema.TableRideProfiles).
		Where(squirrel.Eq{"service_type_id": svcID, "ride_type_id": rtID, "vehicle_type_id": vtID}).Limit(1)

	id, err := s.queryID(ctx, existing)
	if errors.Is(err, sql.ErrNoRows) {
		id = s.gen.UUID()
		if err := s.insert(ctx, schema.TableRideProfiles,
			[]string{"id", "service_type_id", "ride_type_id", "vehicle_type_id", "profile_name"},
			id, svcID, rtID, vtID, profileName); err != nil {
			return err
		}
	} else if err != nil {
		return fmt.Errorf("failed to check profile row: %w", err)
	}

	s.profileIDs = append(s.profileIDs, id)
	return nil
}

// compatibleCombos returns the (service, ride) pairs a vehicle type may
// serve, per the declared matrix.
func compatibleCombos(vehicleType string) []ComboSpec {
	var combos []ComboSpec
	for _, combo := range comboSpecs {
		if combo.Vehicle == vehicleType {
			combos = append(combos, combo)
		}
	}
	return combos
}
