package seeder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/osrh-labs/rideseed/internal/schema"
)

// createPerson writes the Party row first, then the user row referencing it.
// Every other person-owned row hangs off these two identifiers.
func (s *Seeder) createPerson(ctx context.Context, email string, minAge, maxAge int) (person, error) {
	p := person{PartyID: s.gen.UUID(), UserID: s.gen.UUID()}

	if err := s.insert(ctx, schema.TableParties,
		[]string{"id", "party_type", "created_at"},
		p.PartyID, "U", s.now); err != nil {
		return person{}, err
	}

	if err := s.insert(ctx, schema.TableUsers,
		[]string{"id", "name", "dob", "gender", "email", "phone", "address", "username", "password_hash", "party_id"},
		p.UserID,
		s.gen.Name(),
		s.gen.DateOfBirth(s.now, minAge, maxAge),
		s.gen.Gender(),
		email,
		s.gen.Phone(),
		s.gen.Address(),
		strings.Split(email, "@")[0],
		"user-hash",
		p.PartyID); err != nil {
		return person{}, err
	}

	return p, nil
}

func (s *Seeder) createPreferences(ctx context.Context, userID string) error {
	return s.insert(ctx, schema.TableUserPreferences,
		[]string{"id", "user_id", "notifications_enabled", "language", "location_enabled", "timezone"},
		s.gen.UUID(), userID, s.gen.Intn(2), "el", s.gen.Intn(2), "Asia/Nicosia")
}

func (s *Seeder) seedPassengers(ctx context.Context) error {
	for i := 0; i < s.cfg.Passengers; i++ {
		p, err := s.createPerson(ctx, fmt.Sprintf("passenger%d@example.com", i+1), 18, 75)
		if err != nil {
			return err
		}
		if err := s.insert(ctx, schema.TablePassengers, []string{"user_id"}, p.UserID); err != nil {
			return err
		}
		if err := s.createPreferences(ctx, p.UserID); err != nil {
			return err
		}
		s.passengers = append(s.passengers, p)
	}
	return nil
}

// personDocument writes one document whose validity window straddles the
// seed timestamp: issued in the past, expiring in the future.
func (s *Seeder) personDocument(ctx context.Context, userID, docType string, issuedAgo, expiresIn time.Duration) error {
	return s.insert(ctx, schema.TablePersonDocuments,
		[]string{"id", "user_id", "doc_type", "issue_date", "uploaded_at", "expiry_date", "file_url"},
		s.gen.UUID(), userID, docType,
		s.now.Add(-issuedAgo), s.now, s.now.Add(expiresIn),
		fmt.Sprintf("https://docs.example.com/%s.pdf", strings.ToLower(docType)))
}

func (s *Seeder) seedDrivers(ctx context.Context) error {
	const day = 24 * time.Hour

	for i := 0; i < s.cfg.Drivers; i++ {
		p, err := s.createPerson(ctx, fmt.Sprintf("driver%d@example.com", i+1), 22, 70)
		if err != nil {
			return err
		}
		if err := s.insert(ctx, schema.TableDrivers,
			[]string{"user_id", "company_id"},
			p.UserID, pick(s.gen, s.companyIDs)); err != nil {
			return err
		}
		if err := s.createPreferences(ctx, p.UserID); err != nil {
			return err
		}

		if err := s.personDocument(ctx, p.UserID, "DriverLicense", 5*365*day, 3*365*day); err != nil {
			return err
		}
		if err := s.personDocument(ctx, p.UserID, "ID", 8*365*day, 2*365*day); err != nil {
			return err
		}
		if err := s.personDocument(ctx, p.UserID, "ProofOfAddress", 30*day, 90*day); err != nil {
			return err
		}

		record := driverRecord{PartyID: p.PartyID, UserID: p.UserID}
		for v := 0; v < s.cfg.VehiclesPerDriver; v++ {
			vehicleID, err := s.createVehicle(ctx, p)
			if err != nil {
				return err
			}
			record.VehicleIDs = append(record.VehicleIDs, vehicleID)
		}
		s.drivers = append(s.drivers, record)
	}
	return nil
}

// createVehicle writes the vehicle and its full paperwork: three documents,
// an inspection, today's availability window, a live location snapshot, and
// a service enrollment when the vehicle type has a compatible combo.
func (s *Seeder) createVehicle(ctx context.Context, owner person) (string, error) {
	const day = 24 * time.Hour

	vehicleType := pick(s.gen, vehicleTypes).Key
	vehicleID := s.gen.UUID()

	if err := s.insert(ctx, schema.TableVehicles,
		[]string{"id", "vehicle_type_id", "seats", "cargo_volume", "cargo_weight", "status", "owner_party_id"},
		vehicleID, s.vehicleTypeIDs[vehicleType],
		pick(s.gen, []int{4, 5, 7}), 450.0, 600.0, "Active", owner.PartyID); err != nil {
		return "", err
	}

	docs := []struct {
		docType   string
		issuedAgo time.Duration
		expiresIn time.Duration
	}{
		{"MOT", 180 * day, 185 * day},
		{"Ownership", 2 * 365 * day, 3 * 365 * day},
		{"ServiceReport", 90 * day, 275 * day},
	}
	for _, doc := range docs {
		if err := s.insert(ctx, schema.TableVehicleDocuments,
			[]string{"id", "vehicle_id", "doc_type", "issue_date", "uploaded_at", "expiry_date", "file_url", "image_url"},
			s.gen.UUID(), vehicleID, doc.docType,
			s.now.Add(-doc.issuedAgo), s.now, s.now.Add(doc.expiresIn),
			fmt.Sprintf("https://docs.example.com/%s.pdf", strings.ToLower(doc.docType)),
			fmt.Sprintf("https://docs.example.com/%s.png", strings.ToLower(doc.docType))); err != nil {
			return "", err
		}
	}

	if err := s.insert(ctx, schema.TableVehicleInspections,
		[]string{"id", "vehicle_id", "inspector_id", "checked_at", "comments"},
		s.gen.UUID(), vehicleID, pick(s.gen, s.inspectorIDs), s.now.Add(-20*day), "OK"); err != nil {
		return "", err
	}

	if err := s.insert(ctx, schema.TableVehicleAvailability,
		[]string{"vehicle_id", "availability_date", "starts_at", "ends_at", "is_recurring", "updated_at"},
		vehicleID, s.now.Format("2006-01-02"), "08:00", "18:00", s.gen.Intn(2), s.now); err != nil {
		return "", err
	}

	if err := s.insert(ctx, schema.TableVehicleLocations,
		[]string{"vehicle_id", "lat", "lng", "updated_at"},
		vehicleID, 34.69, 32.96, s.now); err != nil {
		return "", err
	}

	if combos := compatibleCombos(vehicleType); len(combos) > 0 {
		combo := pick(s.gen, combos)
		if err := s.insert(ctx, schema.TableServiceEnrollments,
			[]string{"id", "status", "vehicle_id", "service_type_id", "ride_type_id", "approved_at", "approved_by", "user_id"},
			s.gen.UUID(), "Approved", vehicleID,
			s.serviceTypeIDs[combo.Service], s.rideTypeIDs[combo.Ride],
			s.now, pick(s.gen, s.operatorIDs), owner.UserID); err != nil {
			return "", err
		}
	}

	return vehicleID, nil
}

// seedCreditCards gives every owning party a fixed number of cards; the
// first card is always the active default.
func (s *Seeder) seedCreditCards(ctx context.Context) error {
	var owners []string
	for _, p := range s.passengers {
		owners = append(owners, p.PartyID)
	}
	for _, d := range s.drivers {
		owners = append(owners, d.PartyID)
	}
	owners = append(owners, s.companyParties...)

	for _, owner := range owners {
		for i := 0; i < s.cfg.CardsPerOwner; i++ {
			isDefault := 0
			isActive := s.gen.Intn(2)
			if i == 0 {
				isDefault, isActive = 1, 1
			}

			token := fmt.Sprintf("tok_%s_%s_%d",
				strings.ReplaceAll(s.gen.UUID(), "-", ""),
				strings.ReplaceAll(owner, "-", "")[:8], i)

			if err := s.insert(ctx, schema.TableCreditCards,
				[]string{"id", "owner_party_id", "last4", "token", "exp_month", "exp_year", "is_default", "is_active", "added_at"},
				s.gen.UUID(), owner,
				fmt.Sprintf("%04d", s.gen.Intn(10000)), token,
				s.gen.IntRange(1, 12), s.now.Year()+s.gen.IntRange(1, 5),
				isDefault, isActive, s.now); err != nil {
				return err
			}
		}
	}
	return nil
}

// seedZonesAndBridges lays out three geofence zones stepping north-east and
// connects consecutive zones with a bridge.
func (s *Seeder) seedZonesAndBridges(ctx context.Context) error {
	for i := 0; i < 3; i++ {
		zoneID := s.gen.UUID()
		minLat := 34.65 + float64(i)*0.02
		minLng := 32.95 + float64(i)*0.02
		if err := s.insert(ctx, schema.TableGeofenceZones,
			[]string{"id", "name", "min_lat", "min_lng", "max_lat", "max_lng"},
			zoneID, fmt.Sprintf("Zone %d", i+1),
			minLat, minLng, minLat+0.02, minLng+0.03); err != nil {
			return err
		}
		s.zoneIDs = append(s.zoneIDs, zoneID)
	}

	for i := 0; i < len(s.zoneIDs)-1; i++ {
		bridgeID := s.gen.UUID()
		if err := s.insert(ctx, schema.TableBridges,
			[]string{"id", "name", "from_zone", "to_zone"},
			bridgeID, fmt.Sprintf("Bridge %d", i+1), s.zoneIDs[i], s.zoneIDs[i+1]); err != nil {
			return err
		}
		s.bridgeIDs = append(s.bridgeIDs, bridgeID)
	}
	return nil
}
