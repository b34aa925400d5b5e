package seeder

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/osrh-labs/rideseed/internal/schema"
)

var offerStatuses = []string{"Accepted", "Sent", "Declined"}

// seedRides builds the ride chain: request → leg → dispatch offer, and for
// accepted offers only, payment → ride → messages → (sometimes) a rating
// back-filled onto the ride. Offers that were merely sent or declined leave
// no downstream rows.
func (s *Seeder) seedRides(ctx context.Context) error {
	if len(s.passengers) == 0 || len(s.drivers) == 0 {
		return fmt.Errorf("rides need at least one passenger and one driver")
	}

	for i := 0; i < s.cfg.Rides; i++ {
		passenger := pick(s.gen, s.passengers)
		driver := pick(s.gen, s.drivers)

		requestID := s.gen.UUID()
		pickupAt := s.now.Add(-time.Duration(s.gen.IntRange(10, 120)) * time.Minute)

		var profileID interface{}
		if len(s.profileIDs) > 0 {
			profileID = pick(s.gen, s.profileIDs)
		}

		if err := s.insert(ctx, schema.TableRideRequests,
			[]string{"id", "passenger_id", "num_people", "pickup_at",
				"pickup_lat", "pickup_lng", "drop_lat", "drop_lng",
				"pickup_country", "pickup_region", "pickup_city", "pickup_district", "pickup_postal_code",
				"drop_country", "drop_region", "drop_city", "drop_district", "drop_postal_code",
				"created_at", "status", "ride_profile_id"},
			requestID, passenger.UserID, s.gen.IntRange(1, 2), pickupAt,
			34.690, 32.960, 34.720, 33.010,
			"Κύπρος", "Λευκωσία", "Λευκωσία", "Κέντρο", "1010",
			"Κύπρος", "Λευκωσία", "Λευκωσία", "Άλλη", "1020",
			s.now, "Pending", profileID); err != nil {
			return err
		}

		legID := s.gen.UUID()
		var viaBridge interface{}
		if len(s.bridgeIDs) > 0 {
			viaBridge = pick(s.gen, s.bridgeIDs)
		}
		if err := s.insert(ctx, schema.TableItineraryLegs,
			[]string{"id", "seq_no", "via_bridge_id", "ride_request_id"},
			legID, 1, viaBridge, requestID); err != nil {
			return err
		}
		if viaBridge != nil {
			if err := s.insert(ctx, schema.TableLegBridgeCrossings,
				[]string{"leg_id", "bridge_id"}, legID, viaBridge); err != nil {
				return err
			}
		}

		offerID := s.gen.UUID()
		vehicleID := pick(s.gen, driver.VehicleIDs)
		status := pick(s.gen, offerStatuses)
		var respondedAt interface{}
		if status == "Accepted" {
			respondedAt = s.now
		}
		if err := s.insert(ctx, schema.TableDispatchOffers,
			[]string{"id", "leg_id", "recipient_party_id", "vehicle_id", "status", "sent_at", "responded_at"},
			offerID, legID, driver.PartyID, vehicleID,
			status, s.now, respondedAt); err != nil {
			return err
		}

		if status != "Accepted" {
			continue
		}

		if err := s.completeRide(ctx, offerID, passenger, driver, vehicleID, pickupAt); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) completeRide(ctx context.Context, offerID string, passenger person, driver driverRecord, vehicleID string, pickupAt time.Time) error {
	gross := round2(s.gen.Float64Range(7, 25))
	fee := round2(gross * 0.10)
	payout := round2(gross - fee)

	paymentID := s.gen.UUID()
	if err := s.insert(ctx, schema.TablePayments,
		[]string{"id", "sender_party_id", "receiver_party_id", "gross_amount", "platform_fee", "driver_payout", "paid_at", "method", "status"},
		paymentID, passenger.PartyID, driver.PartyID,
		gross, fee, payout, s.now, "CreditCard", "Completed"); err != nil {
		return err
	}

	rideID := s.gen.UUID()
	started := pickupAt.Add(time.Duration(s.gen.IntRange(1, 10)) * time.Minute)
	ended := started.Add(time.Duration(s.gen.IntRange(10, 25)) * time.Minute)
	if err := s.insert(ctx, schema.TableRides,
		[]string{"id", "offer_id", "driver_user_id", "passenger_user_id", "vehicle_id", "started_at", "ended_at", "price_final", "status", "rating_id", "payment_id"},
		rideID, offerID, driver.UserID, passenger.UserID, vehicleID,
		started, ended, gross, "Completed", nil, paymentID); err != nil {
		return err
	}

	messages := []struct {
		sender, recipient, body string
		sentAt                  time.Time
	}{
		{driver.UserID, passenger.UserID, "Φτάνω σε 3 λεπτά", s.now.Add(-2 * time.Minute)},
		{passenger.UserID, driver.UserID, "ΟΚ, είμαι στο σημείο", s.now.Add(-time.Minute)},
	}
	for _, m := range messages {
		if err := s.insert(ctx, schema.TableInAppMessages,
			[]string{"id", "sender_user_id", "recipient_user_id", "body", "sent_at", "ride_id"},
			s.gen.UUID(), m.sender, m.recipient, m.body, m.sentAt, rideID); err != nil {
			return err
		}
	}

	if !s.gen.Chance(0.6) {
		return nil
	}

	stars := s.gen.IntRange(2, 3)
	if s.gen.Chance(0.7) {
		stars = s.gen.IntRange(4, 5)
	}
	ratingID := s.gen.UUID()
	if err := s.insert(ctx, schema.TableRatings,
		[]string{"id", "author_user_id", "target_user_id", "stars", "comment", "created_at"},
		ratingID, passenger.UserID, driver.UserID, stars, "Ευχάριστη διαδρομή", s.now); err != nil {
		return err
	}

	// the rating back-reference is the only UPDATE the seeder ever issues
	query, args, err := s.qb.Update(schema.TableRides).
		Set("rating_id", ratingID).
		Where(squirrel.Eq{"id": rideID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build rating update: %w", err)
	}
	if _, err := s.tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to set ride rating: %w", err)
	}
	return nil
}
