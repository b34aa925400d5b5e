// Package schema is the catalog the rest of the toolkit builds statements
// against: table names, the dependency-ordered table list, and the shipped
// DDL. Nothing outside this package spells a table name as a string literal.
package schema

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed ddl/*.sql
var ddlFS embed.FS

// Table names.
const (
	TableRideTypes              = "ride_types"
	TableServiceTypes           = "service_types"
	TableVehicleTypes           = "vehicle_types"
	TableServiceTypeRideTypes   = "service_type_ride_types"
	TableRideProfiles           = "ride_profiles"
	TableAdmins                 = "admins"
	TableOperators              = "operators"
	TableInspectors             = "inspectors"
	TableParties                = "parties"
	TableCompanies              = "companies"
	TableCompanyRepresentatives = "company_representatives"
	TableUsers                  = "users"
	TablePassengers             = "passengers"
	TableDrivers                = "drivers"
	TableUserPreferences        = "user_preferences"
	TablePersonDocuments        = "person_documents"
	TableVehicles               = "vehicles"
	TableVehicleDocuments       = "vehicle_documents"
	TableVehicleInspections     = "vehicle_inspections"
	TableVehicleAvailability    = "vehicle_availability"
	TableVehicleLocations       = "vehicle_locations"
	TableServiceEnrollments     = "service_enrollments"
	TableCreditCards            = "credit_cards"
	TableGeofenceZones          = "geofence_zones"
	TableBridges                = "bridges"
	TableRideRequests           = "ride_requests"
	TableItineraryLegs          = "itinerary_legs"
	TableLegBridgeCrossings     = "leg_bridge_crossings"
	TableDispatchOffers         = "dispatch_offers"
	TablePayments               = "payments"
	TableRatings                = "ratings"
	TableRides                  = "rides"
	TableInAppMessages          = "in_app_messages"
)

// Tables lists every table parent-before-child. Creating, seeding, or
// counting in this order never trips a foreign key.
var Tables = []string{
	TableRideTypes,
	TableServiceTypes,
	TableVehicleTypes,
	TableServiceTypeRideTypes,
	TableRideProfiles,
	TableAdmins,
	TableOperators,
	TableInspectors,
	TableParties,
	TableCompanies,
	TableCompanyRepresentatives,
	TableUsers,
	TablePassengers,
	TableDrivers,
	TableUserPreferences,
	TablePersonDocuments,
	TableVehicles,
	TableVehicleDocuments,
	TableVehicleInspections,
	TableVehicleAvailability,
	TableVehicleLocations,
	TableServiceEnrollments,
	TableCreditCards,
	TableGeofenceZones,
	TableBridges,
	TableRideRequests,
	TableItineraryLegs,
	TableLegBridgeCrossings,
	TableDispatchOffers,
	TablePayments,
	TableRatings,
	TableRides,
	TableInAppMessages,
}

// Statements returns the shipped DDL as individual executable statements,
// in file order.
func Statements() ([]string, error) {
	entries, err := ddlFS.ReadDir("ddl")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded schema: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".sql") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	var statements []string
	for _, name := range names {
		content, err := ddlFS.ReadFile("ddl/" + name)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded schema file %s: %w", name, err)
		}
		statements = append(statements, SplitStatements(string(content))...)
	}
	return statements, nil
}

// SplitStatements splits a .sql file into statements, dropping comments
// and blanks.
func SplitStatements(content string) []string {
	var b strings.Builder
	for _, line := range strings.Split(content, "\n") {
		t := strings.TrimSpace(line)
		if t == "" || strings.HasPrefix(t, "--") {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	var statements []string
	for _, s := range strings.Split(b.String(), ";") {
		s = strings.TrimSpace(s)
		if s != "" {
			statements = append(statements, s)
		}
	}
	return statements
}
