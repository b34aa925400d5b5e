package seeder

// ReferenceItem is one row of a lookup table: a stable natural key plus a
// display description. The upserter keys existence checks on Key.
type ReferenceItem struct {
	Key         string
	Description string
}

// ComboSpec declares that a vehicle type may serve a service type under a
// ride type. Keys are resolved against the lookup tables; an unknown key is
// an error, not a skip.
type ComboSpec struct {
	Service     string
	Ride        string
	Vehicle     string
	ProfileName string
}

type person struct {
	PartyID string
	UserID  string
}

type driverRecord struct {
	PartyID    string
	UserID     string
	VehicleIDs []string
}
