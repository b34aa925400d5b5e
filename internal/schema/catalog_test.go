package schema

import (
	"strings"
	"testing"
)

func TestStatementsCoverEveryTable(t *testing.T) {
	statements, err := Statements()
	if err != nil {
		t.Fatalf("Statements failed: %v", err)
	}
	if len(statements) != len(Tables) {
		t.Fatalf("Expected %d statements, got %d", len(Tables), len(statements))
	}

	created := make(map[string]bool)
	for _, statement := range statements {
		if !strings.HasPrefix(statement, "CREATE TABLE") {
			t.Errorf("Unexpected statement kind: %.40s", statement)
			continue
		}
		for _, table := range Tables {
			if strings.Contains(statement, "CREATE TABLE IF NOT EXISTS "+table+" ") {
				created[table] = true
			}
		}
	}
	for _, table := range Tables {
		if !created[table] {
			t.Errorf("No CREATE TABLE statement for %s", table)
		}
	}
}

func TestTablesAreParentBeforeChild(t *testing.T) {
	position := make(map[string]int)
	for i, table := range Tables {
		position[table] = i
	}

	deps := map[string][]string{
		TableOperators:          {TableAdmins},
		TableUsers:              {TableParties},
		TableDrivers:            {TableUsers, TableCompanies},
		TableVehicles:           {TableVehicleTypes, TableParties},
		TableServiceEnrollments: {TableVehicles, TableServiceTypes, TableRideTypes, TableOperators},
		TableRideProfiles:       {TableServiceTypes, TableRideTypes, TableVehicleTypes},
		TableItineraryLegs:      {TableRideRequests, TableBridges},
		TableDispatchOffers:     {TableItineraryLegs, TableVehicles},
		TableRides:              {TableDispatchOffers, TablePayments, TableRatings},
		TableInAppMessages:      {TableRides, TableUsers},
	}
	for child, parents := range deps {
		for _, parent := range parents {
			if position[parent] >= position[child] {
				t.Errorf("%s must precede %s", parent, child)
			}
		}
	}
}

func TestSplitStatements(t *testing.T) {
	content := `-- catalog
CREATE TABLE a (id INT);

-- second
CREATE TABLE b (
    id INT
);
`
	statements := SplitStatements(content)
	if len(statements) != 2 {
		t.Fatalf("Expected 2 statements, got %d: %v", len(statements), statements)
	}
	if statements[0] != "CREATE TABLE a (id INT)" {
		t.Errorf("Unexpected first statement: %q", statements[0])
	}
	if strings.Contains(statements[1], "--") {
		t.Errorf("Comment leaked into statement: %q", statements[1])
	}
}
