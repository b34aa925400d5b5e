package console

import (
	"context"
	"errors"
	"testing"

	"github.com/osrh-labs/rideseed/internal/database"
)

// fakeGateway records every statement it receives and replays a canned result.
type fakeGateway struct {
	queries []string
	result  *database.QueryResult
	err     error
}

func (f *fakeGateway) Query(ctx context.Context, query string, args ...interface{}) (*database.QueryResult, error) {
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeGateway) Exec(ctx context.Context, query string, args ...interface{}) error {
	f.queries = append(f.queries, query)
	return f.err
}

func TestExecuteRejectsNonSelect(t *testing.T) {
	gateway := &fakeGateway{}
	service := NewService(gateway, database.DialectFor("sqlserver"), 100)

	for _, statement := range []string{
		"DELETE FROM users",
		"UPDATE rides SET status = 'x'",
		"DROP TABLE payments",
		"  insert into admins VALUES (1)",
		"",
		"   ",
	} {
		_, err := service.Execute(context.Background(), statement)
		if !errors.Is(err, ErrRejected) {
			t.Errorf("Expected rejection for %q, got %v", statement, err)
		}
	}

	if len(gateway.queries) != 0 {
		t.Errorf("Rejected statements must never reach the database, got %v", gateway.queries)
	}
}

func TestExecuteRejectionMessage(t *testing.T) {
	service := NewService(&fakeGateway{}, database.DialectFor("sqlserver"), 100)

	_, err := service.Execute(context.Background(), "TRUNCATE TABLE rides")
	if err == nil {
		t.Fatal("Expected an error")
	}
	if got := err.Error(); got != "Only SELECT statements are allowed in this console." {
		t.Errorf("Unexpected rejection message: %q", got)
	}
}

func TestExecuteCapsUnlimitedSelects(t *testing.T) {
	gateway := &fakeGateway{result: &database.QueryResult{}}
	service := NewService(gateway, database.DialectFor("sqlserver"), 100)

	if _, err := service.Execute(context.Background(), "SELECT * FROM users;"); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	want := "SELECT TOP 100 * FROM (SELECT * FROM users) AS t"
	if gateway.queries[0] != want {
		t.Errorf("Expected %q, got %q", want, gateway.queries[0])
	}
}

func TestExecuteLeavesCappedSelectsAlone(t *testing.T) {
	gateway := &fakeGateway{result: &database.QueryResult{}}
	service := NewService(gateway, database.DialectFor("sqlserver"), 100)

	statement := "SELECT TOP 5 * FROM users"
	if _, err := service.Execute(context.Background(), statement); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if gateway.queries[0] != statement {
		t.Errorf("Statement was rewritten: %q", gateway.queries[0])
	}
}

func TestExecuteRendersRows(t *testing.T) {
	gateway := &fakeGateway{result: &database.QueryResult{
		Columns: []string{"id", "name", "deleted_at"},
		Rows: []map[string]interface{}{
			{"id": int64(1), "name": "Γιώργος", "deleted_at": nil},
		},
	}}
	service := NewService(gateway, database.DialectFor("sqlite"), 100)

	result, err := service.Execute(context.Background(), "SELECT id, name, deleted_at FROM users LIMIT 1")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(result.Rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(result.Rows))
	}
	want := []string{"1", "Γιώργος", "NULL"}
	for i, cell := range result.Rows[0] {
		if cell != want[i] {
			t.Errorf("Cell %d: expected %q, got %q", i, want[i], cell)
		}
	}
}
