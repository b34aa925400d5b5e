package database

import "testing"

func TestDialectFor(t *testing.T) {
	cases := []struct {
		provider string
		name     string
		driver   string
	}{
		{"sqlserver", "sqlserver", "sqlserver"},
		{"mssql", "sqlserver", "sqlserver"},
		{"postgres", "postgres", "pgx"},
		{"postgresql", "postgres", "pgx"},
		{"mysql", "mysql", "mysql"},
		{"sqlite", "sqlite", "sqlite3"},
		{"sqlite3", "sqlite", "sqlite3"},
		{"unknown", "sqlserver", "sqlserver"},
	}
	for _, c := range cases {
		d := DialectFor(c.provider)
		if d.Name != c.name || d.DriverName != c.driver {
			t.Errorf("DialectFor(%q) = %s/%s, want %s/%s", c.provider, d.Name, d.DriverName, c.name, c.driver)
		}
	}
}

func TestHasRowCap(t *testing.T) {
	sqlserver := DialectFor("sqlserver")
	sqlite := DialectFor("sqlite")

	if !sqlserver.HasRowCap("SELECT TOP 10 * FROM users") {
		t.Error("TOP clause not detected")
	}
	if sqlserver.HasRowCap("SELECT * FROM users") {
		t.Error("Uncapped statement reported as capped")
	}
	if !sqlite.HasRowCap("select * from users limit 5") {
		t.Error("Lowercase LIMIT not detected")
	}
	if sqlite.HasRowCap("SELECT * FROM users") {
		t.Error("Uncapped statement reported as capped")
	}
}

func TestWrapRowCap(t *testing.T) {
	sqlserver := DialectFor("sqlserver")
	if got := sqlserver.WrapRowCap("SELECT * FROM users;", 100); got != "SELECT TOP 100 * FROM (SELECT * FROM users) AS t" {
		t.Errorf("Unexpected wrapped statement: %q", got)
	}

	postgres := DialectFor("postgres")
	if got := postgres.WrapRowCap("SELECT * FROM users", 50); got != "SELECT * FROM (SELECT * FROM users) AS t LIMIT 50" {
		t.Errorf("Unexpected wrapped statement: %q", got)
	}
}

func TestBuilderPlaceholders(t *testing.T) {
	query, _, err := DialectFor("sqlserver").Builder().
		Select("id").From("users").Where("name = ?", "x").ToSql()
	if err != nil {
		t.Fatalf("ToSql failed: %v", err)
	}
	if want := "SELECT id FROM users WHERE name = @p1"; query != want {
		t.Errorf("Expected %q, got %q", want, query)
	}

	query, _, err = DialectFor("postgres").Builder().
		Select("id").From("users").Where("name = ?", "x").ToSql()
	if err != nil {
		t.Fatalf("ToSql failed: %v", err)
	}
	if want := "SELECT id FROM users WHERE name = $1"; query != want {
		t.Errorf("Expected %q, got %q", want, query)
	}
}
