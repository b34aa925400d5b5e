package database

import (
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
)

// Dialect captures the per-provider details the toolkit cares about:
// which driver to open, how parameters are numbered, and how to cap the
// row count of an arbitrary SELECT.
type Dialect struct {
	Name        string
	DriverName  string
	Placeholder squirrel.PlaceholderFormat
}

func DialectFor(provider string) Dialect {
	switch provider {
	case "sqlserver", "mssql":
		return Dialect{Name: "sqlserver", DriverName: "sqlserver", Placeholder: squirrel.AtP}
	case "postgresql", "postgres":
		return Dialect{Name: "postgres", DriverName: "pgx", Placeholder: squirrel.Dollar}
	case "mysql":
		return Dialect{Name: "mysql", DriverName: "mysql", Placeholder: squirrel.Question}
	case "sqlite", "sqlite3":
		return Dialect{Name: "sqlite", DriverName: "sqlite3", Placeholder: squirrel.Question}
	default:
		return Dialect{Name: "sqlserver", DriverName: "sqlserver", Placeholder: squirrel.AtP}
	}
}

// Builder returns a squirrel statement builder using this dialect's
// placeholder format.
func (d Dialect) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(d.Placeholder)
}

// HasRowCap reports whether the statement already carries a row-limit clause.
func (d Dialect) HasRowCap(query string) bool {
	upper := strings.ToUpper(query)
	if d.Name == "sqlserver" {
		return strings.Contains(upper, " TOP ")
	}
	return strings.Contains(upper, "LIMIT")
}

// WrapRowCap wraps the statement as a subquery capped at n rows.
func (d Dialect) WrapRowCap(query string, n int) string {
	query = strings.TrimRight(strings.TrimSpace(query), ";")
	if d.Name == "sqlserver" {
		return fmt.Sprintf("SELECT TOP %d * FROM (%s) AS t", n, query)
	}
	return fmt.Sprintf("SELECT * FROM (%s) AS t LIMIT %d", query, n)
}
