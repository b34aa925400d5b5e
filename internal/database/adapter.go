package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/denisenkom/go-mssqldb"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// QueryResult is the gateway's result shape: ordered column names and rows
// of column→value mappings in result order.
type QueryResult struct {
	Columns []string
	Rows    []map[string]interface{}
}

// Gateway accepts a parameterized statement and returns rows or an error.
// The console and the verify command depend on this rather than the
// concrete adapter.
type Gateway interface {
	Query(ctx context.Context, query string, args ...interface{}) (*QueryResult, error)
	Exec(ctx context.Context, query string, args ...interface{}) error
}

// Runner is the subset of database/sql shared by *sql.DB and *sql.Tx.
// Seeder stages run against whichever one owns the current scope.
type Runner interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Adapter wraps a database handle with its dialect.
type Adapter struct {
	db      *sql.DB
	dialect Dialect
}

func Open(ctx context.Context, provider, url string) (*Adapter, error) {
	dialect := DialectFor(provider)

	db, err := sql.Open(dialect.DriverName, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Adapter{db: db, dialect: dialect}, nil
}

// OpenTimeout is Open with a connect deadline; the console uses it so a dead
// database fails fast instead of hanging the page.
func OpenTimeout(provider, url string, timeout time.Duration) (*Adapter, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return Open(ctx, provider, url)
}

func (a *Adapter) Close() error {
	return a.db.Close()
}

func (a *Adapter) Ping(ctx context.Context) error {
	return a.db.PingContext(ctx)
}

func (a *Adapter) Dialect() Dialect {
	return a.dialect
}

func (a *Adapter) DB() *sql.DB {
	return a.db
}

// BeginTx starts a transaction owned by the caller for its entire lifetime.
func (a *Adapter) BeginTx(ctx context.Context) (*sql.Tx, error) {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

func (a *Adapter) Exec(ctx context.Context, query string, args ...interface{}) error {
	_, err := a.db.ExecContext(ctx, query, args...)
	return err
}

func (a *Adapter) Query(ctx context.Context, query string, args ...interface{}) (*QueryResult, error) {
	rows, err := a.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return CollectRows(rows)
}

// CollectRows drains *sql.Rows into a QueryResult.
func CollectRows(rows *sql.Rows) (*QueryResult, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	result := &QueryResult{Columns: columns}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		ptrs := make([]interface{}, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(map[string]interface{}, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		result.Rows = append(result.Rows, row)
	}
	return result, rows.Err()
}
