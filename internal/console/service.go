package console

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/osrh-labs/rideseed/internal/database"
)

// ErrRejected is returned for any statement whose first token is not SELECT.
// Its text is shown to the user verbatim.
var ErrRejected = errors.New("Only SELECT statements are allowed in this console.")

// Result is a rendered query result: ordered headers and stringified cells.
type Result struct {
	Columns []string
	Rows    [][]string
}

// Service gates and executes console statements. Only SELECTs reach the
// gateway, and statements without a row-limit clause are wrapped as a capped
// subquery first.
type Service struct {
	gateway database.Gateway
	dialect database.Dialect
	rowCap  int
}

func NewService(gateway database.Gateway, dialect database.Dialect, rowCap int) *Service {
	return &Service{gateway: gateway, dialect: dialect, rowCap: rowCap}
}

func (s *Service) Execute(ctx context.Context, raw string) (*Result, error) {
	statement := strings.TrimSpace(raw)

	fields := strings.Fields(statement)
	if len(fields) == 0 || !strings.EqualFold(fields[0], "SELECT") {
		return nil, ErrRejected
	}

	if !s.dialect.HasRowCap(statement) {
		statement = s.dialect.WrapRowCap(statement, s.rowCap)
	}

	result, err := s.gateway.Query(ctx, statement)
	if err != nil {
		return nil, err
	}

	rendered := &Result{Columns: result.Columns}
	for _, row := range result.Rows {
		cells := make([]string, len(result.Columns))
		for i, col := range result.Columns {
			cells[i] = renderValue(row[col])
		}
		rendered.Rows = append(rendered.Rows, cells)
	}
	return rendered, nil
}

func renderValue(v interface{}) string {
	if v == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", v)
}
