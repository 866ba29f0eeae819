package sqlconfig

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ IRateTable = (*RatesTable)(nil)

// RatesTable provides read access to the rates table.
type RatesTable struct {
	exec bob.Executor
}

func NewRatesTable(exec bob.Executor) *RatesTable {
	return &RatesTable{exec: exec}
}

// List returns every rate row, newest period first.
func (t *RatesTable) List(ctx context.Context) ([]*Rate, error) {
	q := psql.Select(
		sm.Columns(columnsOf(rateColumns)...),
		sm.From(ratesTable),
		sm.OrderBy(psql.Quote("year")).Desc(),
		sm.OrderBy(psql.Quote("month")).Desc(),
		sm.OrderBy(psql.Quote("fuel_type")).Asc(),
		sm.OrderBy(psql.Quote("operation_type")).Asc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[Rate]())
	if err != nil {
		return nil, err
	}
	result := make([]*Rate, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
