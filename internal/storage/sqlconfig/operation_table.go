package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ IOperationTable = (*OperationsTable)(nil)

// OperationsTable provides access to the operations table.
type OperationsTable struct {
	exec bob.Executor
}

// NewOperationsTable creates an OperationsTable running on exec, either the DB or a transaction.
func NewOperationsTable(exec bob.Executor) *OperationsTable {
	return &OperationsTable{exec: exec}
}

// FindByID retrieves an operation by primary key. A missing row returns nil, nil.
// forUpdate locks the row until the surrounding transaction ends.
func (t *OperationsTable) FindByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*Operation, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columnsOf(operationColumns)...),
		sm.From(operationsTable),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	}
	if forUpdate {
		queryMods = append(queryMods, sm.ForUpdate())
	}
	row, err := bob.One(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Operation]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Insert creates a new operation and returns the stored row.
func (t *OperationsTable) Insert(ctx context.Context, create *OperationCreate) (*Operation, error) {
	q := psql.Insert(
		im.Into(operationsTable,
			"type", "fuel_type", "quantity", "month", "year", "unit_price",
			"tax_rate", "selic_rate", "total_value", "user_id",
		),
		im.Values(psql.Arg(
			create.Type, create.FuelType, create.Quantity, create.Month, create.Year, create.UnitPrice,
			create.TaxRate, create.SelicRate, create.TotalValue, create.UserID,
		)),
		im.Returning(columnsOf(operationColumns)...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Operation]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Update applies the set fields of update and returns the stored row,
// or nil when no row has the given id.
func (t *OperationsTable) Update(ctx context.Context, id uuid.UUID, update *OperationUpdate) (*Operation, error) {
	mods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table(operationsTable),
		um.SetCol("updated_at").To(psql.Raw("now()")),
	}
	if v, ok := update.Type.Get(); ok {
		mods = append(mods, um.SetCol("type").ToArg(v))
	}
	if v, ok := update.FuelType.Get(); ok {
		mods = append(mods, um.SetCol("fuel_type").ToArg(v))
	}
	if v, ok := update.Quantity.Get(); ok {
		mods = append(mods, um.SetCol("quantity").ToArg(v))
	}
	if v, ok := update.Month.Get(); ok {
		mods = append(mods, um.SetCol("month").ToArg(v))
	}
	if v, ok := update.Year.Get(); ok {
		mods = append(mods, um.SetCol("year").ToArg(v))
	}
	if v, ok := update.UnitPrice.Get(); ok {
		mods = append(mods, um.SetCol("unit_price").ToArg(v))
	}
	if v, ok := update.TaxRate.Get(); ok {
		mods = append(mods, um.SetCol("tax_rate").ToArg(v))
	}
	if v, ok := update.SelicRate.Get(); ok {
		mods = append(mods, um.SetCol("selic_rate").ToArg(v))
	}
	if v, ok := update.TotalValue.Get(); ok {
		mods = append(mods, um.SetCol("total_value").ToArg(v))
	}
	mods = append(mods,
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(columnsOf(operationColumns)...),
	)

	row, err := bob.One(ctx, t.exec, psql.Update(mods...), scan.StructMapper[Operation]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Delete removes an operation and reports whether a row was deleted.
func (t *OperationsTable) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	q := psql.Delete(
		dm.From(operationsTable),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// List returns operations matching the filter, newest first. Nil filter returns all.
func (t *OperationsTable) List(ctx context.Context, filter *OperationFilter) ([]*Operation, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columnsOf(operationColumns)...),
		sm.From(operationsTable),
	}
	queryMods = append(queryMods, operationWhereMods(filter)...)
	if filter != nil {
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("created_at")).Desc(),
		sm.OrderBy(psql.Quote("id")).Desc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Operation]())
	if err != nil {
		return nil, err
	}
	result := make([]*Operation, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// Count returns how many operations match the filter, ignoring Limit and Offset.
func (t *OperationsTable) Count(ctx context.Context, filter *OperationFilter) (int64, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns("count(*)"),
		sm.From(operationsTable),
	}
	queryMods = append(queryMods, operationWhereMods(filter)...)

	return bob.One(ctx, t.exec, psql.Select(queryMods...), scan.SingleColumnMapper[int64])
}

func operationWhereMods(filter *OperationFilter) []bob.Mod[*dialect.SelectQuery] {
	var whereMods []bob.Mod[*dialect.SelectQuery]
	if filter == nil {
		return whereMods
	}
	if filter.UserID != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("user_id").EQ(psql.Arg(*filter.UserID))))
	}
	if filter.Month != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("month").EQ(psql.Arg(*filter.Month))))
	}
	if filter.Year != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("year").EQ(psql.Arg(*filter.Year))))
	}
	if filter.Type != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("type").EQ(psql.Arg(*filter.Type))))
	}
	if filter.FuelType != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("fuel_type").EQ(psql.Arg(*filter.FuelType))))
	}
	return whereMods
}

func columnsOf(names []string) []any {
	cols := make([]any, len(names))
	for i, name := range names {
		cols[i] = psql.Quote(name)
	}
	return cols
}
