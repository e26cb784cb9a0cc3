package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var transactionColumns = []any{
	"id", "user_id", "account_id", "category_id", "amount", "description",
	"transaction_date", "type", "payment_method", "notes", "deleted",
	"created_at", "updated_at",
}

var _ ITransactionTable = (*TransactionsTable)(nil)

// TransactionsTable provides access to the transactions table.
type TransactionsTable struct {
	exec bob.Executor
}

// NewTransactionsTable creates a TransactionsTable for the given database.
func NewTransactionsTable(db *sql.DB) *TransactionsTable {
	return &TransactionsTable{exec: bob.NewDB(db)}
}

// NewTransactionsTableExec creates a TransactionsTable over an arbitrary
// executor, typically a transaction.
func NewTransactionsTableExec(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

// FindByID retrieves a transaction by primary key, soft-deleted rows included.
func (t *TransactionsTable) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	q := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Transaction]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Insert creates a new transaction and returns its generated ID.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("transactions",
			"user_id", "account_id", "category_id", "amount", "description",
			"transaction_date", "type", "payment_method", "notes",
		),
		im.Values(psql.Arg(
			create.UserID,
			create.AccountID,
			create.CategoryID,
			create.Amount,
			create.Description,
			create.TransactionDate,
			int16(create.Type),
			int16(create.PaymentMethod),
			create.Notes,
		)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// List returns non-deleted transactions matching the filter, newest first.
func (t *TransactionsTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	whereMods := filter.whereMods()
	if filter.CategoryID != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("category_id").EQ(psql.Arg(*filter.CategoryID))))
	}
	if filter.MaxCreationTime != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("created_at").LTE(psql.Arg(*filter.MaxCreationTime))))
	}

	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(transactionColumns...),
		sm.From("transactions"),
		psql.WhereAnd(whereMods...),
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Desc(),
	}
	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit+1))
	}
	if filter.Offset > 0 {
		queryMods = append(queryMods, sm.Offset(filter.Offset))
	}
	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}
	result := make([]*Transaction, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// Update applies the set fields of the update to the given transaction.
func (t *TransactionsTable) Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) error {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table("transactions"),
		um.SetCol("updated_at").To(psql.Raw("now()")),
	}
	if update.AccountID.IsValue() {
		queryMods = append(queryMods, um.SetCol("account_id").ToArg(update.AccountID.GetOrZero()))
	}
	if update.CategoryID.IsValue() {
		queryMods = append(queryMods, um.SetCol("category_id").ToArg(update.CategoryID.GetOrZero()))
	}
	if update.Amount.IsValue() {
		queryMods = append(queryMods, um.SetCol("amount").ToArg(update.Amount.GetOrZero()))
	}
	if update.Description.IsValue() {
		queryMods = append(queryMods, um.SetCol("description").ToArg(update.Description.GetOrZero()))
	}
	if update.TransactionDate.IsValue() {
		queryMods = append(queryMods, um.SetCol("transaction_date").ToArg(update.TransactionDate.GetOrZero()))
	}
	if update.Type.IsValue() {
		queryMods = append(queryMods, um.SetCol("type").ToArg(int16(update.Type.GetOrZero())))
	}
	if update.PaymentMethod.IsValue() {
		queryMods = append(queryMods, um.SetCol("payment_method").ToArg(int16(update.PaymentMethod.GetOrZero())))
	}
	if update.Notes.IsValue() {
		queryMods = append(queryMods, um.SetCol("notes").ToArg(update.Notes.GetOrZero()))
	}
	queryMods = append(queryMods, um.Where(psql.Quote("id").EQ(psql.Arg(id))))
	_, err := bob.Exec(ctx, t.exec, psql.Update(queryMods...))
	return err
}

// SetDeleted soft-deletes a transaction.
func (t *TransactionsTable) SetDeleted(ctx context.Context, id uuid.UUID) error {
	q := psql.Update(
		um.Table("transactions"),
		um.SetCol("deleted").ToArg(true),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// SetCategoryNull clears the category reference on every transaction of the
// user that points at the given category.
func (t *TransactionsTable) SetCategoryNull(ctx context.Context, userID, categoryID uuid.UUID) error {
	q := psql.Update(
		um.Table("transactions"),
		um.SetCol("category_id").To(psql.Raw("NULL")),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		um.Where(psql.Quote("category_id").EQ(psql.Arg(categoryID))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// CountByAccount counts non-deleted transactions referencing the account.
func (t *TransactionsTable) CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("COUNT(*)")),
		sm.From("transactions"),
		sm.Where(psql.Quote("account_id").EQ(psql.Arg(accountID))),
		sm.Where(psql.Quote("deleted").EQ(psql.Arg(false))),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[int64])
}

// TotalsByType sums the matching ledger slice per transaction type. Types
// with no matching rows produce no row, so callers get zero by default.
func (t *TransactionsTable) TotalsByType(ctx context.Context, query TransactionQuery) ([]TypeTotal, error) {
	q := psql.Select(
		sm.Columns(
			"type",
			psql.Raw(`SUM(amount) AS "total"`),
			psql.Raw(`COUNT(*) AS "count"`),
		),
		sm.From("transactions"),
		psql.WhereAnd(query.whereMods()...),
		sm.GroupBy("type"),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[TypeTotal]())
}

// TotalsByCategory groups the matching ledger slice by category and type.
// Only observed combinations are returned; uncategorized rows group under a
// NULL category id.
func (t *TransactionsTable) TotalsByCategory(ctx context.Context, query TransactionQuery) ([]CategoryTotal, error) {
	q := psql.Select(
		sm.Columns(
			"category_id",
			"type",
			psql.Raw(`SUM(amount) AS "total"`),
			psql.Raw(`COUNT(*) AS "count"`),
		),
		sm.From("transactions"),
		psql.WhereAnd(query.whereMods()...),
		sm.GroupBy("category_id"),
		sm.GroupBy("type"),
		sm.OrderBy(psql.Raw(`SUM(amount)`)).Desc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[CategoryTotal]())
}

// TotalsByPaymentMethod groups the matching ledger slice by payment method
// and type. Only observed combinations are returned.
func (t *TransactionsTable) TotalsByPaymentMethod(ctx context.Context, query TransactionQuery) ([]PaymentMethodTotal, error) {
	q := psql.Select(
		sm.Columns(
			"payment_method",
			"type",
			psql.Raw(`SUM(amount) AS "total"`),
			psql.Raw(`COUNT(*) AS "count"`),
		),
		sm.From("transactions"),
		psql.WhereAnd(query.whereMods()...),
		sm.GroupBy("payment_method"),
		sm.GroupBy("type"),
		sm.OrderBy(psql.Raw(`SUM(amount)`)).Desc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[PaymentMethodTotal]())
}

// TotalsByMonth groups the matching ledger slice by calendar month of the
// transaction date. Months with no rows are omitted.
func (t *TransactionsTable) TotalsByMonth(ctx context.Context, query TransactionQuery) ([]MonthTotal, error) {
	q := psql.Select(
		sm.Columns(
			psql.Raw(`EXTRACT(MONTH FROM transaction_date)::int AS "month"`),
			psql.Raw(`SUM(amount) AS "total"`),
			psql.Raw(`COUNT(*) AS "count"`),
		),
		sm.From("transactions"),
		psql.WhereAnd(query.whereMods()...),
		sm.GroupBy(psql.Raw(`EXTRACT(MONTH FROM transaction_date)`)),
		sm.OrderBy(psql.Raw(`"month"`)).Asc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[MonthTotal]())
}
