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

var accountColumns = []any{
	"id", "user_id", "name", "type", "opening_balance",
	"opening_balance_date", "deleted", "created_at", "updated_at",
}

// AccountsTable provides access to the accounts table.
type AccountsTable struct {
	exec bob.Executor
}

// Ensure AccountsTable implements IAccountTable at compile time.
var _ IAccountTable = (*AccountsTable)(nil)

// NewAccountsTable creates an AccountsTable for the given database.
func NewAccountsTable(db *sql.DB) *AccountsTable {
	return &AccountsTable{exec: bob.NewDB(db)}
}

// NewAccountsTableExec creates an AccountsTable over an arbitrary executor,
// typically a transaction.
func NewAccountsTableExec(exec bob.Executor) *AccountsTable {
	return &AccountsTable{exec: exec}
}

// FindByID retrieves an account by primary key. Soft-deleted rows are
// returned as well so callers can distinguish "gone" from "never existed".
func (t *AccountsTable) FindByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	q := psql.Select(
		sm.Columns(accountColumns...),
		sm.From("accounts"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Account]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// FirstActive returns the user's oldest non-deleted account.
func (t *AccountsTable) FirstActive(ctx context.Context, userID uuid.UUID) (*Account, error) {
	q := psql.Select(
		sm.Columns(accountColumns...),
		sm.From("accounts"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("deleted").EQ(psql.Arg(false))),
		sm.OrderBy("created_at").Asc(),
		sm.OrderBy("id").Asc(),
		sm.Limit(1),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Account]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Insert creates a new account and returns its generated ID.
func (t *AccountsTable) Insert(ctx context.Context, create *AccountCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("accounts",
			"user_id", "name", "type", "opening_balance", "opening_balance_date",
		),
		im.Values(psql.Arg(
			create.UserID,
			create.Name,
			int16(create.Type),
			create.OpeningBalance,
			create.OpeningBalanceDate,
		)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// List returns non-deleted accounts matching the filter, ordered by creation
// time ascending.
func (t *AccountsTable) List(ctx context.Context, filter *AccountFilter) ([]*Account, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(accountColumns...),
		sm.From("accounts"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(filter.UserID))),
		sm.Where(psql.Quote("deleted").EQ(psql.Arg(false))),
		sm.OrderBy("created_at").Asc(),
		sm.OrderBy("id").Asc(),
	}
	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit+1))
	}
	if filter.Offset > 0 {
		queryMods = append(queryMods, sm.Offset(filter.Offset))
	}
	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Account]())
	if err != nil {
		return nil, err
	}
	result := make([]*Account, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// Update applies the set fields of the update to the given account.
func (t *AccountsTable) Update(ctx context.Context, id uuid.UUID, update *AccountUpdate) error {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table("accounts"),
		um.SetCol("updated_at").To(psql.Raw("now()")),
	}
	if update.Name.IsValue() {
		queryMods = append(queryMods, um.SetCol("name").ToArg(update.Name.GetOrZero()))
	}
	if update.Type.IsValue() {
		queryMods = append(queryMods, um.SetCol("type").ToArg(int16(update.Type.GetOrZero())))
	}
	if update.OpeningBalance.IsValue() {
		queryMods = append(queryMods, um.SetCol("opening_balance").ToArg(update.OpeningBalance.GetOrZero()))
	}
	if update.OpeningBalanceDate.IsValue() {
		queryMods = append(queryMods, um.SetCol("opening_balance_date").ToArg(update.OpeningBalanceDate.GetOrZero()))
	}
	queryMods = append(queryMods, um.Where(psql.Quote("id").EQ(psql.Arg(id))))
	_, err := bob.Exec(ctx, t.exec, psql.Update(queryMods...))
	return err
}

// SetDeleted soft-deletes an account.
func (t *AccountsTable) SetDeleted(ctx context.Context, id uuid.UUID) error {
	q := psql.Update(
		um.Table("accounts"),
		um.SetCol("deleted").ToArg(true),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}
