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

var categoryColumns = []any{
	"id", "user_id", "name", "icon", "color", "deleted", "created_at", "updated_at",
}

// CategoriesTable provides access to the categories table.
type CategoriesTable struct {
	exec bob.Executor
}

var _ ICategoryTable = (*CategoriesTable)(nil)

// NewCategoriesTable creates a CategoriesTable for the given database.
func NewCategoriesTable(db *sql.DB) *CategoriesTable {
	return &CategoriesTable{exec: bob.NewDB(db)}
}

// NewCategoriesTableExec creates a CategoriesTable over an arbitrary executor,
// typically a transaction.
func NewCategoriesTableExec(exec bob.Executor) *CategoriesTable {
	return &CategoriesTable{exec: exec}
}

// FindByID retrieves a category by primary key, soft-deleted rows included.
func (t *CategoriesTable) FindByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	q := psql.Select(
		sm.Columns(categoryColumns...),
		sm.From("categories"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Category]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Insert creates a new category and returns its generated ID.
func (t *CategoriesTable) Insert(ctx context.Context, create *CategoryCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("categories", "user_id", "name", "icon", "color"),
		im.Values(psql.Arg(create.UserID, create.Name, create.Icon, create.Color)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// List returns categories matching the filter, ordered by creation time ascending.
func (t *CategoriesTable) List(ctx context.Context, filter *CategoryFilter) ([]*Category, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(categoryColumns...),
		sm.From("categories"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(filter.UserID))),
		sm.OrderBy("created_at").Asc(),
		sm.OrderBy("id").Asc(),
	}
	if !filter.IncludeDeleted {
		queryMods = append(queryMods, sm.Where(psql.Quote("deleted").EQ(psql.Arg(false))))
	}
	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Category]())
	if err != nil {
		return nil, err
	}
	result := make([]*Category, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// SetDeleted soft-deletes a category.
func (t *CategoriesTable) SetDeleted(ctx context.Context, id uuid.UUID) error {
	q := psql.Update(
		um.Table("categories"),
		um.SetCol("deleted").ToArg(true),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}
