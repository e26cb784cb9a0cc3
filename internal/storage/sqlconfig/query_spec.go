package sqlconfig

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/mods"
)

// TransactionQuery is the explicit filter spec shared by every ledger read
// and aggregate. One value describes the whole filter: owner, optional
// account, optional type, optional inclusive date window. Soft-deleted rows
// are always excluded.
type TransactionQuery struct {
	UserID    uuid.UUID
	AccountID *uuid.UUID
	Type      *TransactionType
	DateFrom  *time.Time
	DateTo    *time.Time
}

// whereMods translates the query into WHERE clauses. Every aggregate below
// consumes the same translation, so the date and soft-delete policies cannot
// drift between reports.
func (q TransactionQuery) whereMods() []mods.Where[*dialect.SelectQuery] {
	whereMods := []mods.Where[*dialect.SelectQuery]{
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(q.UserID))),
		sm.Where(psql.Quote("deleted").EQ(psql.Arg(false))),
	}
	if q.AccountID != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("account_id").EQ(psql.Arg(*q.AccountID))))
	}
	if q.Type != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("type").EQ(psql.Arg(int16(*q.Type)))))
	}
	if q.DateFrom != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("transaction_date").GTE(psql.Arg(*q.DateFrom))))
	}
	if q.DateTo != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("transaction_date").LTE(psql.Arg(*q.DateTo))))
	}
	return whereMods
}
