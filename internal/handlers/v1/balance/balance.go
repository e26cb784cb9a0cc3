package balance

import (
	"time"

	"github.com/carson-networks/ledger-server/internal/service"
)

// Balance is the API response model for a derived account balance.
type Balance struct {
	AccountID          string `json:"accountID" doc:"Account UUID"`
	AccountName        string `json:"accountName" doc:"Account name"`
	OpeningBalance     string `json:"openingBalance" doc:"Decimal opening balance"`
	OpeningBalanceDate string `json:"openingBalanceDate,omitempty" doc:"Opening balance effective date (YYYY-MM-DD)"`
	TotalCredit        string `json:"totalCredit" doc:"Decimal sum of credits"`
	TotalDebit         string `json:"totalDebit" doc:"Decimal sum of debits"`
	Balance            string `json:"balance" doc:"Decimal current balance"`
}

func fromService(balance service.Balance) Balance {
	resp := Balance{
		AccountID:      balance.AccountID.String(),
		AccountName:    balance.AccountName,
		OpeningBalance: balance.OpeningBalance.StringFixed(2),
		TotalCredit:    balance.TotalCredit.StringFixed(2),
		TotalDebit:     balance.TotalDebit.StringFixed(2),
		Balance:        balance.Balance.StringFixed(2),
	}
	if balance.OpeningBalanceDate != nil {
		resp.OpeningBalanceDate = balance.OpeningBalanceDate.Format(time.DateOnly)
	}
	return resp
}
