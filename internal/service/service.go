package service

import (
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Account     *AccountService
	Transaction *TransactionService
	Category    *CategoryService
	Balance     *BalanceService
	Stats       *StatsService
	Seed        *SeedService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage, logger *logrus.Logger) *Service {
	return &Service{
		Account:     NewAccountService(store),
		Transaction: NewTransactionService(store),
		Category:    NewCategoryService(store),
		Balance:     NewBalanceService(store, logger),
		Stats:       NewStatsService(store),
		Seed:        NewSeedService(store, logger),
	}
}
