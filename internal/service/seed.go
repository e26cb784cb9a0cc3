package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

// DefaultAccountName is the name of the account seeded for every new user.
const DefaultAccountName = "Cash"

// DefaultCategory is one seeded category tuple.
type DefaultCategory struct {
	Name  string
	Icon  string
	Color string
}

// DefaultCategories are created for every new user, in this order.
var DefaultCategories = []DefaultCategory{
	{Name: "Food & Dining", Icon: "utensils", Color: "#E74C3C"},
	{Name: "Groceries", Icon: "cart", Color: "#27AE60"},
	{Name: "Transport", Icon: "bus", Color: "#2980B9"},
	{Name: "Shopping", Icon: "bag", Color: "#8E44AD"},
	{Name: "Bills & Utilities", Icon: "bolt", Color: "#F39C12"},
	{Name: "Entertainment", Icon: "film", Color: "#D35400"},
	{Name: "Health", Icon: "heart", Color: "#C0392B"},
	{Name: "Education", Icon: "book", Color: "#16A085"},
	{Name: "Salary", Icon: "wallet", Color: "#2ECC71"},
	{Name: "Other", Icon: "tag", Color: "#7F8C8D"},
}

// SeedService provisions the defaults every new user starts with.
type SeedService struct {
	storage *storage.Storage
	logger  *logrus.Logger
}

// NewSeedService creates a new SeedService.
func NewSeedService(store *storage.Storage, logger *logrus.Logger) *SeedService {
	return &SeedService{storage: store, logger: logger}
}

// SeedUserDefaults creates the user's "Cash" account and the ten default
// categories. Every step is best-effort: a failed insert is logged and
// skipped, never failing the whole seeding. Each write auto-commits on its
// own so one failure cannot poison the rest.
func (s *SeedService) SeedUserDefaults(ctx context.Context, userID uuid.UUID) error {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	_, err := s.storage.Accounts.Insert(ctx, &sqlconfig.AccountCreate{
		UserID:             userID,
		Name:               DefaultAccountName,
		Type:               sqlconfig.AccountTypeCash,
		OpeningBalance:     decimal.Zero,
		OpeningBalanceDate: &today,
	})
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).
			Warn("seeding default account failed")
	}

	for _, category := range DefaultCategories {
		_, err := s.storage.Categories.Insert(ctx, &sqlconfig.CategoryCreate{
			UserID: userID,
			Name:   category.Name,
			Icon:   category.Icon,
			Color:  category.Color,
		})
		if err != nil {
			s.logger.WithError(err).WithFields(logrus.Fields{
				"user_id":  userID,
				"category": category.Name,
			}).Warn("seeding default category failed")
		}
	}

	return nil
}
