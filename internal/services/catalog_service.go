package services

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DefaultSizes are the sizes every deployment starts with
var DefaultSizes = []models.Size{
	{Name: "small", Price: 10},
	{Name: "medium", Price: 16},
	{Name: "family", Price: 20},
}

// DefaultToppings are the toppings every deployment starts with
var DefaultToppings = []models.Topping{
	{Name: "ham", Price: decimal.RequireFromString("4.00")},
	{Name: "mushrooms", Price: decimal.RequireFromString("3.50")},
	{Name: "bell peppers", Price: decimal.RequireFromString("3.00")},
	{Name: "double cheese", Price: decimal.RequireFromString("4.00")},
	{Name: "olives", Price: decimal.RequireFromString("5.75")},
	{Name: "pepperoni", Price: decimal.RequireFromString("3.85")},
	{Name: "sausage", Price: decimal.RequireFromString("6.25")},
}

// SeedReport describes what a bootstrap run inserted
type SeedReport struct {
	SizesCreated    int  `json:"sizes_created"`
	ToppingsCreated int  `json:"toppings_created"`
	AlreadySeeded   bool `json:"already_seeded"`
}

// CatalogService provides the size and topping reference data
type CatalogService interface {
	// ListSizes returns every size, cheapest first
	ListSizes(ctx context.Context) ([]models.Size, error)
	// ListToppings returns every topping by name
	ListToppings(ctx context.Context) ([]models.Topping, error)
	// Bootstrap inserts the default sizes and toppings that are missing.
	// Running it again against a seeded store inserts nothing.
	Bootstrap(ctx context.Context) (SeedReport, error)
}

type catalogService struct {
	db          *gorm.DB
	repo        *repository.CatalogRepository
	diagnostics bool
}

// NewCatalogService creates a new instance of CatalogService.
// With diagnostics on, bootstrap dumps the reference rows at debug level.
func NewCatalogService(db *gorm.DB, diagnostics bool) CatalogService {
	return &catalogService{db: db, repo: repository.NewCatalogRepository(db), diagnostics: diagnostics}
}

func (s *catalogService) ListSizes(ctx context.Context) ([]models.Size, error) {
	return s.repo.ListSizes(ctx)
}

func (s *catalogService) ListToppings(ctx context.Context) ([]models.Topping, error) {
	return s.repo.ListToppings(ctx)
}

func (s *catalogService) Bootstrap(ctx context.Context) (SeedReport, error) {
	var report SeedReport
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		for _, size := range DefaultSizes {
			row := size
			created, err := repo.EnsureSize(ctx, &row)
			if err != nil {
				return fmt.Errorf("seed size %q: %w", size.Name, err)
			}
			if created {
				report.SizesCreated++
			}
		}
		for _, topping := range DefaultToppings {
			row := topping
			created, err := repo.EnsureTopping(ctx, &row)
			if err != nil {
				return fmt.Errorf("seed topping %q: %w", topping.Name, err)
			}
			if created {
				report.ToppingsCreated++
			}
		}
		return nil
	})
	if err != nil {
		return SeedReport{}, err
	}

	report.AlreadySeeded = report.SizesCreated == 0 && report.ToppingsCreated == 0
	if report.AlreadySeeded {
		log.Info("Reference data already seeded")
	} else {
		log.WithFields(logrus.Fields{
			"sizes_created":    report.SizesCreated,
			"toppings_created": report.ToppingsCreated,
		}).Info("Reference data seeded")
	}

	if s.diagnostics {
		s.logReferenceData(ctx)
	}
	return report, nil
}

func (s *catalogService) logReferenceData(ctx context.Context) {
	sizes, err := s.repo.ListSizes(ctx)
	if err != nil {
		log.WithError(err).Warn("Could not list sizes")
		return
	}
	for _, size := range sizes {
		log.WithFields(logrus.Fields{"size": size.Name, "price": size.Price}).Debug("Size available")
	}
	toppings, err := s.repo.ListToppings(ctx)
	if err != nil {
		log.WithError(err).Warn("Could not list toppings")
		return
	}
	for _, topping := range toppings {
		log.WithFields(logrus.Fields{"topping": topping.Name, "price": topping.Price.StringFixed(2)}).Debug("Topping available")
	}
}
