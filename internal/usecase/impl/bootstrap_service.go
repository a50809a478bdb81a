package impl

import (
	"context"
	"log/slog"
	"time"

	"martgen/internal/domain/entity"
	"martgen/internal/domain/repository"
	"martgen/internal/infra/datagen"
	"martgen/internal/usecase"
	"martgen/internal/util"

	"github.com/pkg/errors"
)

type bootstrapService struct {
	refRepo repository.ReferenceRepository
	faker   *datagen.Faker
	logger  *slog.Logger
}

// NewBootstrapService creates the reference data bootstrap.
func NewBootstrapService(refRepo repository.ReferenceRepository, faker *datagen.Faker, logger *slog.Logger) usecase.BootstrapUsecase {
	return &bootstrapService{
		refRepo: refRepo,
		faker:   faker,
		logger:  logger,
	}
}

// LoadOrCreate returns the persisted reference population when one exists.
// Only a clean "nothing persisted yet" triggers generation; any other load
// failure (partial or corrupt store) propagates, because regenerating would
// silently break referential integrity with already-uploaded history.
func (s *bootstrapService) LoadOrCreate(ctx context.Context, spec usecase.ReferenceSpec) (*entity.ReferenceData, error) {
	ref, err := s.refRepo.Load(ctx)
	if err == nil {
		s.logger.Info("reusing persisted reference data",
			slog.Int("customers", len(ref.Customers)),
			slog.Int("products", len(ref.Products)))

		return ref, nil
	}
	if !errors.Is(err, repository.ErrReferenceNotFound) {
		return nil, errors.Wrap(err, "load reference data")
	}

	s.logger.Info("bootstrapping reference data",
		slog.Int("customers", spec.NumCustomers),
		slog.Int("products", spec.NumProducts))

	ref = &entity.ReferenceData{
		Customers: s.generateCustomers(spec.NumCustomers),
		Products:  s.generateProducts(spec.NumProducts),
	}

	if err := s.refRepo.Save(ctx, ref); err != nil {
		return nil, errors.Wrap(err, "persist reference data")
	}

	return ref, nil
}

func (s *bootstrapService) generateCustomers(n int) []*entity.Customer {
	now := time.Now()
	customers := make([]*entity.Customer, 0, n)

	for i := 0; i < n; i++ {
		customers = append(customers, &entity.Customer{
			ID:          s.faker.UUID(),
			FirstName:   s.faker.FirstName(),
			LastName:    s.faker.LastName(),
			Email:       s.faker.Email(),
			Phone:       s.faker.Phone(),
			Address:     s.faker.Street(),
			City:        s.faker.City(),
			State:       s.faker.State(),
			ZipCode:     s.faker.Zip(),
			JoinDate:    util.DateOnly(s.faker.DateRange(now.AddDate(-2, 0, 0), now)),
			LoyaltyTier: datagen.Pick(s.faker, entity.LoyaltyTiers()),
			Segment:     datagen.Pick(s.faker, entity.Segments()),
			CreditScore: s.faker.IntRange(300, 850),
		})
	}

	return customers
}

func (s *bootstrapService) generateProducts(n int) []*entity.Product {
	now := time.Now()
	products := make([]*entity.Product, 0, n)

	for i := 0; i < n; i++ {
		cost := util.Round2(s.faker.Float64Range(5, 500))
		// Selling price carries at least the minimum markup over cost.
		price := util.Round2(cost * s.faker.Float64Range(entity.MinPriceMarkup, 3.0))

		products = append(products, &entity.Product{
			ID:           s.faker.UUID(),
			SKU:          s.faker.SKU(),
			Name:         s.faker.ProductName(),
			Category:     datagen.Pick(s.faker, entity.Categories()),
			Subcategory:  s.faker.Word(),
			Brand:        s.faker.Company(),
			CostPrice:    cost,
			SellingPrice: price,
			Weight:       util.Round2(s.faker.Float64Range(0.1, 20)),
			CreatedAt:    util.DateOnly(s.faker.DateRange(now.AddDate(-3, 0, 0), now.AddDate(0, -6, 0))),
			IsActive:     s.faker.Chance(0.9),
			InventoryQty: s.faker.IntRange(0, 1000),
		})
	}

	return products
}
