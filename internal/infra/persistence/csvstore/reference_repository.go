package csvstore

import (
	"context"
	"os"
	"path/filepath"

	"martgen/config"
	"martgen/internal/domain/entity"
	"martgen/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var customersHeader = []string{
	"customer_id", "first_name", "last_name", "email", "phone",
	"address", "city", "state", "zip_code", "join_date",
	"loyalty_tier", "segment", "credit_score",
}

var productsHeader = []string{
	"product_id", "sku", "name", "category", "subcategory", "brand",
	"cost_price", "selling_price", "weight", "created_at", "is_active",
	"inventory_qty",
}

type referenceRepository struct {
	dataDir string
}

// NewReferenceRepository creates the CSV-backed reference data store rooted
// at the configured data directory.
func NewReferenceRepository(cfg *config.Config) repository.ReferenceRepository {
	return &referenceRepository{dataDir: cfg.Generator.DataDir}
}

// Load reads the persisted customer and product files. Neither file existing
// means "not bootstrapped yet" (ErrReferenceNotFound). Exactly one existing
// is a partial store and fatal: regenerating over it would break referential
// integrity with partitions generated against the missing half.
func (r *referenceRepository) Load(_ context.Context) (*entity.ReferenceData, error) {
	customersPath := filepath.Join(r.dataDir, repository.CustomersFile)
	productsPath := filepath.Join(r.dataDir, repository.ProductsFile)

	customersExist := fileExists(customersPath)
	productsExist := fileExists(productsPath)

	switch {
	case !customersExist && !productsExist:
		return nil, repository.ErrReferenceNotFound
	case customersExist != productsExist:
		return nil, errors.Errorf("partial reference data: customers=%t products=%t", customersExist, productsExist)
	}

	customers, err := loadCustomers(customersPath)
	if err != nil {
		return nil, err
	}

	products, err := loadProducts(productsPath)
	if err != nil {
		return nil, err
	}

	return &entity.ReferenceData{Customers: customers, Products: products}, nil
}

// Save writes both reference files, replacing any existing copies.
func (r *referenceRepository) Save(_ context.Context, ref *entity.ReferenceData) error {
	customerRecords := make([][]string, 0, len(ref.Customers))
	for _, c := range ref.Customers {
		customerRecords = append(customerRecords, []string{
			c.ID.String(),
			c.FirstName,
			c.LastName,
			c.Email,
			c.Phone,
			c.Address,
			c.City,
			c.State,
			c.ZipCode,
			c.JoinDate.Format(dateFormat),
			c.LoyaltyTier.String(),
			c.Segment.String(),
			formatInt(c.CreditScore),
		})
	}

	if err := writeCSVFile(filepath.Join(r.dataDir, repository.CustomersFile), customersHeader, customerRecords); err != nil {
		return err
	}

	productRecords := make([][]string, 0, len(ref.Products))
	for _, p := range ref.Products {
		productRecords = append(productRecords, []string{
			p.ID.String(),
			p.SKU,
			p.Name,
			p.Category.String(),
			p.Subcategory,
			p.Brand,
			formatMoney(p.CostPrice),
			formatMoney(p.SellingPrice),
			formatMoney(p.Weight),
			p.CreatedAt.Format(dateFormat),
			formatBool(p.IsActive),
			formatInt(p.InventoryQty),
		})
	}

	return writeCSVFile(filepath.Join(r.dataDir, repository.ProductsFile), productsHeader, productRecords)
}

func loadCustomers(path string) ([]*entity.Customer, error) {
	records, err := readCSVFile(path, len(customersHeader))
	if err != nil {
		return nil, err
	}

	customers := make([]*entity.Customer, 0, len(records))
	for i, record := range records {
		line := i + 2 // header is line 1

		id, err := uuid.Parse(record[0])
		if err != nil {
			return nil, errors.Wrapf(err, "%s line %d: invalid customer id %q", path, line, record[0])
		}
		joinDate, err := parseDate(record[9], path, line)
		if err != nil {
			return nil, err
		}
		creditScore, err := parseInt(record[12], path, line)
		if err != nil {
			return nil, err
		}

		customers = append(customers, &entity.Customer{
			ID:          id,
			FirstName:   record[1],
			LastName:    record[2],
			Email:       record[3],
			Phone:       record[4],
			Address:     record[5],
			City:        record[6],
			State:       record[7],
			ZipCode:     record[8],
			JoinDate:    joinDate,
			LoyaltyTier: entity.LoyaltyTier(record[10]),
			Segment:     entity.Segment(record[11]),
			CreditScore: creditScore,
		})
	}

	return customers, nil
}

func loadProducts(path string) ([]*entity.Product, error) {
	records, err := readCSVFile(path, len(productsHeader))
	if err != nil {
		return nil, err
	}

	products := make([]*entity.Product, 0, len(records))
	for i, record := range records {
		line := i + 2

		id, err := uuid.Parse(record[0])
		if err != nil {
			return nil, errors.Wrapf(err, "%s line %d: invalid product id %q", path, line, record[0])
		}
		costPrice, err := parseFloat(record[6], path, line)
		if err != nil {
			return nil, err
		}
		sellingPrice, err := parseFloat(record[7], path, line)
		if err != nil {
			return nil, err
		}
		weight, err := parseFloat(record[8], path, line)
		if err != nil {
			return nil, err
		}
		createdAt, err := parseDate(record[9], path, line)
		if err != nil {
			return nil, err
		}
		isActive, err := parseBool(record[10], path, line)
		if err != nil {
			return nil, err
		}
		inventoryQty, err := parseInt(record[11], path, line)
		if err != nil {
			return nil, err
		}

		products = append(products, &entity.Product{
			ID:           id,
			SKU:          record[1],
			Name:         record[2],
			Category:     entity.Category(record[3]),
			Subcategory:  record[4],
			Brand:        record[5],
			CostPrice:    costPrice,
			SellingPrice: sellingPrice,
			Weight:       weight,
			CreatedAt:    createdAt,
			IsActive:     isActive,
			InventoryQty: inventoryQty,
		})
	}

	return products, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)

	return err == nil && !info.IsDir()
}
