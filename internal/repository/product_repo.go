package repository

import (
	"errors"
	"fmt"

	"go-inventory-orders/internal/apperr"
	"go-inventory-orders/internal/model"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindByID(id uint) (*model.Product, error)
	FindBySKU(sku string) (*model.Product, error)
	FindByStockLessThan(threshold int) ([]model.Product, error)
	SaveAll(products []*model.Product) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		// The unique index on sku is the real enforcement; the service-level
		// lookup is only a fast path.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: sku %q already exists", apperr.ErrDuplicateKey, product.SKU)
		}
		return err
	}
	return nil
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Order("id ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uint) (*model.Product, error) {
	var product model.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %d", apperr.ErrNotFound, id)
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindBySKU(sku string) (*model.Product, error) {
	var product model.Product
	if err := r.db.First(&product, "sku = ?", sku).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product with sku %q", apperr.ErrNotFound, sku)
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindByStockLessThan(threshold int) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("stock < ?", threshold).Order("id ASC").Find(&products).Error
	return products, err
}

// SaveAll writes back mutated stock counts under optimistic locking. Each row
// is updated conditionally on the version that was read; zero affected rows
// means another writer got there first and the whole batch must abort.
func (r *productRepo) SaveAll(products []*model.Product) error {
	for _, product := range products {
		res := r.db.Model(&model.Product{}).
			Where("id = ? AND version = ?", product.ID, product.Version).
			Updates(map[string]interface{}{
				"stock":   product.Stock,
				"version": product.Version + 1,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: product %d (sku %q) changed since it was read",
				apperr.ErrConcurrencyConflict, product.ID, product.SKU)
		}
		product.Version++
	}
	return nil
}
