package repository

import (
	"errors"
	"fmt"

	"go-inventory-orders/internal/apperr"
	"go-inventory-orders/internal/model"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *model.Order) error
	FindAll() ([]model.Order, error)
	FindByID(id uint) (*model.Order, error)
	UpdateStatus(order *model.Order) error
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepo{db}
}

func (r *orderRepo) Create(order *model.Order) error {
	// Items are inserted with the order; the product rows they reference are
	// written separately under version control and must not be upserted here.
	return r.db.Omit("Items.Product").Create(order).Error
}

func (r *orderRepo) FindAll() ([]model.Order, error) {
	var orders []model.Order
	// Preload the live product rows, item totals are computed from current prices
	err := r.db.Preload("Items.Product").Order("id ASC").Find(&orders).Error
	return orders, err
}

func (r *orderRepo) FindByID(id uint) (*model.Order, error) {
	var order model.Order
	if err := r.db.Preload("Items.Product").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %d", apperr.ErrNotFound, id)
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepo) UpdateStatus(order *model.Order) error {
	return r.db.Model(&model.Order{}).
		Where("id = ?", order.ID).
		Update("status", order.Status).Error
}
