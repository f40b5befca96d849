package service

import (
	"errors"
	"fmt"

	"go-inventory-orders/internal/apperr"
	"go-inventory-orders/internal/model"
	"go-inventory-orders/internal/repository"
	"go-inventory-orders/internal/ws"
	"go-inventory-orders/pkg/validator"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type CatalogService interface {
	CreateProduct(req *model.Product) error
	ListAll() ([]model.Product, error)
	LowStock(threshold int) ([]model.Product, error)
	Stats() (*CatalogStats, error)
}

// CatalogStats is the dashboard overview: product count, how many rows sit
// under the low-stock threshold, and the total valuation of stock on hand.
type CatalogStats struct {
	TotalProducts  int             `json:"total_products"`
	LowStockCount  int             `json:"low_stock_count"`
	TotalValuation decimal.Decimal `json:"total_valuation"`
}

// lowStockThreshold is the dashboard cutoff, not the query parameter of the
// low-stock endpoint.
const lowStockThreshold = 10

type catalogService struct {
	store repository.Store
	hub   *ws.Hub
}

func NewCatalogService(store repository.Store, hub *ws.Hub) CatalogService {
	return &catalogService{store: store, hub: hub}
}

func (s *catalogService) CreateProduct(req *model.Product) error {
	log.WithField("sku", req.SKU).Info("attempting to create product")

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("%w: field '%s' failed on tag '%s'",
			apperr.ErrInvalidArgument, first.FailedField, first.Tag)
	}
	if req.Stock < 0 {
		log.WithFields(log.Fields{"sku": req.SKU, "stock": req.Stock}).Error("invalid stock value")
		return fmt.Errorf("%w: stock cannot be negative", apperr.ErrInvalidArgument)
	}
	if req.Price.IsNegative() {
		log.WithFields(log.Fields{"sku": req.SKU, "price": req.Price}).Error("invalid price value")
		return fmt.Errorf("%w: price cannot be negative", apperr.ErrInvalidArgument)
	}

	// Fast-path duplicate check. Racy on its own; the unique index enforced
	// by the repository on insert is the source of truth.
	if _, err := s.store.Products().FindBySKU(req.SKU); err == nil {
		log.WithField("sku", req.SKU).Warn("duplicate sku detected")
		return fmt.Errorf("%w: sku must be unique", apperr.ErrDuplicateKey)
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return err
	}

	if err := s.store.Products().Create(req); err != nil {
		return err
	}
	log.WithFields(log.Fields{"id": req.ID, "sku": req.SKU}).Info("product created")

	if s.hub != nil {
		go s.hub.Publish(ws.EventProductCreated, req)
	}
	return nil
}

func (s *catalogService) ListAll() ([]model.Product, error) {
	return s.store.Products().FindAll()
}

// LowStock returns products with stock strictly below threshold. An empty
// result is a valid answer, not an error.
func (s *catalogService) LowStock(threshold int) ([]model.Product, error) {
	log.WithField("threshold", threshold).Info("fetching low stock products")
	return s.store.Products().FindByStockLessThan(threshold)
}

func (s *catalogService) Stats() (*CatalogStats, error) {
	products, err := s.store.Products().FindAll()
	if err != nil {
		return nil, err
	}

	stats := &CatalogStats{TotalValuation: decimal.Zero}
	for _, p := range products {
		stats.TotalProducts++
		if p.Stock < lowStockThreshold {
			stats.LowStockCount++
		}
		stats.TotalValuation = stats.TotalValuation.Add(
			p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
	}
	return stats, nil
}
