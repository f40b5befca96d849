package service

import (
	"fmt"
	"time"

	"go-inventory-orders/internal/apperr"
	"go-inventory-orders/internal/model"
	"go-inventory-orders/internal/repository"
	"go-inventory-orders/internal/ws"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// OrderLine is one (product, quantity) entry of a create-order request.
type OrderLine struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type OrderService interface {
	CreateOrder(lines []OrderLine) (*model.Order, error)
	UpdateStatus(orderID uint, status model.OrderStatus) (*model.Order, error)
	ListAll() ([]model.Order, error)
	SummarizeOrderValue(orders []model.Order) map[string]decimal.Decimal
}

type orderService struct {
	store repository.Store
	hub   *ws.Hub
}

func NewOrderService(store repository.Store, hub *ws.Hub) OrderService {
	return &orderService{store: store, hub: hub}
}

// CreateOrder validates and decrements stock line by line, then persists the
// mutated products and the new order as one unit of work. Lines are processed
// in request order; the first failing line aborts everything. Duplicate lines
// for the same product are each checked against the stock left over by the
// lines before them.
func (s *orderService) CreateOrder(lines []OrderLine) (*model.Order, error) {
	log.WithField("lines", len(lines)).Info("starting order creation")

	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", apperr.ErrInvalidArgument)
	}

	var created *model.Order
	err := s.store.InTransaction(func(tx repository.Store) error {
		order := &model.Order{
			OrderDate: time.Now().UTC(),
			Status:    model.StatusPending,
		}

		touched := make(map[uint]*model.Product)
		var batch []*model.Product
		for _, line := range lines {
			log.WithFields(log.Fields{
				"product_id": line.ProductID,
				"quantity":   line.Quantity,
			}).Debug("processing order line")

			product, ok := touched[line.ProductID]
			if !ok {
				found, err := tx.Products().FindByID(line.ProductID)
				if err != nil {
					return err
				}
				product = found
				touched[line.ProductID] = product
				batch = append(batch, product)
			}

			if line.Quantity <= 0 {
				return fmt.Errorf("%w: quantity must be greater than zero", apperr.ErrInvalidArgument)
			}
			if product.Stock < line.Quantity {
				log.WithFields(log.Fields{
					"sku":       product.SKU,
					"available": product.Stock,
					"requested": line.Quantity,
				}).Warn("insufficient stock")
				return fmt.Errorf("%w for product: %s", apperr.ErrInsufficientStock, product.SKU)
			}

			product.Stock -= line.Quantity
			order.Items = append(order.Items, model.OrderItem{
				ProductID: product.ID,
				Quantity:  line.Quantity,
			})
		}

		// Single commit point for the decrements: a stale version on any
		// product rolls the whole order back.
		if err := tx.Products().SaveAll(batch); err != nil {
			log.WithError(err).Error("optimistic locking failure during stock update")
			return err
		}
		if err := tx.Orders().Create(order); err != nil {
			return err
		}
		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"id": created.ID, "status": created.Status}).Info("order created")
	if s.hub != nil {
		go s.hub.Publish(ws.EventOrderCreated, created)
	}
	return created, nil
}

// UpdateStatus moves an order through the status state machine. Cancelling an
// order does not restock its lines.
func (s *orderService) UpdateStatus(orderID uint, status model.OrderStatus) (*model.Order, error) {
	log.WithFields(log.Fields{"order_id": orderID, "status": status}).Info("updating order status")

	var updated *model.Order
	err := s.store.InTransaction(func(tx repository.Store) error {
		order, err := tx.Orders().FindByID(orderID)
		if err != nil {
			return err
		}
		if !order.Status.CanTransitionTo(status) {
			log.WithFields(log.Fields{"from": order.Status, "to": status}).Warn("invalid status transition")
			return fmt.Errorf("%w: cannot transition from %s to %s",
				apperr.ErrInvalidArgument, order.Status, status)
		}
		order.Status = status
		if err := tx.Orders().UpdateStatus(order); err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.hub != nil {
		go s.hub.Publish(ws.EventOrderStatusChanged, updated)
	}
	return updated, nil
}

func (s *orderService) ListAll() ([]model.Order, error) {
	return s.store.Orders().FindAll()
}

// SummarizeOrderValue totals order value per SKU: sum of current product
// price times quantity over every line. Prices are read live through each
// line's product reference, not from an order-time snapshot. SKUs with no
// lines are absent from the result.
func (s *orderService) SummarizeOrderValue(orders []model.Order) map[string]decimal.Decimal {
	summary := make(map[string]decimal.Decimal)
	for _, order := range orders {
		for _, item := range order.Items {
			value := item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			if total, ok := summary[item.Product.SKU]; ok {
				summary[item.Product.SKU] = total.Add(value)
			} else {
				summary[item.Product.SKU] = value
			}
		}
	}
	log.WithField("skus", len(summary)).Info("order value summary computed")
	return summary
}
