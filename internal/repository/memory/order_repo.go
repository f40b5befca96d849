package memory

import (
	"fmt"
	"sort"

	"go-inventory-orders/internal/apperr"
	"go-inventory-orders/internal/model"
)

type orderRepo struct {
	store *Store
}

func (r *orderRepo) Create(order *model.Order) error {
	unlock := r.store.lock()
	defer unlock()

	d := r.store.data
	d.nextOrderID++
	order.ID = d.nextOrderID
	order.CreatedAt = now()
	order.UpdatedAt = order.CreatedAt
	for i := range order.Items {
		d.nextItemID++
		order.Items[i].ID = d.nextItemID
		order.Items[i].OrderID = order.ID
	}
	d.orders[order.ID] = cloneOrder(*order)
	return nil
}

func (r *orderRepo) FindAll() ([]model.Order, error) {
	unlock := r.store.lock()
	defer unlock()

	d := r.store.data
	orders := make([]model.Order, 0, len(d.orders))
	for _, o := range d.orders {
		orders = append(orders, r.withProducts(o))
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

func (r *orderRepo) FindByID(id uint) (*model.Order, error) {
	unlock := r.store.lock()
	defer unlock()

	o, ok := r.store.data.orders[id]
	if !ok {
		return nil, fmt.Errorf("%w: order %d", apperr.ErrNotFound, id)
	}
	order := r.withProducts(o)
	return &order, nil
}

func (r *orderRepo) UpdateStatus(order *model.Order) error {
	unlock := r.store.lock()
	defer unlock()

	d := r.store.data
	stored, ok := d.orders[order.ID]
	if !ok {
		return fmt.Errorf("%w: order %d", apperr.ErrNotFound, order.ID)
	}
	stored.Status = order.Status
	stored.UpdatedAt = now()
	d.orders[order.ID] = stored
	return nil
}

// withProducts attaches the current product rows to the order's items, the
// same view a relational preload would give.
func (r *orderRepo) withProducts(o model.Order) model.Order {
	order := cloneOrder(o)
	for i := range order.Items {
		order.Items[i].Product = r.store.data.products[order.Items[i].ProductID]
	}
	return order
}
