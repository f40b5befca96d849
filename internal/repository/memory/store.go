// Package memory provides an in-process Store implementation used for local
// development and tests. It honors the same contracts as the Postgres-backed
// store: version-conflict detection on product writes and full rollback of a
// failed unit of work.
package memory

import (
	"sync"
	"time"

	"go-inventory-orders/internal/model"
	"go-inventory-orders/internal/repository"
)

type data struct {
	products map[uint]model.Product
	orders   map[uint]model.Order

	nextProductID uint
	nextOrderID   uint
	nextItemID    uint
}

func (d *data) clone() *data {
	cp := &data{
		products:      make(map[uint]model.Product, len(d.products)),
		orders:        make(map[uint]model.Order, len(d.orders)),
		nextProductID: d.nextProductID,
		nextOrderID:   d.nextOrderID,
		nextItemID:    d.nextItemID,
	}
	for id, p := range d.products {
		cp.products[id] = p
	}
	for id, o := range d.orders {
		cp.orders[id] = cloneOrder(o)
	}
	return cp
}

func cloneOrder(o model.Order) model.Order {
	items := make([]model.OrderItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}

type Store struct {
	mu   sync.Mutex
	data *data
	inTx bool
}

func NewStore() *Store {
	return &Store{
		data: &data{
			products: make(map[uint]model.Product),
			orders:   make(map[uint]model.Order),
		},
	}
}

func (s *Store) Products() repository.ProductRepository {
	return &productRepo{store: s}
}

func (s *Store) Orders() repository.OrderRepository {
	return &orderRepo{store: s}
}

// InTransaction runs fn against a copy-on-write snapshot. The snapshot
// replaces the live data only when fn succeeds, so a failed unit of work
// leaves no partial writes behind.
func (s *Store) InTransaction(fn func(repository.Store) error) error {
	if s.inTx {
		return fn(s)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &Store{data: s.data.clone(), inTx: true}
	if err := fn(tx); err != nil {
		return err
	}
	s.data = tx.data
	return nil
}

func (s *Store) lock() func() {
	if s.inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func now() time.Time {
	return time.Now().UTC()
}
