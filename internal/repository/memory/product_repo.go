package memory

import (
	"fmt"
	"sort"

	"go-inventory-orders/internal/apperr"
	"go-inventory-orders/internal/model"
)

type productRepo struct {
	store *Store
}

func (r *productRepo) Create(product *model.Product) error {
	unlock := r.store.lock()
	defer unlock()

	d := r.store.data
	for _, existing := range d.products {
		if existing.SKU == product.SKU {
			return fmt.Errorf("%w: sku %q already exists", apperr.ErrDuplicateKey, product.SKU)
		}
	}

	d.nextProductID++
	product.ID = d.nextProductID
	product.Version = 0
	product.CreatedAt = now()
	product.UpdatedAt = product.CreatedAt
	d.products[product.ID] = *product
	return nil
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	unlock := r.store.lock()
	defer unlock()

	d := r.store.data
	products := make([]model.Product, 0, len(d.products))
	for _, p := range d.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (r *productRepo) FindByID(id uint) (*model.Product, error) {
	unlock := r.store.lock()
	defer unlock()

	p, ok := r.store.data.products[id]
	if !ok {
		return nil, fmt.Errorf("%w: product %d", apperr.ErrNotFound, id)
	}
	// Copy out so callers can mutate freely before SaveAll.
	return &p, nil
}

func (r *productRepo) FindBySKU(sku string) (*model.Product, error) {
	unlock := r.store.lock()
	defer unlock()

	for _, p := range r.store.data.products {
		if p.SKU == sku {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("%w: product with sku %q", apperr.ErrNotFound, sku)
}

func (r *productRepo) FindByStockLessThan(threshold int) ([]model.Product, error) {
	unlock := r.store.lock()
	defer unlock()

	var products []model.Product
	for _, p := range r.store.data.products {
		if p.Stock < threshold {
			products = append(products, p)
		}
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (r *productRepo) SaveAll(products []*model.Product) error {
	unlock := r.store.lock()
	defer unlock()

	d := r.store.data
	for _, product := range products {
		stored, ok := d.products[product.ID]
		if !ok {
			return fmt.Errorf("%w: product %d", apperr.ErrNotFound, product.ID)
		}
		if stored.Version != product.Version {
			return fmt.Errorf("%w: product %d (sku %q) changed since it was read",
				apperr.ErrConcurrencyConflict, product.ID, product.SKU)
		}
		product.Version++
		product.UpdatedAt = now()
		d.products[product.ID] = *product
	}
	return nil
}
