package memory_test

import (
	"errors"
	"testing"

	"go-inventory-orders/internal/apperr"
	"go-inventory-orders/internal/model"
	"go-inventory-orders/internal/repository"
	"go-inventory-orders/internal/repository/memory"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(sku string, stock int) *model.Product {
	return &model.Product{
		SKU:   sku,
		Name:  sku + " product",
		Price: decimal.RequireFromString("9.99"),
		Stock: stock,
	}
}

func TestProductRepo_CreateAndFind(t *testing.T) {
	store := memory.NewStore()

	p := newProduct("SKU001", 5)
	require.NoError(t, store.Products().Create(p))
	assert.NotZero(t, p.ID)
	assert.Equal(t, 0, p.Version)

	found, err := store.Products().FindByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "SKU001", found.SKU)

	bySKU, err := store.Products().FindBySKU("SKU001")
	require.NoError(t, err)
	assert.Equal(t, p.ID, bySKU.ID)

	_, err = store.Products().FindByID(999)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestProductRepo_DuplicateSKU(t *testing.T) {
	store := memory.NewStore()

	require.NoError(t, store.Products().Create(newProduct("SKU001", 5)))
	err := store.Products().Create(newProduct("SKU001", 3))
	assert.True(t, errors.Is(err, apperr.ErrDuplicateKey))
}

func TestProductRepo_FindByStockLessThan(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, store.Products().Create(newProduct("SKU001", 3)))
	require.NoError(t, store.Products().Create(newProduct("SKU002", 8)))
	require.NoError(t, store.Products().Create(newProduct("SKU003", 12)))

	low, err := store.Products().FindByStockLessThan(10)
	require.NoError(t, err)
	require.Len(t, low, 2)
	assert.Equal(t, "SKU001", low[0].SKU)
	assert.Equal(t, "SKU002", low[1].SKU)
}

// Two readers race on the same product row: the first writer wins, the
// second is rejected with a version conflict.
func TestProductRepo_VersionConflict(t *testing.T) {
	store := memory.NewStore()
	p := newProduct("SKU001", 10)
	require.NoError(t, store.Products().Create(p))

	first, err := store.Products().FindByID(p.ID)
	require.NoError(t, err)
	second, err := store.Products().FindByID(p.ID)
	require.NoError(t, err)

	first.Stock = 7
	require.NoError(t, store.Products().SaveAll([]*model.Product{first}))
	assert.Equal(t, 1, first.Version)

	second.Stock = 4
	err = store.Products().SaveAll([]*model.Product{second})
	assert.True(t, errors.Is(err, apperr.ErrConcurrencyConflict))

	// First writer's change persists.
	stored, err := store.Products().FindByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, stored.Stock)
	assert.Equal(t, 1, stored.Version)
}

func TestStore_TransactionRollback(t *testing.T) {
	store := memory.NewStore()
	p := newProduct("SKU001", 10)
	require.NoError(t, store.Products().Create(p))

	boom := errors.New("boom")
	err := store.InTransaction(func(tx repository.Store) error {
		inner, err := tx.Products().FindByID(p.ID)
		require.NoError(t, err)
		inner.Stock = 1
		require.NoError(t, tx.Products().SaveAll([]*model.Product{inner}))
		require.NoError(t, tx.Orders().Create(&model.Order{
			Status: model.StatusPending,
			Items:  []model.OrderItem{{ProductID: p.ID, Quantity: 9}},
		}))
		return boom
	})
	assert.True(t, errors.Is(err, boom))

	stored, err := store.Products().FindByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, stored.Stock)

	orders, err := store.Orders().FindAll()
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderRepo_ItemsCarryLiveProduct(t *testing.T) {
	store := memory.NewStore()
	p := newProduct("SKU001", 10)
	require.NoError(t, store.Products().Create(p))

	require.NoError(t, store.Orders().Create(&model.Order{
		Status: model.StatusPending,
		Items:  []model.OrderItem{{ProductID: p.ID, Quantity: 2}},
	}))

	// Change the price after the order exists; reads must see the new price.
	updated, err := store.Products().FindByID(p.ID)
	require.NoError(t, err)
	updated.Price = decimal.RequireFromString("19.99")
	require.NoError(t, store.Products().SaveAll([]*model.Product{updated}))

	orders, err := store.Orders().FindAll()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Items, 1)
	assert.True(t, orders[0].Items[0].Product.Price.Equal(decimal.RequireFromString("19.99")))
}

func TestOrderRepo_UpdateStatus(t *testing.T) {
	store := memory.NewStore()
	order := &model.Order{Status: model.StatusPending}
	require.NoError(t, store.Orders().Create(order))

	order.Status = model.StatusCompleted
	require.NoError(t, store.Orders().UpdateStatus(order))

	stored, err := store.Orders().FindByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, stored.Status)

	err = store.Orders().UpdateStatus(&model.Order{BaseModel: model.BaseModel{ID: 42}})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}
