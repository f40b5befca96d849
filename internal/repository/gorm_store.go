package repository

import "gorm.io/gorm"

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Products() ProductRepository {
	return NewProductRepo(s.db)
}

func (s *gormStore) Orders() OrderRepository {
	return NewOrderRepo(s.db)
}

func (s *gormStore) InTransaction(fn func(Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}
