package model

import "github.com/shopspring/decimal"

type Product struct {
	BaseModel
	SKU   string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"sku" validate:"required"`
	Name  string          `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Price decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Stock int             `gorm:"not null;default:0" json:"stock"`

	// Optimistic lock counter. Every stock write must match the version it
	// read; the conditional update in the repository bumps it by one.
	Version int `gorm:"not null;default:0" json:"version"`
}
